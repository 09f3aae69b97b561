package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"invoicer/internal/billing"
	apperrors "invoicer/internal/errors"
	"invoicer/internal/exchange"
	"invoicer/internal/logger"
)

// overviewService aggregates the invoices of every configured account.
type overviewService struct {
	invoices InvoiceServicer
	settings SettingsServicer
	rates    exchange.RateSource
	cal      *billing.Calendar
	accounts []string
}

// NewOverviewService creates a new OverviewServicer. Accounts are summarized
// in the given order.
func NewOverviewService(invoices InvoiceServicer, settings SettingsServicer, rates exchange.RateSource, cal *billing.Calendar, accounts []string) OverviewServicer {
	return &overviewService{
		invoices: invoices,
		settings: settings,
		rates:    rates,
		cal:      cal,
		accounts: accounts,
	}
}

// GetOverview lists every stored invoice with its total and expected EUR
// amount, newest period first, plus a per-account summary.
func (s *overviewService) GetOverview(ctx context.Context) (*Overview, error) {
	rate := s.rates.USDToEUR(ctx)
	now := s.cal.Now()

	overview := &Overview{
		ExchangeRate: rate,
		Accounts:     make([]AccountSummary, 0, len(s.accounts)),
		Invoices:     []OverviewRow{},
	}
	order := make(map[string]int, len(s.accounts))

	for i, userID := range s.accounts {
		order[userID] = i

		rc, err := s.settings.GetRateConfig(userID)
		if err != nil {
			return nil, err
		}
		invoices, err := s.invoices.ListInvoices(userID)
		if err != nil {
			return nil, err
		}

		summary := AccountSummary{
			UserID:         userID,
			TotalInvoiced:  decimal.Zero,
			TotalReceived:  decimal.Zero,
			OutstandingUSD: decimal.Zero,
		}
		for j := range invoices {
			inv := &invoices[j]
			key, err := billing.ParsePeriodID(inv.ID)
			if err != nil {
				logger.With("overview").Warnw("skipping invoice with malformed period id",
					"user_id", userID,
					"invoice_id", inv.ID,
				)
				continue
			}
			total, err := billing.CalculateTotal(inv, rc)
			if err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidRateConfig, err.Error())
			}
			period := billing.PeriodFor(key, now)

			overview.Invoices = append(overview.Invoices, OverviewRow{
				UserID:      userID,
				InvoiceID:   inv.ID,
				Label:       period.Label,
				PeriodStart: period.Start,
				PeriodEnd:   period.End,
				PaymentDate: period.PaymentDate,
				Total:       total,
				ExpectedEUR: rate.Convert(total),
				ReceivedEUR: inv.ReceivedAmountEUR,
				IsPaid:      inv.IsPaid,
			})

			summary.Invoices++
			summary.TotalInvoiced = summary.TotalInvoiced.Add(total)
			summary.TotalReceived = summary.TotalReceived.Add(inv.ReceivedAmountEUR)
			if inv.IsPaid {
				summary.Paid++
			} else {
				summary.Unpaid++
				summary.OutstandingUSD = summary.OutstandingUSD.Add(total)
			}
		}
		overview.Accounts = append(overview.Accounts, summary)
	}

	sort.SliceStable(overview.Invoices, func(i, j int) bool {
		a, b := overview.Invoices[i], overview.Invoices[j]
		if !a.PeriodStart.Equal(b.PeriodStart) {
			return a.PeriodStart.After(b.PeriodStart)
		}
		return order[a.UserID] < order[b.UserID]
	})

	return overview, nil
}
