package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"invoicer/internal/models"
)

// ErrZeroMeetingUnit is returned when a rate config bills meetings in units
// of zero (or fewer) meetings.
var ErrZeroMeetingUnit = errors.New("meeting rate unit must be at least 1")

// ErrNegativeRate is returned when a rate config carries a negative amount.
var ErrNegativeRate = errors.New("rates must not be negative")

// ErrSubCentAmount is returned when an amount has more than two decimal
// places. Stored amounts are kept in whole cents.
var ErrSubCentAmount = errors.New("amounts must not have more than two decimal places")

// IsWholeCents reports whether d has at most two significant decimal places.
// Trailing zeros are ignored, so 1.500 is accepted.
func IsWholeCents(d decimal.Decimal) bool {
	return d.Round(2).Equal(d)
}

// CalculateTotal computes an invoice total:
//
//	base_rate + deployments*deployment_rate + floor(meetings/unit)*unit_value + sum(custom amounts)
//
// The base rate comes from the invoice snapshot; the other rates come from rc.
// A nil invoice or rate config yields zero so drafts can render before their
// data is loaded.
func CalculateTotal(inv *models.Invoice, rc *models.RateConfig) (decimal.Decimal, error) {
	if inv == nil || rc == nil {
		return decimal.Zero, nil
	}
	if rc.MeetingRateUnit <= 0 {
		return decimal.Zero, ErrZeroMeetingUnit
	}

	total := inv.BaseRate
	total = total.Add(rc.DeploymentRate.Mul(decimal.NewFromInt(int64(len(inv.AppDeployments)))))

	// Only whole units are paid; leftover meetings contribute nothing.
	units := int64(inv.Meetings / rc.MeetingRateUnit)
	total = total.Add(rc.MeetingRateValue.Mul(decimal.NewFromInt(units)))

	for _, e := range inv.CustomEntries {
		total = total.Add(e.Amount)
	}
	return total, nil
}

// ValidateRateConfig rejects configs CalculateTotal cannot price.
func ValidateRateConfig(rc *models.RateConfig) error {
	if rc.MeetingRateUnit < 1 {
		return ErrZeroMeetingUnit
	}
	if rc.BaseRate.IsNegative() || rc.DeploymentRate.IsNegative() || rc.MeetingRateValue.IsNegative() {
		return ErrNegativeRate
	}
	for _, d := range []decimal.Decimal{rc.BaseRate, rc.DeploymentRate, rc.MeetingRateValue} {
		if !IsWholeCents(d) {
			return ErrSubCentAmount
		}
	}
	return nil
}

// ValidateInvoiceAmounts rejects invoices whose money fields would lose
// precision when stored.
func ValidateInvoiceAmounts(inv *models.Invoice) error {
	if !IsWholeCents(inv.BaseRate) || !IsWholeCents(inv.ReceivedAmountEUR) {
		return ErrSubCentAmount
	}
	for _, e := range inv.CustomEntries {
		if !IsWholeCents(e.Amount) {
			return fmt.Errorf("custom entry %q: %w", e.Description, ErrSubCentAmount)
		}
	}
	return nil
}
