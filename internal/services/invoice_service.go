package services

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"invoicer/internal/billing"
	apperrors "invoicer/internal/errors"
	"invoicer/internal/models"
	"invoicer/internal/uuid"
)

// invoiceService handles invoice persistence and draft editing.
type invoiceService struct {
	db       *gorm.DB
	cal      *billing.Calendar
	settings SettingsServicer
}

// NewInvoiceService creates a new InvoiceServicer.
func NewInvoiceService(db *gorm.DB, cal *billing.Calendar, settings SettingsServicer) InvoiceServicer {
	return &invoiceService{db: db, cal: cal, settings: settings}
}

// ListInvoices returns every stored invoice of the account ordered by period.
func (s *invoiceService) ListInvoices(userID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Where("user_id = ?", userID).Order("period_start ASC").Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range invoices {
		invoices[i].Normalize()
	}
	return invoices, nil
}

// ListInvoiceViews returns the account's stored invoices with their totals.
func (s *invoiceService) ListInvoiceViews(userID string) ([]InvoiceView, error) {
	rc, err := s.settings.GetRateConfig(userID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.ListInvoices(userID)
	if err != nil {
		return nil, err
	}

	views := make([]InvoiceView, 0, len(invoices))
	for i := range invoices {
		period, err := s.period(invoices[i].ID)
		if err != nil {
			return nil, err
		}
		view, err := s.view(&invoices[i], rc, period, false)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// ListAllInvoices returns the invoices of every account.
func (s *invoiceService) ListAllInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Order("period_start ASC").Order("user_id ASC").Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range invoices {
		invoices[i].Normalize()
	}
	return invoices, nil
}

// GetInvoice returns the stored invoice for the account and period id.
func (s *invoiceService) GetInvoice(userID, id string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	inv.Normalize()
	return &inv, nil
}

// GetOrDraft returns the stored invoice for the period or, when none exists,
// a fresh draft seeded from the account's current base rate.
func (s *invoiceService) GetOrDraft(userID, periodID string) (*InvoiceView, error) {
	period, err := s.period(periodID)
	if err != nil {
		return nil, err
	}

	rc, err := s.settings.GetRateConfig(userID)
	if err != nil {
		return nil, err
	}

	inv, err := s.GetInvoice(userID, periodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvoiceNotFound) {
			return nil, err
		}
		return s.view(newDraft(userID, period, rc), rc, period, true)
	}
	return s.view(inv, rc, period, false)
}

// UpsertInvoice stores the complete invoice, replacing any stored version.
// The edit lock is enforced here as well as in clients. A non-zero Version
// must match the stored one.
func (s *invoiceService) UpsertInvoice(userID string, inv *models.Invoice) (*InvoiceView, error) {
	period, rc, err := s.editable(userID, inv.ID)
	if err != nil {
		return nil, err
	}
	if inv.Meetings < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "meetings must not be negative")
	}
	if err := billing.ValidateInvoiceAmounts(inv); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	now := s.cal.Now()
	record := *inv
	record.AppDeployments = slices.Clone(inv.AppDeployments)
	record.CustomEntries = slices.Clone(inv.CustomEntries)
	record.UserID = userID
	record.PeriodStart = period.Start
	record.PeriodEnd = period.End
	record.UpdatedAt = now
	record.Normalize()
	assignEntryIDs(&record)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Invoice
		err := tx.Where("id = ? AND user_id = ?", record.ID, userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record.Version = 1
			record.CreatedAt = now
			return tx.Create(&record).Error
		}
		if err != nil {
			return err
		}

		if inv.Version != 0 && inv.Version != existing.Version {
			return apperrors.ErrInvoiceConflict
		}
		record.CreatedAt = existing.CreatedAt
		record.Version = existing.Version + 1

		res := tx.Model(&models.Invoice{}).
			Where("id = ? AND user_id = ? AND version = ?", record.ID, userID, existing.Version).
			Updates(map[string]interface{}{
				"period_start":        record.PeriodStart,
				"period_end":          record.PeriodEnd,
				"app_deployments":     record.AppDeployments,
				"custom_entries":      record.CustomEntries,
				"meetings":            record.Meetings,
				"base_rate":           record.BaseRate,
				"is_paid":             record.IsPaid,
				"received_amount_eur": record.ReceivedAmountEUR,
				"version":             record.Version,
				"updated_at":          record.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInvoiceConflict
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.From(err)
	}

	stored, err := s.GetInvoice(userID, record.ID)
	if err != nil {
		return nil, err
	}
	return s.view(stored, rc, period, false)
}

// DeleteInvoice removes the stored invoice.
func (s *invoiceService) DeleteInvoice(userID, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Invoice{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInvoiceNotFound
	}
	return nil
}

// UpdatePaymentStatus changes only the payment fields and the timestamp.
func (s *invoiceService) UpdatePaymentStatus(userID, id string, isPaid bool, receivedEUR decimal.Decimal) (*models.Invoice, error) {
	if receivedEUR.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "received amount must not be negative")
	}
	if !billing.IsWholeCents(receivedEUR) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, billing.ErrSubCentAmount.Error())
	}

	res := s.db.Model(&models.Invoice{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_paid":             isPaid,
			"received_amount_eur": receivedEUR,
			"version":             gorm.Expr("version + 1"),
			"updated_at":          s.cal.Now(),
		})
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrInvoiceNotFound
	}
	return s.GetInvoice(userID, id)
}

// AddDeployment appends a deployment to an unsaved draft and flags details
// already billed in the draft or any stored invoice of the account.
func (s *invoiceService) AddDeployment(userID string, draft *models.Invoice, details string) (*DeploymentResult, error) {
	period, rc, err := s.editable(userID, draft.ID)
	if err != nil {
		return nil, err
	}

	history, err := s.ListInvoices(userID)
	if err != nil {
		return nil, err
	}

	draft.UserID = userID
	draft.Normalize()
	entry := models.DeploymentEntry{ID: uuid.New(), Details: details}
	duplicate := billing.AddDeployment(draft, entry, history)

	view, err := s.view(draft, rc, period, true)
	if err != nil {
		return nil, err
	}
	return &DeploymentResult{InvoiceView: *view, Entry: entry, Duplicate: duplicate}, nil
}

// Preview recomputes the total of an unsaved draft.
func (s *invoiceService) Preview(userID string, draft *models.Invoice) (*InvoiceView, error) {
	period, err := s.period(draft.ID)
	if err != nil {
		return nil, err
	}
	rc, err := s.settings.GetRateConfig(userID)
	if err != nil {
		return nil, err
	}

	draft.UserID = userID
	draft.Normalize()
	return s.view(draft, rc, period, true)
}

// period resolves a period id, mapping parse failures to ErrInvalidPeriod.
func (s *invoiceService) period(id string) (billing.Period, error) {
	p, err := s.cal.Period(id)
	if err != nil {
		return billing.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	return p, nil
}

// editable resolves the period and the account's settings and fails unless
// the invoice may be changed right now.
func (s *invoiceService) editable(userID, periodID string) (billing.Period, *models.RateConfig, error) {
	period, err := s.period(periodID)
	if err != nil {
		return billing.Period{}, nil, err
	}
	if !s.cal.CanEdit(period) {
		return billing.Period{}, nil, apperrors.ErrPeriodLocked
	}

	rc, err := s.settings.GetRateConfig(userID)
	if err != nil {
		return billing.Period{}, nil, err
	}
	if rc == nil {
		return billing.Period{}, nil, apperrors.ErrSettingsNotFound
	}
	return period, rc, nil
}

// view derives the total and editability of inv using the account's
// current rate config.
func (s *invoiceService) view(inv *models.Invoice, rc *models.RateConfig, period billing.Period, isDraft bool) (*InvoiceView, error) {
	total, err := billing.CalculateTotal(inv, rc)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRateConfig, err.Error())
	}
	return &InvoiceView{
		Invoice:  inv,
		Total:    total,
		IsDraft:  isDraft,
		Editable: rc != nil && s.cal.CanEdit(period),
	}, nil
}

// newDraft synthesizes an unsaved invoice for the period.
func newDraft(userID string, period billing.Period, rc *models.RateConfig) *models.Invoice {
	inv := &models.Invoice{
		ID:          period.ID,
		UserID:      userID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
	}
	if rc != nil {
		inv.BaseRate = rc.BaseRate
	}
	inv.Normalize()
	return inv
}

// assignEntryIDs gives line entries submitted without an id a fresh one.
func assignEntryIDs(inv *models.Invoice) {
	for i := range inv.AppDeployments {
		if inv.AppDeployments[i].ID == "" {
			inv.AppDeployments[i].ID = uuid.New()
		}
	}
	for i := range inv.CustomEntries {
		if inv.CustomEntries[i].ID == "" {
			inv.CustomEntries[i].ID = uuid.New()
		}
	}
}
