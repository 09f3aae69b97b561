package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"invoicer/internal/exchange"
	"invoicer/internal/models"
	"invoicer/internal/pagination"
)

// InvoiceView is an invoice together with the values derived from it at read
// time. Totals are never stored.
type InvoiceView struct {
	Invoice  *models.Invoice `json:"invoice"`
	Total    decimal.Decimal `json:"total"`
	IsDraft  bool            `json:"is_draft"`
	Editable bool            `json:"editable"`
}

// DeploymentResult is the outcome of adding a deployment to a draft.
type DeploymentResult struct {
	InvoiceView
	Entry     models.DeploymentEntry `json:"entry"`
	Duplicate bool                   `json:"duplicate"`
}

// InvoiceServicer is the invoice store adapter plus the draft operations
// built on it. Invoices are addressed by (account, period id).
type InvoiceServicer interface {
	ListInvoices(userID string) ([]models.Invoice, error)
	ListInvoiceViews(userID string) ([]InvoiceView, error)
	ListAllInvoices() ([]models.Invoice, error)
	GetInvoice(userID, id string) (*models.Invoice, error)
	GetOrDraft(userID, periodID string) (*InvoiceView, error)
	UpsertInvoice(userID string, inv *models.Invoice) (*InvoiceView, error)
	DeleteInvoice(userID, id string) error
	UpdatePaymentStatus(userID, id string, isPaid bool, receivedEUR decimal.Decimal) (*models.Invoice, error)
	AddDeployment(userID string, draft *models.Invoice, details string) (*DeploymentResult, error)
	Preview(userID string, draft *models.Invoice) (*InvoiceView, error)
}

// SettingsServicer provides and stores per-account rate configuration.
type SettingsServicer interface {
	// GetRateConfig returns nil without an error when the account has no
	// settings yet.
	GetRateConfig(userID string) (*models.RateConfig, error)
	SaveRateConfig(userID string, cfg *models.RateConfig) (*models.RateConfig, error)
}

// OverviewRow is one invoice in the cross-account payment overview.
type OverviewRow struct {
	UserID      string          `json:"user_id"`
	InvoiceID   string          `json:"invoice_id"`
	Label       string          `json:"label"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	PaymentDate time.Time       `json:"payment_date"`
	Total       decimal.Decimal `json:"total"`
	ExpectedEUR decimal.Decimal `json:"expected_eur"`
	ReceivedEUR decimal.Decimal `json:"received_eur"`
	IsPaid      bool            `json:"is_paid"`
}

// AccountSummary aggregates one account's invoices.
type AccountSummary struct {
	UserID         string          `json:"user_id"`
	Invoices       int             `json:"invoices"`
	Paid           int             `json:"paid"`
	Unpaid         int             `json:"unpaid"`
	TotalInvoiced  decimal.Decimal `json:"total_invoiced"`
	TotalReceived  decimal.Decimal `json:"total_received_eur"`
	OutstandingUSD decimal.Decimal `json:"outstanding"`
}

// Overview is the payment-tracking view across all accounts.
type Overview struct {
	ExchangeRate exchange.Rate    `json:"exchange_rate"`
	Accounts     []AccountSummary `json:"accounts"`
	Invoices     []OverviewRow    `json:"invoices"`
}

// OverviewServicer builds the cross-account payment overview.
type OverviewServicer interface {
	GetOverview(ctx context.Context) (*Overview, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
	List(page pagination.PageRequest, userID string) (*pagination.PageResponse[models.AuditLog], error)
}
