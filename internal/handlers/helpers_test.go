package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"invoicer/internal/billing"
	"invoicer/internal/middleware"
	"invoicer/internal/models"
	"invoicer/internal/pagination"
	"invoicer/internal/services"
	"invoicer/internal/validator"
)

// --- mock services ---

type mockInvoiceService struct {
	listInvoicesFn        func(userID string) ([]models.Invoice, error)
	listInvoiceViewsFn    func(userID string) ([]services.InvoiceView, error)
	listAllInvoicesFn     func() ([]models.Invoice, error)
	getInvoiceFn          func(userID, id string) (*models.Invoice, error)
	getOrDraftFn          func(userID, periodID string) (*services.InvoiceView, error)
	upsertInvoiceFn       func(userID string, inv *models.Invoice) (*services.InvoiceView, error)
	deleteInvoiceFn       func(userID, id string) error
	updatePaymentStatusFn func(userID, id string, isPaid bool, receivedEUR decimal.Decimal) (*models.Invoice, error)
	addDeploymentFn       func(userID string, draft *models.Invoice, details string) (*services.DeploymentResult, error)
	previewFn             func(userID string, draft *models.Invoice) (*services.InvoiceView, error)
}

func (m *mockInvoiceService) ListInvoices(userID string) ([]models.Invoice, error) {
	if m.listInvoicesFn != nil {
		return m.listInvoicesFn(userID)
	}
	return []models.Invoice{}, nil
}

func (m *mockInvoiceService) ListInvoiceViews(userID string) ([]services.InvoiceView, error) {
	if m.listInvoiceViewsFn != nil {
		return m.listInvoiceViewsFn(userID)
	}
	return []services.InvoiceView{}, nil
}

func (m *mockInvoiceService) ListAllInvoices() ([]models.Invoice, error) {
	if m.listAllInvoicesFn != nil {
		return m.listAllInvoicesFn()
	}
	return []models.Invoice{}, nil
}

func (m *mockInvoiceService) GetInvoice(userID, id string) (*models.Invoice, error) {
	if m.getInvoiceFn != nil {
		return m.getInvoiceFn(userID, id)
	}
	return &models.Invoice{}, nil
}

func (m *mockInvoiceService) GetOrDraft(userID, periodID string) (*services.InvoiceView, error) {
	if m.getOrDraftFn != nil {
		return m.getOrDraftFn(userID, periodID)
	}
	return &services.InvoiceView{Invoice: &models.Invoice{ID: periodID, UserID: userID}}, nil
}

func (m *mockInvoiceService) UpsertInvoice(userID string, inv *models.Invoice) (*services.InvoiceView, error) {
	if m.upsertInvoiceFn != nil {
		return m.upsertInvoiceFn(userID, inv)
	}
	return &services.InvoiceView{Invoice: inv}, nil
}

func (m *mockInvoiceService) DeleteInvoice(userID, id string) error {
	if m.deleteInvoiceFn != nil {
		return m.deleteInvoiceFn(userID, id)
	}
	return nil
}

func (m *mockInvoiceService) UpdatePaymentStatus(userID, id string, isPaid bool, receivedEUR decimal.Decimal) (*models.Invoice, error) {
	if m.updatePaymentStatusFn != nil {
		return m.updatePaymentStatusFn(userID, id, isPaid, receivedEUR)
	}
	return &models.Invoice{ID: id, UserID: userID, IsPaid: isPaid, ReceivedAmountEUR: receivedEUR}, nil
}

func (m *mockInvoiceService) AddDeployment(userID string, draft *models.Invoice, details string) (*services.DeploymentResult, error) {
	if m.addDeploymentFn != nil {
		return m.addDeploymentFn(userID, draft, details)
	}
	return &services.DeploymentResult{InvoiceView: services.InvoiceView{Invoice: draft}}, nil
}

func (m *mockInvoiceService) Preview(userID string, draft *models.Invoice) (*services.InvoiceView, error) {
	if m.previewFn != nil {
		return m.previewFn(userID, draft)
	}
	return &services.InvoiceView{Invoice: draft, IsDraft: true}, nil
}

var _ services.InvoiceServicer = (*mockInvoiceService)(nil)

type mockSettingsService struct {
	getRateConfigFn  func(userID string) (*models.RateConfig, error)
	saveRateConfigFn func(userID string, cfg *models.RateConfig) (*models.RateConfig, error)
}

func (m *mockSettingsService) GetRateConfig(userID string) (*models.RateConfig, error) {
	if m.getRateConfigFn != nil {
		return m.getRateConfigFn(userID)
	}
	return nil, nil
}

func (m *mockSettingsService) SaveRateConfig(userID string, cfg *models.RateConfig) (*models.RateConfig, error) {
	if m.saveRateConfigFn != nil {
		return m.saveRateConfigFn(userID, cfg)
	}
	cfg.UserID = userID
	return cfg, nil
}

var _ services.SettingsServicer = (*mockSettingsService)(nil)

type mockOverviewService struct {
	getOverviewFn func(ctx context.Context) (*services.Overview, error)
}

func (m *mockOverviewService) GetOverview(ctx context.Context) (*services.Overview, error) {
	if m.getOverviewFn != nil {
		return m.getOverviewFn(ctx)
	}
	return &services.Overview{}, nil
}

var _ services.OverviewServicer = (*mockOverviewService)(nil)

type mockAuditService struct {
	logged []string
	listFn func(page pagination.PageRequest, userID string) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(_, action, _, _, _ string, _ map[string]interface{}) {
	m.logged = append(m.logged, action)
}

func (m *mockAuditService) List(page pagination.PageRequest, userID string) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(page, userID)
	}
	resp := pagination.NewPageResponse([]models.AuditLog{}, page.Normalize(), 0)
	return &resp, nil
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// testNow falls inside period 2026-5-15.
var testNow = time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)

func newTestCalendar() *billing.Calendar {
	return billing.NewCalendar(time.UTC, func() time.Time { return testNow })
}

func injectAccountID(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AccountIDKey, id)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
