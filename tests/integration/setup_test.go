package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"invoicer/internal/billing"
	"invoicer/internal/exchange"
	"invoicer/internal/handlers"
	"invoicer/internal/logger"
	"invoicer/internal/middleware"
	"invoicer/internal/services"
	"invoicer/internal/testutil"
	"invoicer/internal/validator"
)

// testNow is the wall clock every integration test runs at.
var testNow = time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)

var testAccounts = []string{"dimitar", "gordana"}

const testPIN = "4321"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database, a fixed clock and a static exchange rate.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cal := billing.NewCalendar(time.UTC, func() time.Time { return testNow })
	rates := exchange.StaticSource{Rate: decimal.RequireFromString("0.9")}

	hash, err := bcrypt.GenerateFromPassword([]byte(testPIN), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash pin: %v", err)
	}

	// Services
	settingsService := services.NewSettingsService(db, cal)
	invoiceService := services.NewInvoiceService(db, cal, settingsService)
	overviewService := services.NewOverviewService(invoiceService, settingsService, rates, cal, testAccounts)
	auditService := services.NewAuditService(db)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	handlers.RegisterRoutes(router, handlers.Routes{
		Accounts: testAccounts,
		Account:  handlers.NewAccountHandler(testAccounts, settingsService),
		Audit:    handlers.NewAuditHandler(auditService, testAccounts),
		Exchange: handlers.NewExchangeHandler(rates, overviewService),
		Invoice:  handlers.NewInvoiceHandler(invoiceService, auditService),
		Period:   handlers.NewPeriodHandler(cal, "11:30 UTC"),
		PIN:      handlers.NewPINHandler(string(hash)),
		Settings: handlers.NewSettingsHandler(settingsService, auditService),
	})

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// expectStatus fails the test unless rec carries the wanted status.
func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// errorCode extracts error.code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response: %s", rec.Body.String())
	}
	return errObj["code"].(string)
}

// assertDecimal compares a decimal string field with want.
func assertDecimal(t *testing.T, field string, got interface{}, want string) {
	t.Helper()
	s, ok := got.(string)
	if !ok {
		t.Fatalf("%s: expected decimal string, got %T (%v)", field, got, got)
	}
	if !decimal.RequireFromString(s).Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", field, s, want)
	}
}

// saveSettings configures the standard rates for account.
func (app *testApp) saveSettings(t *testing.T, account string) {
	t.Helper()
	rec := app.request(http.MethodPut, "/api/v1/accounts/"+account+"/settings",
		`{"base_rate":"104.00","deployment_rate":"12","deployment_label":"App deployment","meeting_rate_unit":2,"meeting_rate_value":"5"}`)
	expectStatus(t, rec, http.StatusOK)
}
