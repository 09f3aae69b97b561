package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"invoicer/internal/billing"
	"invoicer/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestRateConfig stores the rate config used throughout the tests:
// base 104, 12 per deployment, 5 per two meetings.
func CreateTestRateConfig(t *testing.T, db *gorm.DB, userID string) *models.RateConfig {
	t.Helper()

	rc := &models.RateConfig{
		UserID:           userID,
		BaseRate:         decimal.NewFromInt(104),
		DeploymentRate:   decimal.NewFromInt(12),
		DeploymentLabel:  "App deployments",
		MeetingRateUnit:  2,
		MeetingRateValue: decimal.NewFromInt(5),
	}
	if err := db.Create(rc).Error; err != nil {
		t.Fatalf("failed to create test rate config: %v", err)
	}
	return rc
}

// NewTestInvoice builds an unsaved invoice for the given period with one
// deployment and no other line items.
func NewTestInvoice(t *testing.T, userID, periodID string) *models.Invoice {
	t.Helper()

	key, err := billing.ParsePeriodID(periodID)
	if err != nil {
		t.Fatalf("invalid test period id %q: %v", periodID, err)
	}

	return &models.Invoice{
		ID:          periodID,
		UserID:      userID,
		PeriodStart: key.Start(time.UTC),
		PeriodEnd:   key.End(time.UTC),
		AppDeployments: []models.DeploymentEntry{
			{ID: fmt.Sprintf("dep-%d", nextID()), Details: fmt.Sprintf("deployment %d", nextID())},
		},
		CustomEntries: []models.CustomEntry{},
		BaseRate:      decimal.NewFromInt(104),
		Version:       1,
		CreatedAt:     key.Start(time.UTC),
		UpdatedAt:     key.Start(time.UTC),
	}
}

// CreateTestInvoice stores an invoice built by NewTestInvoice.
func CreateTestInvoice(t *testing.T, db *gorm.DB, userID, periodID string) *models.Invoice {
	t.Helper()

	inv := NewTestInvoice(t, userID, periodID)
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}
	return inv
}
