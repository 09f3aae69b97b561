package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"invoicer/internal/billing"
	"invoicer/internal/models"
	"invoicer/internal/testutil"
)

// testNow is the fixed clock used by service tests: inside period 2026-5-15.
var testNow = time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)

func newTestCalendar() *billing.Calendar {
	return billing.NewCalendar(time.UTC, func() time.Time { return testNow })
}

func newTestInvoiceService(db *gorm.DB) InvoiceServicer {
	cal := newTestCalendar()
	return NewInvoiceService(db, cal, NewSettingsService(db, cal))
}

func TestGetOrDraft(t *testing.T) {
	t.Run("draft_from_settings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		view, err := svc.GetOrDraft("dimitar", "2026-5-1")
		testutil.AssertNoError(t, err)

		if !view.IsDraft {
			t.Error("expected a draft")
		}
		if !view.Editable {
			t.Error("expected draft to be editable")
		}
		if !view.Invoice.BaseRate.Equal(decimal.NewFromInt(104)) {
			t.Errorf("expected base rate 104, got %s", view.Invoice.BaseRate)
		}
		if view.Invoice.AppDeployments == nil || len(view.Invoice.AppDeployments) != 0 {
			t.Errorf("expected empty deployments, got %v", view.Invoice.AppDeployments)
		}
		if view.Invoice.CustomEntries == nil || len(view.Invoice.CustomEntries) != 0 {
			t.Errorf("expected empty custom entries, got %v", view.Invoice.CustomEntries)
		}
		if !view.Total.Equal(decimal.NewFromInt(104)) {
			t.Errorf("expected total 104, got %s", view.Total)
		}
		if !view.Invoice.PeriodEnd.Equal(time.Date(2026, time.May, 14, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected period end %s", view.Invoice.PeriodEnd)
		}
	})

	t.Run("stored_invoice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")
		testutil.CreateTestInvoice(t, db, "dimitar", "2026-4-15")

		view, err := svc.GetOrDraft("dimitar", "2026-4-15")
		testutil.AssertNoError(t, err)

		if view.IsDraft {
			t.Error("expected the stored invoice")
		}
		if !view.Total.Equal(decimal.NewFromInt(116)) {
			t.Errorf("expected total 116, got %s", view.Total)
		}
	})

	t.Run("without_settings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)

		view, err := svc.GetOrDraft("gordana", "2026-5-15")
		testutil.AssertNoError(t, err)

		if view.Editable {
			t.Error("expected no editing without settings")
		}
		if !view.Total.IsZero() {
			t.Errorf("expected total 0, got %s", view.Total)
		}
	})

	t.Run("future_period_locked", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		view, err := svc.GetOrDraft("dimitar", "2026-6-1")
		testutil.AssertNoError(t, err)
		if view.Editable {
			t.Error("expected future period to be locked")
		}
	})

	t.Run("invalid_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)

		_, err := svc.GetOrDraft("dimitar", "2026-5-3")
		testutil.AssertAppError(t, err, "INVALID_PERIOD")
	})
}

func TestUpsertInvoice(t *testing.T) {
	t.Run("create_round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		inv := &models.Invoice{
			ID:             "2026-5-1",
			AppDeployments: []models.DeploymentEntry{{Details: "api v2"}},
			CustomEntries:  nil,
			Meetings:       3,
			BaseRate:       decimal.RequireFromString("104.50"),
		}
		view, err := svc.UpsertInvoice("dimitar", inv)
		testutil.AssertNoError(t, err)

		if view.Invoice.Version != 1 {
			t.Errorf("expected version 1, got %d", view.Invoice.Version)
		}
		if view.Invoice.AppDeployments[0].ID == "" {
			t.Error("expected deployment to get an id")
		}
		if !view.Total.Equal(decimal.RequireFromString("121.50")) {
			t.Errorf("expected total 121.50, got %s", view.Total)
		}

		stored, err := svc.GetInvoice("dimitar", "2026-5-1")
		testutil.AssertNoError(t, err)

		if stored.UserID != "dimitar" || stored.Meetings != 3 {
			t.Errorf("unexpected stored invoice %+v", stored)
		}
		if !stored.BaseRate.Equal(decimal.RequireFromString("104.50")) {
			t.Errorf("expected base rate 104.50, got %s", stored.BaseRate)
		}
		if len(stored.AppDeployments) != 1 || stored.AppDeployments[0].Details != "api v2" {
			t.Errorf("unexpected deployments %v", stored.AppDeployments)
		}
		if stored.CustomEntries == nil || len(stored.CustomEntries) != 0 {
			t.Errorf("expected empty custom entries, got %v", stored.CustomEntries)
		}
		if !stored.PeriodStart.Equal(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected period start %s", stored.PeriodStart)
		}
		if !stored.UpdatedAt.Equal(testNow) || !stored.CreatedAt.Equal(testNow) {
			t.Errorf("expected timestamps from the calendar clock, got %s / %s", stored.CreatedAt, stored.UpdatedAt)
		}
	})

	t.Run("update_bumps_version", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")
		existing := testutil.CreateTestInvoice(t, db, "dimitar", "2026-5-15")

		existing.Meetings = 4
		existing.CustomEntries = []models.CustomEntry{{ID: "c1", Description: "refund", Amount: decimal.NewFromInt(-20)}}
		view, err := svc.UpsertInvoice("dimitar", existing)
		testutil.AssertNoError(t, err)

		if view.Invoice.Version != 2 {
			t.Errorf("expected version 2, got %d", view.Invoice.Version)
		}
		// 104 + 12 + 2*5 - 20
		if !view.Total.Equal(decimal.NewFromInt(106)) {
			t.Errorf("expected total 106, got %s", view.Total)
		}

		stored, err := svc.GetInvoice("dimitar", "2026-5-15")
		testutil.AssertNoError(t, err)
		if stored.Meetings != 4 || len(stored.CustomEntries) != 1 {
			t.Errorf("update not persisted: %+v", stored)
		}
		if !stored.CustomEntries[0].Amount.Equal(decimal.NewFromInt(-20)) {
			t.Errorf("expected amount -20, got %s", stored.CustomEntries[0].Amount)
		}
	})

	t.Run("stale_version_conflicts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")
		existing := testutil.CreateTestInvoice(t, db, "dimitar", "2026-5-15")

		first := *existing
		_, err := svc.UpsertInvoice("dimitar", &first)
		testutil.AssertNoError(t, err)

		stale := *existing
		stale.Meetings = 9
		_, err = svc.UpsertInvoice("dimitar", &stale)
		testutil.AssertAppError(t, err, "INVOICE_CONFLICT")
	})

	t.Run("zero_version_overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")
		existing := testutil.CreateTestInvoice(t, db, "dimitar", "2026-5-15")

		existing.Version = 0
		view, err := svc.UpsertInvoice("dimitar", existing)
		testutil.AssertNoError(t, err)
		if view.Invoice.Version != 2 {
			t.Errorf("expected version 2, got %d", view.Invoice.Version)
		}
	})

	t.Run("locked_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		_, err := svc.UpsertInvoice("dimitar", testutil.NewTestInvoice(t, "dimitar", "2026-6-1"))
		testutil.AssertAppError(t, err, "PERIOD_LOCKED")
	})

	t.Run("requires_settings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)

		_, err := svc.UpsertInvoice("dimitar", testutil.NewTestInvoice(t, "dimitar", "2026-5-1"))
		testutil.AssertAppError(t, err, "SETTINGS_NOT_FOUND")
	})

	t.Run("negative_meetings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		inv := testutil.NewTestInvoice(t, "dimitar", "2026-5-1")
		inv.Meetings = -1
		_, err := svc.UpsertInvoice("dimitar", inv)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("sub_cent_amounts_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		inv := testutil.NewTestInvoice(t, "dimitar", "2026-5-1")
		inv.CustomEntries = []models.CustomEntry{{Description: "fee", Amount: decimal.RequireFromString("10.005")}}
		_, err := svc.UpsertInvoice("dimitar", inv)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		inv = testutil.NewTestInvoice(t, "dimitar", "2026-5-1")
		inv.BaseRate = decimal.RequireFromString("104.001")
		_, err = svc.UpsertInvoice("dimitar", inv)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		if _, err := svc.GetInvoice("dimitar", "2026-5-1"); err == nil {
			t.Error("rejected invoice must not be stored")
		}
	})

	t.Run("caller_invoice_not_mutated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		inv := &models.Invoice{
			ID:             "2026-5-1",
			AppDeployments: []models.DeploymentEntry{{Details: "api v2"}},
			CustomEntries:  []models.CustomEntry{{Description: "fee", Amount: decimal.NewFromInt(5)}},
			BaseRate:       decimal.NewFromInt(104),
		}
		view, err := svc.UpsertInvoice("dimitar", inv)
		testutil.AssertNoError(t, err)

		if inv.AppDeployments[0].ID != "" || inv.CustomEntries[0].ID != "" {
			t.Errorf("caller entries were assigned ids: %v / %v", inv.AppDeployments, inv.CustomEntries)
		}
		if inv.UserID != "" || inv.Version != 0 {
			t.Errorf("caller invoice changed: user %q version %d", inv.UserID, inv.Version)
		}
		if view.Invoice == inv {
			t.Error("expected the view to hold its own invoice")
		}
	})

	t.Run("returns_stored_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		inv := testutil.NewTestInvoice(t, "dimitar", "2026-5-1")
		inv.BaseRate = decimal.RequireFromString("99.90")
		view, err := svc.UpsertInvoice("dimitar", inv)
		testutil.AssertNoError(t, err)

		stored, err := svc.GetInvoice("dimitar", "2026-5-1")
		testutil.AssertNoError(t, err)
		if !view.Invoice.BaseRate.Equal(stored.BaseRate) || view.Invoice.Version != stored.Version {
			t.Errorf("view %s v%d differs from stored %s v%d",
				view.Invoice.BaseRate, view.Invoice.Version, stored.BaseRate, stored.Version)
		}
		if !view.Invoice.CreatedAt.Equal(stored.CreatedAt) {
			t.Errorf("view created_at %s, stored %s", view.Invoice.CreatedAt, stored.CreatedAt)
		}
	})

	t.Run("accounts_are_isolated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")
		testutil.CreateTestRateConfig(t, db, "gordana")

		_, err := svc.UpsertInvoice("dimitar", testutil.NewTestInvoice(t, "dimitar", "2026-5-1"))
		testutil.AssertNoError(t, err)
		_, err = svc.UpsertInvoice("gordana", testutil.NewTestInvoice(t, "gordana", "2026-5-1"))
		testutil.AssertNoError(t, err)

		mine, err := svc.ListInvoices("dimitar")
		testutil.AssertNoError(t, err)
		if len(mine) != 1 || mine[0].UserID != "dimitar" {
			t.Errorf("expected one invoice for dimitar, got %v", mine)
		}
		all, err := svc.ListAllInvoices()
		testutil.AssertNoError(t, err)
		if len(all) != 2 {
			t.Errorf("expected 2 invoices, got %d", len(all))
		}
	})
}

func TestListInvoices_OrderedByPeriod(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestInvoiceService(db)
	testutil.CreateTestInvoice(t, db, "dimitar", "2026-3-15")
	testutil.CreateTestInvoice(t, db, "dimitar", "2026-1-1")
	testutil.CreateTestInvoice(t, db, "dimitar", "2026-2-1")

	invoices, err := svc.ListInvoices("dimitar")
	testutil.AssertNoError(t, err)

	want := []string{"2026-1-1", "2026-2-1", "2026-3-15"}
	if len(invoices) != len(want) {
		t.Fatalf("expected %d invoices, got %d", len(want), len(invoices))
	}
	for i, id := range want {
		if invoices[i].ID != id {
			t.Errorf("invoices[%d] = %s, want %s", i, invoices[i].ID, id)
		}
	}
}

func TestListInvoiceViews(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestInvoiceService(db)
	testutil.CreateTestRateConfig(t, db, "dimitar")
	testutil.CreateTestInvoice(t, db, "dimitar", "2026-2-15")
	testutil.CreateTestInvoice(t, db, "dimitar", "2026-7-1")

	views, err := svc.ListInvoiceViews("dimitar")
	testutil.AssertNoError(t, err)

	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	for _, v := range views {
		if !v.Total.Equal(decimal.NewFromInt(116)) {
			t.Errorf("%s total = %s, want 116", v.Invoice.ID, v.Total)
		}
		if v.IsDraft {
			t.Errorf("%s should not be a draft", v.Invoice.ID)
		}
	}
	if !views[0].Editable || views[1].Editable {
		t.Errorf("expected past invoice editable and future one locked, got %v/%v", views[0].Editable, views[1].Editable)
	}
}

func TestDeleteInvoice(t *testing.T) {
	t.Run("removes_invoice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestInvoice(t, db, "dimitar", "2026-5-1")

		testutil.AssertNoError(t, svc.DeleteInvoice("dimitar", "2026-5-1"))

		_, err := svc.GetInvoice("dimitar", "2026-5-1")
		testutil.AssertAppError(t, err, "INVOICE_NOT_FOUND")
	})

	t.Run("other_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestInvoice(t, db, "dimitar", "2026-5-1")

		err := svc.DeleteInvoice("gordana", "2026-5-1")
		testutil.AssertAppError(t, err, "INVOICE_NOT_FOUND")
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	t.Run("updates_payment_fields_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		original := testutil.CreateTestInvoice(t, db, "dimitar", "2026-1-1")

		inv, err := svc.UpdatePaymentStatus("dimitar", "2026-1-1", true, decimal.RequireFromString("98.80"))
		testutil.AssertNoError(t, err)

		if !inv.IsPaid {
			t.Error("expected invoice to be paid")
		}
		if !inv.ReceivedAmountEUR.Equal(decimal.RequireFromString("98.80")) {
			t.Errorf("expected received 98.80, got %s", inv.ReceivedAmountEUR)
		}
		if inv.Version != original.Version+1 {
			t.Errorf("expected version %d, got %d", original.Version+1, inv.Version)
		}
		if !inv.UpdatedAt.Equal(testNow) {
			t.Errorf("expected updated_at %s, got %s", testNow, inv.UpdatedAt)
		}
		if len(inv.AppDeployments) != 1 || inv.AppDeployments[0].Details != original.AppDeployments[0].Details {
			t.Errorf("line items changed: %v", inv.AppDeployments)
		}
	})

	t.Run("missing_invoice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)

		_, err := svc.UpdatePaymentStatus("dimitar", "2026-1-1", true, decimal.Zero)
		testutil.AssertAppError(t, err, "INVOICE_NOT_FOUND")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestInvoice(t, db, "dimitar", "2026-1-1")

		_, err := svc.UpdatePaymentStatus("dimitar", "2026-1-1", true, decimal.NewFromInt(-1))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("sub_cent_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestInvoice(t, db, "dimitar", "2026-1-1")

		_, err := svc.UpdatePaymentStatus("dimitar", "2026-1-1", true, decimal.RequireFromString("98.805"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		stored, err := svc.GetInvoice("dimitar", "2026-1-1")
		testutil.AssertNoError(t, err)
		if stored.IsPaid {
			t.Error("rejected payment must not be stored")
		}
	})
}

func TestAddDeployment(t *testing.T) {
	t.Run("flags_duplicate_from_history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")
		past := testutil.CreateTestInvoice(t, db, "dimitar", "2026-4-1")

		draft := &models.Invoice{ID: "2026-5-15", BaseRate: decimal.NewFromInt(104)}
		res, err := svc.AddDeployment("dimitar", draft, past.AppDeployments[0].Details)
		testutil.AssertNoError(t, err)

		if !res.Duplicate {
			t.Error("expected duplicate to be flagged")
		}
		if len(res.Invoice.AppDeployments) != 1 {
			t.Errorf("expected the entry to be appended anyway, got %d", len(res.Invoice.AppDeployments))
		}
		if res.Entry.ID == "" {
			t.Error("expected entry id")
		}
		if !res.Total.Equal(decimal.NewFromInt(116)) {
			t.Errorf("expected total 116, got %s", res.Total)
		}

		// Nothing is persisted until the draft is saved.
		_, err = svc.GetInvoice("dimitar", "2026-5-15")
		testutil.AssertAppError(t, err, "INVOICE_NOT_FOUND")
	})

	t.Run("new_details", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		draft := &models.Invoice{ID: "2026-5-15"}
		res, err := svc.AddDeployment("dimitar", draft, "billing service")
		testutil.AssertNoError(t, err)
		if res.Duplicate {
			t.Error("expected no duplicate")
		}
	})

	t.Run("locked_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestInvoiceService(db)
		testutil.CreateTestRateConfig(t, db, "dimitar")

		_, err := svc.AddDeployment("dimitar", &models.Invoice{ID: "2026-7-1"}, "x")
		testutil.AssertAppError(t, err, "PERIOD_LOCKED")
	})
}

func TestPreview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestInvoiceService(db)
	testutil.CreateTestRateConfig(t, db, "dimitar")

	draft := &models.Invoice{
		ID:             "2026-5-1",
		BaseRate:       decimal.NewFromInt(104),
		AppDeployments: []models.DeploymentEntry{{ID: "a", Details: "one"}, {ID: "b", Details: "two"}},
		CustomEntries:  []models.CustomEntry{{ID: "c", Description: "travel", Amount: decimal.NewFromInt(15)}},
		Meetings:       5,
	}
	view, err := svc.Preview("dimitar", draft)
	testutil.AssertNoError(t, err)

	// 104 + 2*12 + floor(5/2)*5 + 15
	if !view.Total.Equal(decimal.NewFromInt(153)) {
		t.Errorf("expected total 153, got %s", view.Total)
	}
	if !view.IsDraft {
		t.Error("expected preview to be a draft")
	}
}
