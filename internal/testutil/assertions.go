package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	apperrors "invoicer/internal/errors"
)

// AssertAppError fails unless err carries the given AppError code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error %s, got nil", expectedCode)
	}
	if got := apperrors.From(err); got.Code != expectedCode {
		t.Errorf("expected error %s, got %s (%v)", expectedCode, got.Code, err)
	}
}

// AssertNoError stops the test on a non-nil err.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertDecimal compares amounts numerically, so "121.5" equals "121.50".
func AssertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()

	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
