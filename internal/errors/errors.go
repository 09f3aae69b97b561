// Package errors defines the API's error taxonomy. Services return
// *AppError values; handlers and middleware turn them into JSON bodies
// without exposing the wrapped cause.
package errors

import (
	"errors"
	"net/http"
)

// AppError is an error with a stable code, a client-facing message and the
// HTTP status it maps to. Internal carries the cause for logging only.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError with the same code, so errors.Is(err, ErrPeriodLocked)
// holds for copies made by Wrap and WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap copies sentinel and attaches cause.
func Wrap(sentinel *AppError, cause error) *AppError {
	out := *sentinel
	out.Internal = cause
	return &out
}

// WithMessage copies sentinel with a more specific client message.
func WithMessage(sentinel *AppError, message string) *AppError {
	out := *sentinel
	out.Message = message
	return &out
}

// From returns err as an *AppError, wrapping anything else as an internal
// error. A nil err yields nil.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(ErrInternalServer, err)
}

// Access errors.
var (
	ErrUnknownAccount = &AppError{Code: "UNKNOWN_ACCOUNT", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrInvalidPIN     = &AppError{Code: "INVALID_PIN", Message: "Invalid PIN", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Period errors.
var (
	ErrInvalidPeriod = &AppError{Code: "INVALID_PERIOD", Message: "Invalid period id", StatusCode: http.StatusBadRequest}
	ErrPeriodLocked  = &AppError{Code: "PERIOD_LOCKED", Message: "Period has not started yet and cannot be edited", StatusCode: http.StatusForbidden}
)

// Invoice errors.
var (
	ErrInvoiceNotFound = &AppError{Code: "INVOICE_NOT_FOUND", Message: "Invoice not found", StatusCode: http.StatusNotFound}
	ErrInvoiceConflict = &AppError{Code: "INVOICE_CONFLICT", Message: "Invoice was modified by someone else; reload and try again", StatusCode: http.StatusConflict}
)

// Settings errors.
var (
	ErrSettingsNotFound  = &AppError{Code: "SETTINGS_NOT_FOUND", Message: "Rate settings have not been configured", StatusCode: http.StatusNotFound}
	ErrInvalidRateConfig = &AppError{Code: "INVALID_RATE_CONFIG", Message: "Invalid rate configuration", StatusCode: http.StatusBadRequest}
)
