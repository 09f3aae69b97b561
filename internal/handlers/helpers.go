package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "invoicer/internal/errors"
	"invoicer/internal/logger"
	"invoicer/internal/middleware"
)

// dateLayout is the wire format of civil dates.
const dateLayout = "2006-01-02"

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// getAccountID extracts the account resolved by the account-scope middleware.
// Returns ErrUnknownAccount if not present.
func getAccountID(c *gin.Context) (string, error) {
	id := c.GetString(middleware.AccountIDKey)
	if id == "" {
		return "", apperrors.ErrUnknownAccount
	}
	return id, nil
}

// formatDate renders a civil date without its time or zone.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// respondWithError writes err as an ErrorResponse. Causes wrapped inside an
// AppError are logged, never returned.
func respondWithError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr.Internal != nil {
		logger.Get().Errorw("request failed",
			"code", appErr.Code,
			"error", appErr.Internal.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", middleware.RequestID(c),
		)
	}
	c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
}
