package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "invoicer/internal/errors"
	"invoicer/internal/pagination"
	"invoicer/internal/services"
)

// AuditHandler serves the activity log.
type AuditHandler struct {
	auditService services.AuditServicer
	accounts     map[string]bool
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer, accounts []string) *AuditHandler {
	known := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		known[a] = true
	}
	return &AuditHandler{auditService: auditService, accounts: known}
}

// GetAuditLogs handles listing audit entries.
// @Summary     List audit logs
// @Description Get a paginated list of changes, newest first
// @Tags        audit
// @Produce     json
// @Param       user      query string false "Filter by account id"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Paginated audit logs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Unknown account"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	userID := strings.ToLower(c.Query("user"))
	if userID != "" && !h.accounts[userID] {
		respondWithError(c, apperrors.ErrUnknownAccount)
		return
	}

	result, err := h.auditService.List(page, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
