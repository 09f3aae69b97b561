package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "invoicer/internal/errors"
	"invoicer/internal/metrics"
	"invoicer/internal/models"
	"invoicer/internal/services"
)

// InvoiceHandler handles invoice-related requests.
type InvoiceHandler struct {
	invoiceService services.InvoiceServicer
	auditService   services.AuditServicer
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService services.InvoiceServicer, auditService services.AuditServicer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, auditService: auditService}
}

// DeploymentEntryRequest is one deployment line in an invoice payload.
type DeploymentEntryRequest struct {
	ID      string `json:"id" binding:"max=64"`
	Details string `json:"details" binding:"max=500"`
}

// CustomEntryRequest is one free-form line in an invoice payload. Amount may
// be negative.
type CustomEntryRequest struct {
	ID          string          `json:"id" binding:"max=64"`
	Description string          `json:"description" binding:"max=200"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceRequest is the full editable state of an invoice. The period id is
// taken from the path.
type InvoiceRequest struct {
	AppDeployments    []DeploymentEntryRequest `json:"app_deployments" binding:"omitempty,dive"`
	CustomEntries     []CustomEntryRequest     `json:"custom_entries" binding:"omitempty,dive"`
	Meetings          int                      `json:"meetings" binding:"gte=0"`
	BaseRate          decimal.Decimal          `json:"base_rate" binding:"gte=0"`
	IsPaid            bool                     `json:"is_paid"`
	ReceivedAmountEUR decimal.Decimal          `json:"received_amount_eur" binding:"gte=0"`
	Version           int                      `json:"version" binding:"gte=0"`
}

// AddDeploymentRequest appends a deployment to an unsaved draft.
type AddDeploymentRequest struct {
	Draft   InvoiceRequest `json:"draft"`
	Details string         `json:"details" binding:"required,max=500"`
}

// PaymentStatusRequest updates only the payment fields of an invoice.
type PaymentStatusRequest struct {
	IsPaid            *bool           `json:"is_paid" binding:"required"`
	ReceivedAmountEUR decimal.Decimal `json:"received_amount_eur" binding:"gte=0"`
}

// periodURI is the period id path segment of invoice routes.
type periodURI struct {
	ID string `uri:"id" binding:"required,period_id"`
}

// bindPeriodID validates the :id path segment before any body is read.
func bindPeriodID(c *gin.Context) (string, error) {
	var uri periodURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidPeriod, fmt.Sprintf("invalid period id %q", c.Param("id")))
	}
	return uri.ID, nil
}

// toInvoice converts the payload into an invoice for period id.
func (r *InvoiceRequest) toInvoice(id string) *models.Invoice {
	inv := &models.Invoice{
		ID:                id,
		AppDeployments:    make([]models.DeploymentEntry, 0, len(r.AppDeployments)),
		CustomEntries:     make([]models.CustomEntry, 0, len(r.CustomEntries)),
		Meetings:          r.Meetings,
		BaseRate:          r.BaseRate,
		IsPaid:            r.IsPaid,
		ReceivedAmountEUR: r.ReceivedAmountEUR,
		Version:           r.Version,
	}
	for _, d := range r.AppDeployments {
		inv.AppDeployments = append(inv.AppDeployments, models.DeploymentEntry{ID: d.ID, Details: d.Details})
	}
	for _, e := range r.CustomEntries {
		inv.CustomEntries = append(inv.CustomEntries, models.CustomEntry{ID: e.ID, Description: e.Description, Amount: e.Amount})
	}
	return inv
}

// ListInvoices handles listing the stored invoices of an account.
// @Summary     List invoices
// @Description Get every stored invoice of the account with its computed total
// @Tags        invoices
// @Produce     json
// @Param       user path string true "Account id"
// @Success     200 {object} map[string][]services.InvoiceView "Invoices"
// @Failure     404 {object} ErrorResponse "Unknown account"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	views, err := h.invoiceService.ListInvoiceViews(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": views})
}

// GetInvoice handles loading the invoice of a period.
// @Summary     Get an invoice
// @Description Get the stored invoice of a period, or a fresh draft when none exists
// @Tags        invoices
// @Produce     json
// @Param       user path string true "Account id"
// @Param       id   path string true "Period id (YYYY-M-D)"
// @Success     200 {object} services.InvoiceView "Invoice or draft"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     404 {object} ErrorResponse "Unknown account"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := bindPeriodID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.invoiceService.GetOrDraft(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SaveInvoice handles storing the full state of an invoice.
// @Summary     Save an invoice
// @Description Create or replace the invoice of a period. Periods that have not started are locked.
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       user    path string         true "Account id"
// @Param       id      path string         true "Period id (YYYY-M-D)"
// @Param       request body InvoiceRequest true "Invoice state"
// @Success     200 {object} services.InvoiceView "Saved invoice"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Period locked"
// @Failure     404 {object} ErrorResponse "Settings not configured"
// @Failure     409 {object} ErrorResponse "Version conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/invoices/{id} [put]
func (h *InvoiceHandler) SaveInvoice(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := bindPeriodID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	view, err := h.invoiceService.UpsertInvoice(userID, req.toInvoice(id))
	if err != nil {
		respondWithError(c, err)
		return
	}

	metrics.RecordInvoiceWrite(userID, metrics.ActionSave)
	h.auditService.Log(userID, "SAVE_INVOICE", "invoice", view.Invoice.ID, c.ClientIP(),
		map[string]interface{}{
			"deployments": len(view.Invoice.AppDeployments),
			"meetings":    view.Invoice.Meetings,
			"total":       view.Total.String(),
			"version":     view.Invoice.Version,
		})

	c.JSON(http.StatusOK, view)
}

// DeleteInvoice handles deleting a stored invoice.
// @Summary     Delete an invoice
// @Description Delete the stored invoice of a period
// @Tags        invoices
// @Produce     json
// @Param       user path string true "Account id"
// @Param       id   path string true "Period id (YYYY-M-D)"
// @Success     200 {object} MessageResponse "Invoice deleted"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := bindPeriodID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	metrics.RecordInvoiceWrite(userID, metrics.ActionDelete)
	h.auditService.Log(userID, "DELETE_INVOICE", "invoice", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// UpdatePaymentStatus handles marking an invoice paid or unpaid.
// @Summary     Update payment status
// @Description Set the paid flag and the amount received in EUR without touching line items
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       user    path string               true "Account id"
// @Param       id      path string               true "Period id (YYYY-M-D)"
// @Param       request body PaymentStatusRequest true "Payment status"
// @Success     200 {object} map[string]models.Invoice "Updated invoice"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Invoice not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/invoices/{id}/payment [patch]
func (h *InvoiceHandler) UpdatePaymentStatus(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := bindPeriodID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inv, err := h.invoiceService.UpdatePaymentStatus(userID, id, *req.IsPaid, req.ReceivedAmountEUR)
	if err != nil {
		respondWithError(c, err)
		return
	}

	metrics.RecordInvoiceWrite(userID, metrics.ActionPayment)
	h.auditService.Log(userID, "UPDATE_PAYMENT", "invoice", inv.ID, c.ClientIP(),
		map[string]interface{}{"is_paid": inv.IsPaid, "received_amount_eur": inv.ReceivedAmountEUR.String()})

	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}

// AddDeployment handles appending a deployment to an unsaved draft.
// @Summary     Add a deployment
// @Description Append a deployment to a draft and report whether its details were billed before. Nothing is stored.
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       user    path string               true "Account id"
// @Param       id      path string               true "Period id (YYYY-M-D)"
// @Param       request body AddDeploymentRequest true "Draft and deployment details"
// @Success     200 {object} services.DeploymentResult "Updated draft"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Period locked"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/invoices/{id}/deployments [post]
func (h *InvoiceHandler) AddDeployment(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := bindPeriodID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.invoiceService.AddDeployment(userID, req.Draft.toInvoice(id), req.Details)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PreviewInvoice handles recomputing the total of an unsaved draft.
// @Summary     Preview an invoice
// @Description Compute the total of a draft without storing it
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       user    path string         true "Account id"
// @Param       id      path string         true "Period id (YYYY-M-D)"
// @Param       request body InvoiceRequest true "Draft state"
// @Success     200 {object} services.InvoiceView "Draft with total"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/invoices/{id}/preview [post]
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := bindPeriodID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	view, err := h.invoiceService.Preview(userID, req.toInvoice(id))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
