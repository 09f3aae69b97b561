package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "invoicer/internal/errors"
	"invoicer/internal/middleware"
)

// Routes bundles the handlers mounted by RegisterRoutes.
type Routes struct {
	Accounts []string

	Account  *AccountHandler
	Audit    *AuditHandler
	Exchange *ExchangeHandler
	Invoice  *InvoiceHandler
	Period   *PeriodHandler
	PIN      *PINHandler
	Settings *SettingsHandler
}

// RegisterRoutes mounts the health check, the metrics endpoint and the v1 API.
// Unknown paths answer NOT_FOUND in the standard error body.
func RegisterRoutes(router *gin.Engine, h Routes) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(func(c *gin.Context) {
		respondWithError(c, apperrors.ErrNotFound)
	})

	v1 := router.Group("/api/v1")

	v1.GET("/pin", h.PIN.GetPINStatus)
	v1.POST("/pin/verify", h.PIN.VerifyPIN)
	v1.GET("/periods", h.Period.GetPeriods)
	v1.GET("/exchange-rate", h.Exchange.GetExchangeRate)
	v1.GET("/overview", h.Exchange.GetOverview)
	v1.GET("/audit-logs", h.Audit.GetAuditLogs)
	v1.GET("/accounts", h.Account.GetAccounts)

	// Per-account routes
	account := v1.Group("/accounts/:user")
	account.Use(middleware.AccountScope(h.Accounts))

	account.GET("/settings", h.Settings.GetSettings)
	account.PUT("/settings", h.Settings.SaveSettings)

	invoices := account.Group("/invoices")
	invoices.GET("", h.Invoice.ListInvoices)
	invoices.GET("/:id", h.Invoice.GetInvoice)
	invoices.PUT("/:id", h.Invoice.SaveInvoice)
	invoices.DELETE("/:id", h.Invoice.DeleteInvoice)
	invoices.PATCH("/:id/payment", h.Invoice.UpdatePaymentStatus)
	invoices.POST("/:id/deployments", h.Invoice.AddDeployment)
	invoices.POST("/:id/preview", h.Invoice.PreviewInvoice)
}
