package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicer/internal/exchange"
	"invoicer/internal/metrics"
	"invoicer/internal/services"
)

// ExchangeHandler serves the USD→EUR rate and the payment overview.
type ExchangeHandler struct {
	rates           exchange.RateSource
	overviewService services.OverviewServicer
}

// NewExchangeHandler creates a new ExchangeHandler.
func NewExchangeHandler(rates exchange.RateSource, overviewService services.OverviewServicer) *ExchangeHandler {
	return &ExchangeHandler{rates: rates, overviewService: overviewService}
}

// GetExchangeRate handles fetching the current USD→EUR rate.
// @Summary     Get exchange rate
// @Description Get the USD→EUR rate; live is false when the fallback rate is used
// @Tags        overview
// @Produce     json
// @Success     200 {object} map[string]exchange.Rate "Exchange rate"
// @Router      /exchange-rate [get]
func (h *ExchangeHandler) GetExchangeRate(c *gin.Context) {
	rate := h.rates.USDToEUR(c.Request.Context())
	metrics.RecordExchangeRate(rate.Live)
	c.JSON(http.StatusOK, gin.H{"exchange_rate": rate})
}

// GetOverview handles the cross-account payment overview.
// @Summary     Get payment overview
// @Description Get every stored invoice of every account with totals, expected EUR and payment state
// @Tags        overview
// @Produce     json
// @Success     200 {object} services.Overview "Overview"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /overview [get]
func (h *ExchangeHandler) GetOverview(c *gin.Context) {
	overview, err := h.overviewService.GetOverview(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	metrics.RecordExchangeRate(overview.ExchangeRate.Live)
	c.JSON(http.StatusOK, overview)
}
