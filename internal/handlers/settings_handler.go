package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "invoicer/internal/errors"
	"invoicer/internal/models"
	"invoicer/internal/services"
)

// SettingsHandler handles per-account rate configuration.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// SettingsRequest represents the request payload for saving rate settings.
type SettingsRequest struct {
	BaseRate         decimal.Decimal `json:"base_rate" binding:"gte=0"`
	DeploymentRate   decimal.Decimal `json:"deployment_rate" binding:"gte=0"`
	DeploymentLabel  string          `json:"deployment_label" binding:"max=100"`
	MeetingRateUnit  int             `json:"meeting_rate_unit" binding:"required,gte=1"`
	MeetingRateValue decimal.Decimal `json:"meeting_rate_value" binding:"gte=0"`
}

// GetSettings handles loading an account's rate settings.
// @Summary     Get rate settings
// @Description Get the account's rate configuration; settings is null until configured
// @Tags        settings
// @Produce     json
// @Param       user path string true "Account id"
// @Success     200 {object} map[string]models.RateConfig "Rate settings"
// @Failure     404 {object} ErrorResponse "Unknown account"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rc, err := h.settingsService.GetRateConfig(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": rc})
}

// SaveSettings handles storing an account's rate settings.
// @Summary     Save rate settings
// @Description Create or replace the account's rate configuration
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       user    path string          true "Account id"
// @Param       request body SettingsRequest true "Rate settings"
// @Success     200 {object} map[string]models.RateConfig "Saved settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{user}/settings [put]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	userID, err := getAccountID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rc, err := h.settingsService.SaveRateConfig(userID, &models.RateConfig{
		BaseRate:         req.BaseRate,
		DeploymentRate:   req.DeploymentRate,
		DeploymentLabel:  req.DeploymentLabel,
		MeetingRateUnit:  req.MeetingRateUnit,
		MeetingRateValue: req.MeetingRateValue,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SAVE_SETTINGS", "rate_config", userID, c.ClientIP(),
		map[string]interface{}{
			"base_rate":          rc.BaseRate.String(),
			"deployment_rate":    rc.DeploymentRate.String(),
			"meeting_rate_unit":  rc.MeetingRateUnit,
			"meeting_rate_value": rc.MeetingRateValue.String(),
		})

	c.JSON(http.StatusOK, gin.H{"settings": rc})
}
