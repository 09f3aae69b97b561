package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicer/internal/services"
)

// AccountHandler lists the configured accounts.
type AccountHandler struct {
	accounts        []string
	settingsService services.SettingsServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts []string, settingsService services.SettingsServicer) *AccountHandler {
	return &AccountHandler{accounts: accounts, settingsService: settingsService}
}

// AccountResponse is one configured account.
type AccountResponse struct {
	ID          string `json:"id"`
	HasSettings bool   `json:"has_settings"`
}

// GetAccounts handles listing the configured accounts.
// @Summary     List accounts
// @Description Get the configured accounts in display order and whether each has rate settings
// @Tags        accounts
// @Produce     json
// @Success     200 {object} map[string][]AccountResponse "Accounts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	accounts := make([]AccountResponse, 0, len(h.accounts))
	for _, id := range h.accounts {
		rc, err := h.settingsService.GetRateConfig(id)
		if err != nil {
			respondWithError(c, err)
			return
		}
		accounts = append(accounts, AccountResponse{ID: id, HasSettings: rc != nil})
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}
