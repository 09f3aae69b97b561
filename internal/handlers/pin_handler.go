package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	apperrors "invoicer/internal/errors"
)

// PINHandler checks the display PIN. The PIN only hides the UI; it does not
// issue sessions or protect the API.
type PINHandler struct {
	hash []byte
}

// NewPINHandler creates a new PINHandler from a bcrypt hash. An empty hash
// disables the gate.
func NewPINHandler(hash string) *PINHandler {
	return &PINHandler{hash: []byte(hash)}
}

// VerifyPINRequest represents the request payload for PIN verification.
type VerifyPINRequest struct {
	PIN string `json:"pin" binding:"required,pin"`
}

// VerifyPINResponse reports the outcome of a PIN check.
type VerifyPINResponse struct {
	Valid    bool `json:"valid"`
	Required bool `json:"required"`
}

// GetPINStatus handles reporting whether a PIN is configured.
// @Summary     PIN gate status
// @Description Report whether the UI must ask for a PIN
// @Tags        pin
// @Produce     json
// @Success     200 {object} VerifyPINResponse "Gate status"
// @Router      /pin [get]
func (h *PINHandler) GetPINStatus(c *gin.Context) {
	c.JSON(http.StatusOK, VerifyPINResponse{Valid: len(h.hash) == 0, Required: len(h.hash) > 0})
}

// VerifyPIN handles checking a PIN against the configured hash.
// @Summary     Verify PIN
// @Description Compare a PIN with the configured bcrypt hash
// @Tags        pin
// @Accept      json
// @Produce     json
// @Param       request body VerifyPINRequest true "PIN"
// @Success     200 {object} VerifyPINResponse "PIN accepted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Wrong PIN"
// @Router      /pin/verify [post]
func (h *PINHandler) VerifyPIN(c *gin.Context) {
	if len(h.hash) == 0 {
		c.JSON(http.StatusOK, VerifyPINResponse{Valid: true, Required: false})
		return
	}

	var req VerifyPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.hash, []byte(req.PIN)); err != nil {
		respondWithError(c, apperrors.ErrInvalidPIN)
		return
	}

	c.JSON(http.StatusOK, VerifyPINResponse{Valid: true, Required: true})
}
