package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"invoicer/internal/billing"
	apperrors "invoicer/internal/errors"
)

// PeriodHandler serves the billing calendar.
type PeriodHandler struct {
	cal     *billing.Calendar
	dueTime string
}

// NewPeriodHandler creates a new PeriodHandler. dueTime is the display-only
// payment time shown next to payment dates, e.g. "11:30 CET".
func NewPeriodHandler(cal *billing.Calendar, dueTime string) *PeriodHandler {
	return &PeriodHandler{cal: cal, dueTime: dueTime}
}

// PeriodResponse is one billing period. Dates are YYYY-MM-DD.
type PeriodResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PaymentDate string `json:"payment_date"`
	IsFuture    bool   `json:"is_future"`
	IsCurrent   bool   `json:"is_current"`
	Editable    bool   `json:"editable"`
}

// PeriodsResponse is the calendar of one year.
type PeriodsResponse struct {
	Year           int              `json:"year"`
	CurrentID      string           `json:"current_id"`
	PaymentDueTime string           `json:"payment_due_time"`
	Periods        []PeriodResponse `json:"periods"`
}

// GetPeriods handles listing the periods of a year.
// @Summary     List periods
// @Description Get the 24 bi-monthly periods of a year with payment dates and edit flags
// @Tags        periods
// @Produce     json
// @Param       year query int false "Calendar year (default: current year)"
// @Success     200 {object} PeriodsResponse "Periods"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Router      /periods [get]
func (h *PeriodHandler) GetPeriods(c *gin.Context) {
	year := h.cal.Now().Year()
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 || y > 9999 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year"))
			return
		}
		year = y
	}

	periods := h.cal.Periods(year)
	resp := PeriodsResponse{
		Year:           year,
		CurrentID:      billing.CurrentPeriod(periods).ID,
		PaymentDueTime: h.dueTime,
		Periods:        make([]PeriodResponse, 0, len(periods)),
	}
	for _, p := range periods {
		resp.Periods = append(resp.Periods, PeriodResponse{
			ID:          p.ID,
			Label:       p.Label,
			StartDate:   formatDate(p.Start),
			EndDate:     formatDate(p.End),
			PaymentDate: formatDate(p.PaymentDate),
			IsFuture:    p.IsFuture,
			IsCurrent:   p.IsCurrent,
			Editable:    h.cal.CanEdit(p),
		})
	}

	c.JSON(http.StatusOK, resp)
}
