// Package billing holds the pure invoicing rules: the bi-monthly period
// calendar, payment-date adjustment, the edit lock and invoice totals.
// Nothing in this package performs I/O or reads the wall clock; callers
// pass "now" explicitly.
package billing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodsPerYear is the number of bi-monthly periods in a calendar year.
const PeriodsPerYear = 24

// secondHalfStartDay is the first day of the second period of every month.
const secondHalfStartDay = 15

// ErrInvalidPeriodID is returned when a period id cannot be parsed.
var ErrInvalidPeriodID = errors.New("invalid period id")

// Half identifies which half of a month a period covers.
type Half int

const (
	// FirstHalf covers days 1 through 14.
	FirstHalf Half = iota
	// SecondHalf covers day 15 through the last day of the month.
	SecondHalf
)

// PeriodKey is the composite identity of a period.
type PeriodKey struct {
	Year  int
	Month time.Month
	Half  Half
}

// startDay returns the day of month the period starts on.
func (k PeriodKey) startDay() int {
	if k.Half == SecondHalf {
		return secondHalfStartDay
	}
	return 1
}

// ID renders the key as "YYYY-M-D", where D is the start day.
func (k PeriodKey) ID() string {
	return fmt.Sprintf("%d-%d-%d", k.Year, int(k.Month), k.startDay())
}

// String implements fmt.Stringer.
func (k PeriodKey) String() string { return k.ID() }

// Start returns the first day of the period at midnight in loc.
func (k PeriodKey) Start(loc *time.Location) time.Time {
	return time.Date(k.Year, k.Month, k.startDay(), 0, 0, 0, 0, loc)
}

// End returns the last day of the period at midnight in loc.
func (k PeriodKey) End(loc *time.Location) time.Time {
	if k.Half == FirstHalf {
		return time.Date(k.Year, k.Month, secondHalfStartDay-1, 0, 0, 0, 0, loc)
	}
	// Day 0 of the following month normalises to the last day of this one.
	return time.Date(k.Year, k.Month+1, 0, 0, 0, 0, 0, loc)
}

// ParsePeriodID parses an id produced by PeriodKey.ID.
func ParsePeriodID(id string) (PeriodKey, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return PeriodKey{}, fmt.Errorf("%w: %q", ErrInvalidPeriodID, id)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		// Reject signs and zero padding so every key has exactly one id.
		if p == "" || p[0] == '+' || p[0] == '-' || (len(p) > 1 && p[0] == '0') {
			return PeriodKey{}, fmt.Errorf("%w: %q", ErrInvalidPeriodID, id)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return PeriodKey{}, fmt.Errorf("%w: %q", ErrInvalidPeriodID, id)
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return PeriodKey{}, fmt.Errorf("%w: %q", ErrInvalidPeriodID, id)
	}

	key := PeriodKey{Year: year, Month: time.Month(month)}
	switch day {
	case 1:
		key.Half = FirstHalf
	case secondHalfStartDay:
		key.Half = SecondHalf
	default:
		return PeriodKey{}, fmt.Errorf("%w: %q", ErrInvalidPeriodID, id)
	}
	return key, nil
}

// Period is one bi-monthly billing window. Start and End are inclusive
// calendar days; the flags reflect the "now" the period was built with.
type Period struct {
	Key         PeriodKey
	ID          string
	Label       string
	Start       time.Time
	End         time.Time
	PaymentDate time.Time
	IsFuture    bool
	IsCurrent   bool
}

// Contains reports whether t falls on any day from Start through End.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End.AddDate(0, 0, 1))
}

// PeriodFor builds the period identified by key. Dates are placed in the
// location of now.
func PeriodFor(key PeriodKey, now time.Time) Period {
	loc := now.Location()
	start := key.Start(loc)
	end := key.End(loc)

	p := Period{
		Key:         key,
		ID:          key.ID(),
		Label:       fmt.Sprintf("%d.%d-%d.%d", int(start.Month()), start.Day(), int(end.Month()), end.Day()),
		Start:       start,
		End:         end,
		PaymentDate: PaymentDate(end),
		IsFuture:    start.After(now),
	}
	p.IsCurrent = p.Contains(now)
	return p
}

// GeneratePeriods returns the 24 periods of year ordered by start date.
func GeneratePeriods(year int, now time.Time) []Period {
	periods := make([]Period, 0, PeriodsPerYear)
	for m := time.January; m <= time.December; m++ {
		periods = append(periods,
			PeriodFor(PeriodKey{Year: year, Month: m, Half: FirstHalf}, now),
			PeriodFor(PeriodKey{Year: year, Month: m, Half: SecondHalf}, now),
		)
	}
	return periods
}

// CurrentPeriod returns the period flagged as current, falling back to the
// first period when none is (for example a year other than now's).
// It panics on an empty slice.
func CurrentPeriod(periods []Period) Period {
	for _, p := range periods {
		if p.IsCurrent {
			return p
		}
	}
	return periods[0]
}

// PaymentDate moves a due date that lands on a weekend back to the
// preceding Friday. No holiday calendar is applied.
func PaymentDate(end time.Time) time.Time {
	switch end.Weekday() {
	case time.Sunday:
		return end.AddDate(0, 0, -2)
	case time.Saturday:
		return end.AddDate(0, 0, -1)
	default:
		return end
	}
}

// CanEdit reports whether the period's invoice may be changed at now.
// Only periods that have not started yet are locked; the current period
// and every past period stay editable.
func CanEdit(p Period, now time.Time) bool {
	future := p.Start.After(now)
	current := p.Contains(now)
	return !(future && !current)
}
