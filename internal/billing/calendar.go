package billing

import "time"

// Calendar binds the period rules to a location and a clock.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar creates a Calendar. A nil clock defaults to time.Now and a nil
// location to UTC.
func NewCalendar(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{loc: loc, now: now}
}

// Location returns the calendar's time zone.
func (c *Calendar) Location() *time.Location { return c.loc }

// Now returns the current instant in the calendar's time zone.
func (c *Calendar) Now() time.Time { return c.now().In(c.loc) }

// Periods generates the periods of year against the current clock.
func (c *Calendar) Periods(year int) []Period {
	return GeneratePeriods(year, c.Now())
}

// Period resolves a period id against the current clock.
func (c *Calendar) Period(id string) (Period, error) {
	key, err := ParsePeriodID(id)
	if err != nil {
		return Period{}, err
	}
	return PeriodFor(key, c.Now()), nil
}

// CanEdit applies the edit lock to p at the current clock.
func (c *Calendar) CanEdit(p Period) bool {
	return CanEdit(p, c.Now())
}
