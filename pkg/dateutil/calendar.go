package dateutil

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// Calendar performs date-only arithmetic in a fixed timezone. Due dates and
// daily aggregation buckets use the user's local calendar date, not the UTC
// date of the underlying timestamp.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a Calendar for the given IANA timezone string,
// e.g. "Asia/Tokyo". An empty timezone means UTC.
func NewCalendar(timezone string) (*Calendar, error) {
	if timezone == "" {
		return &Calendar{location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// DayKey returns the local calendar date of t as "2006-01-02".
func (c *Calendar) DayKey(t time.Time) string {
	return t.In(c.location).Format(dayFormat)
}

// StartOfDay returns midnight at the start of t's local calendar day.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// ParseDate parses a date-only string ("2006-01-02") as midnight local time.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DayLabel returns a short "M/D" label for chart axes.
func (c *Calendar) DayLabel(t time.Time) string {
	t = t.In(c.location)
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}
