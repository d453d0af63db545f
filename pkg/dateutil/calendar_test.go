package dateutil_test

import (
	"testing"
	"time"

	"tasktrack/pkg/dateutil"
)

func TestCalendar(t *testing.T) {
	t.Run("Invalid Timezone", func(t *testing.T) {
		if _, err := dateutil.NewCalendar("Not/AZone"); err == nil {
			t.Errorf("expected error for unknown timezone")
		}
	})

	t.Run("Empty Timezone Defaults To UTC", func(t *testing.T) {
		cal, err := dateutil.NewCalendar("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.Location() != time.UTC {
			t.Errorf("expected UTC location")
		}
	})

	t.Run("DayKey Uses Local Date", func(t *testing.T) {
		cal, err := dateutil.NewCalendar("Asia/Tokyo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 23:00 UTC on Jan 1 is already Jan 2 in Tokyo (UTC+9).
		utc := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
		if got := cal.DayKey(utc); got != "2024-01-02" {
			t.Errorf("expected 2024-01-02, got %s", got)
		}
	})

	t.Run("ParseDate Round Trip", func(t *testing.T) {
		cal, _ := dateutil.NewCalendar("Asia/Tokyo")

		parsed, err := cal.ParseDate("2024-01-05")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.DayKey(parsed) != "2024-01-05" {
			t.Errorf("round trip mismatch: %s", cal.DayKey(parsed))
		}
		if parsed.Hour() != 0 || parsed.Minute() != 0 {
			t.Errorf("expected midnight local time, got %v", parsed)
		}
	})

	t.Run("ParseDate Rejects Garbage", func(t *testing.T) {
		cal, _ := dateutil.NewCalendar("")
		if _, err := cal.ParseDate("05-01-2024"); err == nil {
			t.Errorf("expected error for non-ISO date")
		}
	})

	t.Run("StartOfDay", func(t *testing.T) {
		cal, _ := dateutil.NewCalendar("")
		ts := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
		start := cal.StartOfDay(ts)
		if start.Hour() != 0 || start.Day() != 10 {
			t.Errorf("unexpected start of day: %v", start)
		}
	})

	t.Run("DayLabel", func(t *testing.T) {
		cal, _ := dateutil.NewCalendar("")
		ts := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
		if got := cal.DayLabel(ts); got != "3/7" {
			t.Errorf("expected 3/7, got %s", got)
		}
	})
}
