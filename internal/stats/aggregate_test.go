package stats_test

import (
	"testing"
	"time"

	"tasktrack/internal/category"
	"tasktrack/internal/stats"
	"tasktrack/internal/task"
	"tasktrack/pkg/dateutil"
)

func hoursPtr(h float64) *float64 { return &h }

func mustCalendar(t *testing.T, tz string) *dateutil.Calendar {
	t.Helper()
	cal, err := dateutil.NewCalendar(tz)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	return cal
}

func TestComputeOverview(t *testing.T) {
	t.Run("Empty Collection", func(t *testing.T) {
		o := stats.ComputeOverview(nil)
		if o.Total != 0 || o.Done != 0 || o.Percent != 0 {
			t.Errorf("expected all-zero overview, got %+v", o)
		}
	})

	t.Run("One Of Three Done", func(t *testing.T) {
		tasks := []task.Task{
			{ID: "a", Status: task.StatusDone},
			{ID: "b", Status: task.StatusActive},
			{ID: "c", Status: task.StatusActive},
		}
		o := stats.ComputeOverview(tasks)
		if o.Total != 3 || o.Done != 1 || o.Percent != 33 {
			t.Errorf("expected 1/3 = 33%%, got %+v", o)
		}
	})

	t.Run("Two Of Three Done Rounds Up", func(t *testing.T) {
		tasks := []task.Task{
			{ID: "a", Status: task.StatusDone},
			{ID: "b", Status: task.StatusDone},
			{ID: "c", Status: task.StatusActive},
		}
		if o := stats.ComputeOverview(tasks); o.Percent != 67 {
			t.Errorf("expected 67%%, got %d", o.Percent)
		}
	})
}

func TestComputeCategoryProgress(t *testing.T) {
	categories := []category.Category{
		{ID: 1, Name: "Work"},
		{ID: 2, Name: "Home"},
		{ID: 3, Name: "Idle"},
	}
	tasks := []task.Task{
		{ID: "a", CategoryID: 1, Status: task.StatusDone},
		{ID: "b", CategoryID: 1, Status: task.StatusActive},
		{ID: "c", CategoryID: 2, Status: task.StatusActive},
	}

	progress := stats.ComputeCategoryProgress(tasks, categories)
	if len(progress) != 2 {
		t.Fatalf("expected zero-task category omitted, got %d entries", len(progress))
	}
	if progress[0].Name != "Work" || progress[0].Done != 1 || progress[0].Total != 2 || progress[0].Percent != 50 {
		t.Errorf("unexpected Work progress: %+v", progress[0])
	}
	if progress[1].Name != "Home" || progress[1].Percent != 0 {
		t.Errorf("unexpected Home progress: %+v", progress[1])
	}
}

func TestComputeEffortSummary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Empty Input", func(t *testing.T) {
		s := stats.ComputeEffortSummary(nil, now)
		if s.TaskCount != 0 || s.EstimatedHours != 0 || s.ActualSeconds != 0 || s.Percent != 0 {
			t.Errorf("expected zero summary, got %+v", s)
		}
	})

	t.Run("Done Tasks Excluded", func(t *testing.T) {
		tasks := []task.Task{
			{ID: "a", Status: task.StatusDone, EstimatedHours: hoursPtr(5), ActualHours: 5},
			{ID: "b", Status: task.StatusActive, EstimatedHours: hoursPtr(2), ActualHours: 1},
		}
		s := stats.ComputeEffortSummary(tasks, now)
		if s.TaskCount != 1 || s.EstimatedHours != 2 || s.ActualSeconds != 3600 {
			t.Errorf("done task leaked into summary: %+v", s)
		}
		if s.Percent != 50 {
			t.Errorf("expected 50%%, got %d", s.Percent)
		}
	})

	t.Run("Working Task Adds Live Elapsed", func(t *testing.T) {
		start := now.Add(-30 * time.Minute)
		tasks := []task.Task{{
			ID:             "a",
			Status:         task.StatusActive,
			EstimatedHours: hoursPtr(1),
			ActualHours:    0.5,
			IsWorking:      true,
			WorkStartTime:  &start,
		}}
		s := stats.ComputeEffortSummary(tasks, now)
		// 0.5h stored + 30min live = 3600s
		if s.ActualSeconds != 3600 {
			t.Errorf("expected 3600 actual seconds, got %v", s.ActualSeconds)
		}
		if s.Percent != 100 {
			t.Errorf("expected 100%%, got %d", s.Percent)
		}
	})

	t.Run("Percent Capped At 100", func(t *testing.T) {
		tasks := []task.Task{{ID: "a", Status: task.StatusActive, EstimatedHours: hoursPtr(1), ActualHours: 3}}
		if s := stats.ComputeEffortSummary(tasks, now); s.Percent != 100 {
			t.Errorf("expected cap at 100, got %d", s.Percent)
		}
	})

	t.Run("No Estimates Means Zero Percent", func(t *testing.T) {
		tasks := []task.Task{{ID: "a", Status: task.StatusActive, ActualHours: 3}}
		if s := stats.ComputeEffortSummary(tasks, now); s.Percent != 0 {
			t.Errorf("expected 0%% with no estimates, got %d", s.Percent)
		}
	})
}

func TestComputeDailySeries(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("Thirty Entries Ending Today", func(t *testing.T) {
		cal := mustCalendar(t, "")
		series := stats.ComputeDailySeries(nil, now, cal)
		if len(series) != 30 {
			t.Fatalf("expected 30 entries, got %d", len(series))
		}
		last := series[len(series)-1]
		if cal.DayKey(last.Date) != "2026-03-10" {
			t.Errorf("expected series to end today, got %s", cal.DayKey(last.Date))
		}
		first := series[0]
		if cal.DayKey(first.Date) != "2026-02-09" {
			t.Errorf("expected series to start 29 days back, got %s", cal.DayKey(first.Date))
		}
		for _, day := range series {
			if day.Hours == nil {
				t.Fatalf("empty day %s has nil breakdown", day.Label)
			}
		}
	})

	t.Run("Effort Bucketed By Creation Date", func(t *testing.T) {
		cal := mustCalendar(t, "")
		tasks := []task.Task{
			{ID: "a", CategoryName: "Work", CreatedAt: now.Add(-2 * time.Hour), ActualHours: 1.5},
			{ID: "b", CategoryName: "Work", CreatedAt: now.AddDate(0, 0, -1), ActualHours: 0.5},
			{ID: "c", CategoryName: "Home", CreatedAt: now.Add(-time.Hour), ActualHours: 2},
			{ID: "d", CategoryName: "Work", CreatedAt: now.AddDate(0, 0, -40), ActualHours: 9},
		}
		series := stats.ComputeDailySeries(tasks, now, cal)
		today := series[len(series)-1]
		yesterday := series[len(series)-2]
		if today.Hours["Work"] != 1.5 || today.Hours["Home"] != 2 {
			t.Errorf("unexpected today breakdown: %+v", today.Hours)
		}
		if yesterday.Hours["Work"] != 0.5 {
			t.Errorf("unexpected yesterday breakdown: %+v", yesterday.Hours)
		}
		var total float64
		for _, day := range series {
			for _, h := range day.Hours {
				total += h
			}
		}
		// The 40-day-old task falls outside the window.
		if total != 4 {
			t.Errorf("expected 4 hours inside the window, got %v", total)
		}
	})

	t.Run("Buckets Follow Local Calendar Date", func(t *testing.T) {
		cal := mustCalendar(t, "Asia/Tokyo")
		// 23:00 UTC on Mar 9 is already Mar 10 in Tokyo.
		created := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)
		tasks := []task.Task{{ID: "a", CategoryName: "Work", CreatedAt: created, ActualHours: 1}}

		series := stats.ComputeDailySeries(tasks, now, cal)
		today := series[len(series)-1]
		if cal.DayKey(today.Date) != "2026-03-11" {
			// now is 15:00 UTC Mar 10 = 00:00 JST Mar 11
			t.Fatalf("expected Tokyo today 2026-03-11, got %s", cal.DayKey(today.Date))
		}
		var found *stats.DailyEntry
		for i := range series {
			if cal.DayKey(series[i].Date) == "2026-03-10" {
				found = &series[i]
			}
		}
		if found == nil || found.Hours["Work"] != 1 {
			t.Errorf("expected effort under Tokyo's Mar 10 bucket, got %+v", found)
		}
	})
}
