package task_test

import (
	"math"
	"testing"
	"time"

	"tasktrack/internal/task"
)

// checkTimerInvariant verifies IsWorking == true iff WorkStartTime is set.
func checkTimerInvariant(t *testing.T, tk task.Task) {
	t.Helper()
	if tk.IsWorking != (tk.WorkStartTime != nil) {
		t.Fatalf("invariant violated: IsWorking=%v WorkStartTime=%v", tk.IsWorking, tk.WorkStartTime)
	}
}

func TestTimer(t *testing.T) {
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Start Opens Session And Tracks", func(t *testing.T) {
		tk := task.Task{ID: "t1", Status: task.StatusActive}
		if err := tk.Start(base); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkTimerInvariant(t, tk)
		if !tk.IsWorking || !tk.Tracked {
			t.Errorf("expected working and tracked, got working=%v tracked=%v", tk.IsWorking, tk.Tracked)
		}
		if !tk.WorkStartTime.Equal(base) {
			t.Errorf("expected start time %v, got %v", base, tk.WorkStartTime)
		}
	})

	t.Run("Double Start Rejected", func(t *testing.T) {
		tk := task.Task{ID: "t1"}
		tk.Start(base)
		if err := tk.Start(base.Add(time.Minute)); err != task.ErrAlreadyWorking {
			t.Errorf("expected ErrAlreadyWorking, got %v", err)
		}
		checkTimerInvariant(t, tk)
	})

	t.Run("Stop Accumulates Elapsed Over 3600", func(t *testing.T) {
		tk := task.Task{ID: "t1", ActualHours: 1.5}
		tk.Start(base)

		const delta = 90 * time.Second
		if err := tk.Stop(base.Add(delta), false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkTimerInvariant(t, tk)

		want := 1.5 + delta.Seconds()/3600
		if math.Abs(tk.ActualHours-want) > 1e-9 {
			t.Errorf("expected actual hours %v, got %v", want, tk.ActualHours)
		}
	})

	t.Run("Stop Without Session Rejected", func(t *testing.T) {
		tk := task.Task{ID: "t1"}
		if err := tk.Stop(base, false); err != task.ErrNotWorking {
			t.Errorf("expected ErrNotWorking, got %v", err)
		}
		checkTimerInvariant(t, tk)
	})

	t.Run("Break Keeps Tracked, Finish Clears It", func(t *testing.T) {
		tk := task.Task{ID: "t1"}
		tk.Start(base)
		tk.Stop(base.Add(time.Minute), false) // break
		if !tk.Tracked {
			t.Errorf("break should keep the task tracked")
		}
		checkTimerInvariant(t, tk)

		tk.Start(base.Add(2 * time.Minute))
		tk.Stop(base.Add(3*time.Minute), true) // finish
		if tk.Tracked {
			t.Errorf("finish should remove the task from the tracked set")
		}
		checkTimerInvariant(t, tk)
	})

	t.Run("Resume Accumulates Across Sessions", func(t *testing.T) {
		tk := task.Task{ID: "t1"}
		tk.Start(base)
		tk.Stop(base.Add(30*time.Minute), false)
		tk.Start(base.Add(time.Hour))
		tk.Stop(base.Add(time.Hour+30*time.Minute), true)

		if math.Abs(tk.ActualHours-1.0) > 1e-9 {
			t.Errorf("expected 1.0 accumulated hours, got %v", tk.ActualHours)
		}
	})

	t.Run("ElapsedSeconds", func(t *testing.T) {
		tk := task.Task{ID: "t1"}
		if got := tk.ElapsedSeconds(base); got != 0 {
			t.Errorf("idle task must report 0 elapsed, got %v", got)
		}

		tk.Start(base)
		if got := tk.ElapsedSeconds(base.Add(45 * time.Second)); got != 45 {
			t.Errorf("expected 45 elapsed seconds, got %v", got)
		}

		// Pure read: calling it must not mutate timer state.
		checkTimerInvariant(t, tk)
		if tk.ActualHours != 0 {
			t.Errorf("ElapsedSeconds must not fold time into ActualHours")
		}
	})
}

func TestValidation(t *testing.T) {
	t.Run("Title Trimmed", func(t *testing.T) {
		got, err := task.ValidateTitle("  write report  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "write report" {
			t.Errorf("expected trimmed title, got %q", got)
		}
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		if _, err := task.ValidateTitle("   "); err != task.ErrEmptyTitle {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Estimate", func(t *testing.T) {
		if err := task.ValidateEstimate(nil); err != nil {
			t.Errorf("nil estimate is allowed, got %v", err)
		}
		pos := 2.5
		if err := task.ValidateEstimate(&pos); err != nil {
			t.Errorf("positive estimate is allowed, got %v", err)
		}
		zero := 0.0
		if err := task.ValidateEstimate(&zero); err != task.ErrInvalidEstimate {
			t.Errorf("expected ErrInvalidEstimate for zero, got %v", err)
		}
		neg := -1.0
		if err := task.ValidateEstimate(&neg); err != task.ErrInvalidEstimate {
			t.Errorf("expected ErrInvalidEstimate for negative, got %v", err)
		}
	})
}
