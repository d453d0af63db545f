package task

import "time"

// Effort timer state machine: Idle ⇄ Working. State changes only through
// Start and Stop; ElapsedSeconds is a pure read used by the dashboard's
// polling tick and never mutates anything.

// Start opens a work session at now. The task joins the actively-tracked set.
// Starting an already-working task is a caller error.
func (t *Task) Start(now time.Time) error {
	if t.IsWorking {
		return ErrAlreadyWorking
	}
	t.IsWorking = true
	t.WorkStartTime = &now
	t.Tracked = true
	return nil
}

// Stop closes the open work session at now, folding the wall-clock elapsed
// time into ActualHours. finalize=true also leaves the tracked set
// ("Finish"); finalize=false keeps the task tracked but idle ("Break").
func (t *Task) Stop(now time.Time, finalize bool) error {
	if !t.IsWorking || t.WorkStartTime == nil {
		return ErrNotWorking
	}
	elapsed := now.Sub(*t.WorkStartTime)
	t.ActualHours += elapsed.Hours()
	t.IsWorking = false
	t.WorkStartTime = nil
	if finalize {
		t.Tracked = false
	}
	return nil
}

// ElapsedSeconds returns the age of the open work session in seconds, or 0
// when the task is idle.
func (t Task) ElapsedSeconds(now time.Time) float64 {
	if !t.IsWorking || t.WorkStartTime == nil {
		return 0
	}
	return now.Sub(*t.WorkStartTime).Seconds()
}
