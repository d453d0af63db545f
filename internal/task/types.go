package task

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusActive Status = "active"
	StatusDone   Status = "done"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusDone
}

// Task is a unit of trackable work. IsWorking and WorkStartTime move
// together: a work session is open iff both are set.
type Task struct {
	ID             string
	CategoryID     int64
	CategoryName   string
	Title          string
	Status         Status
	CreatedAt      time.Time
	EstimatedHours *float64 // nil when no estimate was given
	ActualHours    float64  // completed sessions only, excludes an open session
	IsWorking      bool
	WorkStartTime  *time.Time
	Tracked        bool // member of the dashboard's actively-tracked panel
	DueDate        *time.Time
}

// ValidateTitle trims and checks a task title. Returns the trimmed title.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}
	return trimmed, nil
}

// ValidateEstimate checks an optional effort estimate. When provided it must
// be a positive number of hours.
func ValidateEstimate(estimated *float64) error {
	if estimated != nil && *estimated <= 0 {
		return ErrInvalidEstimate
	}
	return nil
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title          string
	CategoryName   string
	EstimatedHours *float64
	DueDate        *time.Time
}

type ListInput struct {
	Status   StatusFilter
	Category string // category name, or FilterAll
}

// UpdateInput is a partial update: nil pointers and empty strings leave the
// field unchanged. ClearDueDate removes the due date; ResetActualHours sets
// the accumulated effort back to zero.
type UpdateInput struct {
	ID               string
	Title            string
	CategoryName     string
	Status           Status
	EstimatedHours   *float64
	DueDate          *time.Time
	ClearDueDate     bool
	ResetActualHours bool
}

type StopInput struct {
	ID       string
	Finalize bool // true removes the task from the tracked panel ("Finish")
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task Task
}

type ListOutput struct {
	Tasks []Task
	Total int
}

type DetailOutput struct {
	Task Task
}

type UpdateOutput struct {
	Task Task
}

type TimerOutput struct {
	Task Task
}

type ElapsedOutput struct {
	TaskID         string
	IsWorking      bool
	ElapsedSeconds float64
}
