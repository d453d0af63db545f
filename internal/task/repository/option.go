package repository

import (
	"time"

	"tasktrack/internal/task"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID             string
	CategoryID     int64
	Title          string
	Status         task.Status
	CreatedAt      time.Time
	EstimatedHours *float64
	DueDate        *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter parameters for listing Tasks. Zero values
// mean "no filter"; ordering and pagination are left to the caller because
// the view engine sorts in memory.
type ListTasksOptions struct {
	Status     task.Status
	CategoryID int64
}

// UpdateTaskOptions carries the complete post-update field set. Use cases
// resolve partial updates against the existing row before calling this.
type UpdateTaskOptions struct {
	ID             string
	CategoryID     int64
	Title          string
	Status         task.Status
	EstimatedHours *float64
	ActualHours    float64
	IsWorking      bool
	WorkStartTime  *time.Time
	Tracked        bool
	DueDate        *time.Time
}
