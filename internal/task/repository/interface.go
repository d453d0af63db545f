package repository

import (
	"context"

	"tasktrack/internal/model"
	"tasktrack/internal/task"
)

// Repository is the task domain's data store port. All methods are scoped to
// one user; an ID from another user's data behaves as not-found.
type Repository interface {
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (task.Task, error)
	// GetOneTask returns a zero-value Task (ID == "") when no row matches.
	// Not-found is not an error at this layer.
	GetOneTask(ctx context.Context, sc model.Scope, opt GetOneTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context, sc model.Scope, opt ListTasksOptions) ([]task.Task, error)
	UpdateTask(ctx context.Context, sc model.Scope, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, sc model.Scope, id string) error
}
