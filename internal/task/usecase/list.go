package usecase

import (
	"context"

	"tasktrack/internal/model"
	"tasktrack/internal/task"
	repo "tasktrack/internal/task/repository"
)

// List returns the user's tasks as the dashboard view: filtered by status
// and category, active before done, active ordered by ascending due date
// with missing due dates last.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	status := input.Status
	if status == "" {
		status = task.FilterAll
	}
	if !status.Valid() {
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, sc, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	view := task.View(tasks, status, input.Category)
	return task.ListOutput{Tasks: view, Total: len(view)}, nil
}
