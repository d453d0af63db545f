package usecase

import (
	"context"

	"tasktrack/internal/model"
	"tasktrack/internal/task"
	repo "tasktrack/internal/task/repository"
)

// persistTask writes a task's full mutable field set back to the store.
func (uc *implUseCase) persistTask(ctx context.Context, sc model.Scope, t task.Task) (task.Task, error) {
	return uc.repo.UpdateTask(ctx, sc, repo.UpdateTaskOptions{
		ID:             t.ID,
		CategoryID:     t.CategoryID,
		Title:          t.Title,
		Status:         t.Status,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		IsWorking:      t.IsWorking,
		WorkStartTime:  t.WorkStartTime,
		Tracked:        t.Tracked,
		DueDate:        t.DueDate,
	})
}
