package usecase

import (
	"context"
	"strings"

	catRepo "tasktrack/internal/category/repository"
	"tasktrack/internal/model"
	"tasktrack/internal/task"
	repo "tasktrack/internal/task/repository"
)

// Create validates the input, resolves the category reference and persists a
// new task. No partial mutation happens on validation failure.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title, err := task.ValidateTitle(input.Title)
	if err != nil {
		return task.CreateOutput{}, err
	}
	if err := task.ValidateEstimate(input.EstimatedHours); err != nil {
		return task.CreateOutput{}, err
	}

	categoryName := strings.TrimSpace(input.CategoryName)
	if categoryName == "" {
		return task.CreateOutput{}, task.ErrCategoryRequired
	}

	cat, err := uc.catRepo.GetOneCategory(ctx, sc, catRepo.GetOneCategoryOptions{Name: categoryName})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCategory: %v", err)
		return task.CreateOutput{}, err
	}
	if cat.ID == 0 {
		return task.CreateOutput{}, task.ErrCategoryNotFound
	}

	created, err := uc.repo.CreateTask(ctx, sc, repo.CreateTaskOptions{
		ID:             uc.newID(),
		CategoryID:     cat.ID,
		Title:          title,
		Status:         task.StatusActive,
		CreatedAt:      uc.clock(),
		EstimatedHours: input.EstimatedHours,
		DueDate:        input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: created}, nil
}
