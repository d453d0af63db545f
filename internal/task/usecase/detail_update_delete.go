package usecase

import (
	"context"
	"strings"

	catRepo "tasktrack/internal/category/repository"
	"tasktrack/internal/model"
	"tasktrack/internal/task"
	repo "tasktrack/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, sc, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if existing.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: existing}, nil
}

// Update applies a partial edit. Empty/nil input fields keep the stored
// value. An explicit ResetActualHours wins over timer accumulation for the
// stored value: an open session is left untouched and folds in its elapsed
// time on the next stop.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, sc, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	next := existing

	if input.Title != "" {
		title, vErr := task.ValidateTitle(input.Title)
		if vErr != nil {
			return task.UpdateOutput{}, vErr
		}
		next.Title = title
	}

	if name := strings.TrimSpace(input.CategoryName); name != "" {
		cat, cErr := uc.catRepo.GetOneCategory(ctx, sc, catRepo.GetOneCategoryOptions{Name: name})
		if cErr != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", cErr)
			return task.UpdateOutput{}, cErr
		}
		if cat.ID == 0 {
			return task.UpdateOutput{}, task.ErrCategoryNotFound
		}
		next.CategoryID = cat.ID
		next.CategoryName = cat.Name
	}

	if input.Status != "" {
		if !input.Status.Valid() {
			return task.UpdateOutput{}, task.ErrInvalidStatus
		}
		next.Status = input.Status
	}

	if input.EstimatedHours != nil {
		if vErr := task.ValidateEstimate(input.EstimatedHours); vErr != nil {
			return task.UpdateOutput{}, vErr
		}
		next.EstimatedHours = input.EstimatedHours
	}

	if input.ResetActualHours {
		next.ActualHours = 0
	}

	if input.ClearDueDate {
		next.DueDate = nil
	} else if input.DueDate != nil {
		next.DueDate = input.DueDate
	}

	updated, err := uc.persistTask(ctx, sc, next)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, sc, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, sc, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
