package usecase

import (
	"context"

	"tasktrack/internal/category"
	repo "tasktrack/internal/category/repository"
	"tasktrack/internal/model"
)

// List returns the user's categories.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (category.ListOutput, error) {
	categories, err := uc.repo.ListCategories(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCategories: %v", err)
		return category.ListOutput{}, err
	}
	return category.ListOutput{Categories: categories}, nil
}

// Create adds a new category after checking name uniqueness within the
// user's scope.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input category.CreateInput) (category.CreateOutput, error) {
	name, err := category.ValidateName(input.Name)
	if err != nil {
		return category.CreateOutput{}, err
	}

	existing, err := uc.repo.GetOneCategory(ctx, sc, repo.GetOneCategoryOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCategory: %v", err)
		return category.CreateOutput{}, err
	}
	if existing.ID != 0 {
		return category.CreateOutput{}, category.ErrDuplicateName
	}

	created, err := uc.repo.CreateCategory(ctx, sc, repo.CreateCategoryOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCategory: %v", err)
		return category.CreateOutput{}, err
	}
	return category.CreateOutput{Category: created}, nil
}

// Update renames a category. Tasks follow automatically since they join on
// the category ID.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input category.UpdateInput) (category.UpdateOutput, error) {
	name, err := category.ValidateName(input.Name)
	if err != nil {
		return category.UpdateOutput{}, err
	}

	existing, err := uc.repo.GetOneCategory(ctx, sc, repo.GetOneCategoryOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
		return category.UpdateOutput{}, err
	}
	if existing.ID == 0 {
		return category.UpdateOutput{}, category.ErrCategoryNotFound
	}

	duplicate, err := uc.repo.GetOneCategory(ctx, sc, repo.GetOneCategoryOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCategory duplicate: %v", err)
		return category.UpdateOutput{}, err
	}
	if duplicate.ID != 0 && duplicate.ID != input.ID {
		return category.UpdateOutput{}, category.ErrDuplicateName
	}

	updated, err := uc.repo.UpdateCategory(ctx, sc, repo.UpdateCategoryOptions{ID: input.ID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCategory: %v", err)
		return category.UpdateOutput{}, err
	}
	return category.UpdateOutput{Category: updated}, nil
}

// Delete removes a category and cascades to its member tasks. The dashboard
// confirms with the user before calling this.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) (category.DeleteOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, sc, repo.GetOneCategoryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneCategory: %v", err)
		return category.DeleteOutput{}, err
	}
	if existing.ID == 0 {
		return category.DeleteOutput{}, category.ErrCategoryNotFound
	}

	deleted, err := uc.repo.DeleteCategory(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCategory: %v", err)
		return category.DeleteOutput{}, err
	}
	return category.DeleteOutput{DeletedTasks: deleted}, nil
}
