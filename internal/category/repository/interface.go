package repository

import (
	"context"

	"tasktrack/internal/category"
	"tasktrack/internal/model"
)

// Repository is the category domain's data store port, scoped per user.
type Repository interface {
	CreateCategory(ctx context.Context, sc model.Scope, opt CreateCategoryOptions) (category.Category, error)
	// GetOneCategory returns a zero-value Category (ID == 0) when no row
	// matches. Not-found is not an error at this layer.
	GetOneCategory(ctx context.Context, sc model.Scope, opt GetOneCategoryOptions) (category.Category, error)
	ListCategories(ctx context.Context, sc model.Scope) ([]category.Category, error)
	UpdateCategory(ctx context.Context, sc model.Scope, opt UpdateCategoryOptions) (category.Category, error)
	// DeleteCategory removes the category and cascades to its tasks,
	// returning the number of tasks removed.
	DeleteCategory(ctx context.Context, sc model.Scope, id int64) (int, error)
}
