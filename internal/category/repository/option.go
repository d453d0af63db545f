package repository

// CreateCategoryOptions holds parameters for inserting a new Category.
type CreateCategoryOptions struct {
	Name string
}

// GetOneCategoryOptions holds filter parameters for fetching a single
// Category. All non-zero fields are applied as AND conditions.
type GetOneCategoryOptions struct {
	ID   int64
	Name string
}

// UpdateCategoryOptions holds parameters for renaming a Category.
type UpdateCategoryOptions struct {
	ID   int64
	Name string
}
