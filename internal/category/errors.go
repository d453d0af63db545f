package category

import "errors"

// Domain-specific errors for the category package.
var (
	ErrEmptyName        = errors.New("category name is empty")
	ErrDuplicateName    = errors.New("category name already exists")
	ErrCategoryNotFound = errors.New("category not found")
)
