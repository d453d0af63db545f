package http

import (
	"tasktrack/internal/category"
	pkgErrors "tasktrack/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case category.ErrEmptyName:
		return pkgErrors.NewHTTPError(400, "category name must not be empty")
	case category.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "category name already exists")
	case category.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(404, "category not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
