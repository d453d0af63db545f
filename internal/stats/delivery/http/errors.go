package http

import (
	"tasktrack/internal/stats"
	pkgErrors "tasktrack/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case stats.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(404, "category not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
