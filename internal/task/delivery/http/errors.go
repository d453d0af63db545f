package http

import (
	"tasktrack/internal/task"
	pkgErrors "tasktrack/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "title must not be empty")
	case task.ErrInvalidEstimate:
		return pkgErrors.NewHTTPError(400, "estimated hours must be a positive number")
	case task.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "status must be active or done")
	case task.ErrCategoryRequired:
		return pkgErrors.NewHTTPError(400, "category is required")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(404, "category not found")
	case task.ErrAlreadyWorking:
		return pkgErrors.NewHTTPError(409, "a work session is already running for this task")
	case task.ErrNotWorking:
		return pkgErrors.NewHTTPError(409, "no work session is running for this task")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
