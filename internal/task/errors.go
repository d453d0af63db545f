package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle       = errors.New("task title is empty")
	ErrInvalidEstimate  = errors.New("estimated hours must be positive")
	ErrInvalidStatus    = errors.New("unknown task status")
	ErrCategoryRequired = errors.New("category is required")
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAlreadyWorking   = errors.New("work session already open")
	ErrNotWorking       = errors.New("no open work session")
)
