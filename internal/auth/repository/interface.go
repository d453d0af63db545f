package repository

import (
	"context"

	"tasktrack/internal/model"
)

// Repository is the auth domain's data store port. Unlike the other
// domains its methods take no Scope: lookups here happen before a
// request has an authenticated user.
type Repository interface {
	// CreateUser inserts a new account row and returns it with the
	// generated ID filled in.
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetOneUser looks a user up by whichever selector in opt is set.
	// A missing user is reported as a zero-value model.User, not an error.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}
