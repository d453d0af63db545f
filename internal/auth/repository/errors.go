package repository

import "errors"

var (
	ErrFailedToInsertUser = errors.New("failed to insert user")
	ErrFailedToGetUser    = errors.New("failed to get user")
)
