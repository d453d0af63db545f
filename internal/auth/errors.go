package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownProvider    = errors.New("unknown oauth provider")
	ErrProviderDisabled   = errors.New("oauth provider not configured")
	ErrOAuthExchange      = errors.New("oauth code exchange failed")
)
