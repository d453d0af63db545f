package http

import (
	"tasktrack/internal/auth"
	pkgErrors "tasktrack/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrEmailTaken:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case auth.ErrUnknownProvider:
		return pkgErrors.NewHTTPError(400, "unknown oauth provider")
	case auth.ErrProviderDisabled:
		return pkgErrors.NewHTTPError(400, "oauth provider not configured")
	case auth.ErrOAuthExchange:
		return pkgErrors.NewHTTPError(401, "oauth code exchange failed")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
