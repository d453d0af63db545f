package http

import (
	"tasktrack/internal/auth"
	"tasktrack/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Signup(c interface{})
	Login(c interface{})
	OAuthLogin(c interface{})
	Me(c interface{})
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
