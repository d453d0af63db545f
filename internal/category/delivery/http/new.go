package http

import (
	"tasktrack/internal/category"
	"tasktrack/pkg/log"
)

// Handler is the public interface for the category HTTP delivery layer.
type Handler interface {
	List(c interface{})
	Create(c interface{})
	Update(c interface{})
	Delete(c interface{})
}

type handler struct {
	l  log.Logger
	uc category.UseCase
}

// New creates a new HTTP handler for the category domain.
func New(l log.Logger, uc category.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
