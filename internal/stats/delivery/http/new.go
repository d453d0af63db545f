package http

import (
	"tasktrack/internal/stats"
	"tasktrack/pkg/log"
)

// Handler is the public interface for the stats HTTP delivery layer.
type Handler interface {
	Overview(c interface{})
	Categories(c interface{})
	Summary(c interface{})
	Daily(c interface{})
}

type handler struct {
	l  log.Logger
	uc stats.UseCase
}

// New creates a new HTTP handler for the stats domain.
func New(l log.Logger, uc stats.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
