package http

import (
	"tasktrack/internal/task"
	"tasktrack/pkg/dateutil"
	"tasktrack/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	List(c interface{})
	Detail(c interface{})
	Update(c interface{})
	Delete(c interface{})
	Start(c interface{})
	Stop(c interface{})
	Elapsed(c interface{})
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	cal *dateutil.Calendar
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, cal *dateutil.Calendar) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cal: cal,
	}
}
