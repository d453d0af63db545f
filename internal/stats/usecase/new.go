package usecase

import (
	"time"

	catRepo "tasktrack/internal/category/repository"
	"tasktrack/internal/stats"
	taskRepo "tasktrack/internal/task/repository"
	"tasktrack/pkg/dateutil"
	"tasktrack/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	taskRepo taskRepo.Repository
	catRepo  catRepo.Repository
	cal      *dateutil.Calendar
	clock    func() time.Time
}

// New creates a new stats UseCase. clock is injectable for tests; nil
// selects time.Now.
func New(l log.Logger, tasks taskRepo.Repository, categories catRepo.Repository, cal *dateutil.Calendar, clock func() time.Time) stats.UseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:        l,
		taskRepo: tasks,
		catRepo:  categories,
		cal:      cal,
		clock:    clock,
	}
}
