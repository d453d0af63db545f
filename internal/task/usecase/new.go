package usecase

import (
	"time"

	"github.com/google/uuid"

	catRepo "tasktrack/internal/category/repository"
	"tasktrack/internal/task"
	"tasktrack/internal/task/repository"
	"tasktrack/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo    repository.Repository
	catRepo catRepo.Repository
	l       log.Logger
	clock   func() time.Time
	newID   func() string
}

// New creates a new task UseCase implementation. clock and newID are
// injectable for tests; nil selects time.Now and random UUIDs.
func New(l log.Logger, repo repository.Repository, categories catRepo.Repository, clock func() time.Time, newID func() string) task.UseCase {
	if clock == nil {
		clock = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &implUseCase{
		repo:    repo,
		catRepo: categories,
		l:       l,
		clock:   clock,
		newID:   newID,
	}
}
