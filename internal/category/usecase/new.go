package usecase

import (
	"tasktrack/internal/category"
	"tasktrack/internal/category/repository"
	"tasktrack/pkg/log"
)

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new category UseCase implementation.
func New(l log.Logger, repo repository.Repository) category.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
