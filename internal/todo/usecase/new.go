package usecase

import (
	"nl-todo/internal/intent"
	"nl-todo/internal/todo"
	"nl-todo/internal/todo/repository"
	"nl-todo/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo      repository.TodoRepository
	extractor intent.Extractor
	l         log.Logger
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates a new todo UseCase implementation.
func New(repo repository.TodoRepository, extractor intent.Extractor, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		extractor: extractor,
		l:         l,
	}
}
