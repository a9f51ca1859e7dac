package usecase

import (
	"context"

	"nl-todo/internal/todo"
	repo "nl-todo/internal/todo/repository"
)

// List returns every todo in insertion order.
func (uc *implUseCase) List(ctx context.Context) ([]todo.Todo, error) {
	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return nil, err
	}
	return todos, nil
}

// ListByDate returns todos whose due date starts with the given prefix.
// The match is a literal string prefix, so "2024-03" matches the whole month.
func (uc *implUseCase) ListByDate(ctx context.Context, input todo.ListByDateInput) ([]todo.Todo, error) {
	if input.DatePrefix == "" {
		return nil, todo.ErrMissingDate
	}

	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{DatePrefix: input.DatePrefix})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByDate ListTodos: %v", err)
		return nil, err
	}
	return todos, nil
}
