package usecase

import (
	"context"
	"errors"
	"strings"

	"nl-todo/internal/todo"
	repo "nl-todo/internal/todo/repository"
	"nl-todo/pkg/datemath"
)

// Update replaces every mutable field. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateTodoInput) (todo.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return todo.Todo{}, todo.ErrEmptyTitle
	}

	t, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     datemath.NormalizePtr(input.DueDate),
		Tags:        input.Tags,
		Priority:    priorityOrDefault(input.Priority),
	})
	if errors.Is(err, repo.ErrNotFound) {
		return todo.Todo{}, todo.ErrTodoNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return todo.Todo{}, err
	}
	return t, nil
}

// Delete removes a Todo by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.DeleteTodo(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return todo.ErrTodoNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	return nil
}
