package usecase

import (
	"context"
	"strings"

	"nl-todo/internal/todo"
	repo "nl-todo/internal/todo/repository"
	"nl-todo/pkg/datemath"
)

// Create stores a new Todo. The due date is normalized before it is persisted.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateTodoInput) (todo.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return todo.Todo{}, todo.ErrEmptyTitle
	}

	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     datemath.NormalizePtr(input.DueDate),
		Tags:        input.Tags,
		Priority:    priorityOrDefault(input.Priority),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.Todo{}, err
	}
	return t, nil
}
