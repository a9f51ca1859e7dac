package repository

import (
	"context"

	"nl-todo/internal/todo"
)

// Repository is the composed interface for the todo data store.
type Repository interface {
	TodoRepository

	// Migrate creates the todos table and evolves older schemas in place.
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
}

// TodoRepository defines all data access methods for the Todo entity.
type TodoRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (todo.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]todo.Todo, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (todo.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
	DeleteTodosInRange(ctx context.Context, opt DeleteRangeOptions) ([]todo.DeletedTodo, error)
}
