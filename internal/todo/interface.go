package todo

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Todo CRUD
	Create(ctx context.Context, input CreateTodoInput) (Todo, error)
	List(ctx context.Context) ([]Todo, error)
	ListByDate(ctx context.Context, input ListByDateInput) ([]Todo, error)
	Update(ctx context.Context, input UpdateTodoInput) (Todo, error)
	Delete(ctx context.Context, id int64) error

	// ProcessNL turns free text into either a created todo or a range delete.
	ProcessNL(ctx context.Context, input NLInput) (NLOutput, error)
}
