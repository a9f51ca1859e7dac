package repository

// CreateTodoOptions holds parameters for inserting a new Todo.
// DueDate must already be normalized.
type CreateTodoOptions struct {
	Title       string
	Description *string
	DueDate     *string
	Tags        []string
	Priority    int
}

// ListTodosOptions holds filter parameters for listing Todos.
// A non-empty DatePrefix keeps only todos whose due_date starts with it, literally.
type ListTodosOptions struct {
	DatePrefix string
}

// UpdateTodoOptions replaces every mutable field of an existing Todo.
type UpdateTodoOptions struct {
	ID          int64
	Title       string
	Description *string
	DueDate     *string
	Tags        []string
	Priority    int
}

// DeleteRangeOptions holds the inclusive bounds of a range delete.
type DeleteRangeOptions struct {
	Start string
	End   string
}
