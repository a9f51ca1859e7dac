package todo

import "errors"

var (
	ErrTodoNotFound       = errors.New("todo not found")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyText          = errors.New("missing 'text' in payload")
	ErrMissingDate        = errors.New("missing 'date' query parameter")
	ErrInvalidDeleteRange = errors.New("delete action requires a valid 'start'/'end' or a date/due_date to define the range")
)
