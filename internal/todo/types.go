package todo

// --- Todo Domain Model ---

// Todo is the single persisted entity.
// DueDate is nil or one of the two canonical date shapes produced by pkg/datemath.
type Todo struct {
	ID          int64
	Title       string
	Description *string
	DueDate     *string
	Tags        []string
	Priority    int
}

// DeletedTodo is the id/title pair reported by a range delete.
type DeletedTodo struct {
	ID    int64
	Title string
}

// --- UseCase Inputs ---

type CreateTodoInput struct {
	Title       string
	Description *string
	DueDate     *string
	Tags        []string
	Priority    *int
}

type UpdateTodoInput struct {
	ID          int64
	Title       string
	Description *string
	DueDate     *string
	Tags        []string
	Priority    *int
}

type ListByDateInput struct {
	DatePrefix string
}

// NLInput is the natural-language request. Now is the optional caller-supplied
// reference time, kept as the raw string the client sent.
type NLInput struct {
	Text string
	Now  string
}

// --- UseCase Outputs ---

type DeleteRangeOutput struct {
	Deleted []DeletedTodo
	Count   int
}

// NLOutput carries exactly one of Created or Removed.
type NLOutput struct {
	Created *Todo
	Removed *DeleteRangeOutput
}
