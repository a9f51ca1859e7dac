package usecase_test

import (
	"context"
	"time"

	"nl-todo/internal/intent"
	"nl-todo/internal/todo"
	"nl-todo/internal/todo/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo records the options it receives.
type mockRepo struct {
	err      error
	notFound bool

	created   []repository.CreateTodoOptions
	updated   []repository.UpdateTodoOptions
	listed    []repository.ListTodosOptions
	ranges    []repository.DeleteRangeOptions
	deleted   []todo.DeletedTodo
	deletedID int64
}

func (m *mockRepo) CreateTodo(ctx context.Context, opt repository.CreateTodoOptions) (todo.Todo, error) {
	if m.err != nil {
		return todo.Todo{}, m.err
	}
	m.created = append(m.created, opt)
	return todo.Todo{
		ID:          int64(len(m.created)),
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Tags:        repository.CleanTags(opt.Tags),
		Priority:    opt.Priority,
	}, nil
}

func (m *mockRepo) ListTodos(ctx context.Context, opt repository.ListTodosOptions) ([]todo.Todo, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listed = append(m.listed, opt)
	return []todo.Todo{{ID: 1, Title: "a", Tags: []string{}}}, nil
}

func (m *mockRepo) UpdateTodo(ctx context.Context, opt repository.UpdateTodoOptions) (todo.Todo, error) {
	if m.notFound {
		return todo.Todo{}, repository.ErrNotFound
	}
	if m.err != nil {
		return todo.Todo{}, m.err
	}
	m.updated = append(m.updated, opt)
	return todo.Todo{ID: opt.ID, Title: opt.Title, DueDate: opt.DueDate, Tags: repository.CleanTags(opt.Tags), Priority: opt.Priority}, nil
}

func (m *mockRepo) DeleteTodo(ctx context.Context, id int64) error {
	if m.notFound {
		return repository.ErrNotFound
	}
	m.deletedID = id
	return m.err
}

func (m *mockRepo) DeleteTodosInRange(ctx context.Context, opt repository.DeleteRangeOptions) ([]todo.DeletedTodo, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.ranges = append(m.ranges, opt)
	if m.deleted == nil {
		return []todo.DeletedTodo{}, nil
	}
	return m.deleted, nil
}

// mockExtractor returns a fixed result and records what it was asked.
type mockExtractor struct {
	result intent.Result

	calls    int
	lastText string
	lastRef  *time.Time
}

func (m *mockExtractor) Extract(ctx context.Context, text string, ref *time.Time) intent.Result {
	m.calls++
	m.lastText = text
	m.lastRef = ref
	return m.result
}
