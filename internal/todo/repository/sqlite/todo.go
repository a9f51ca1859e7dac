package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"nl-todo/internal/todo"
	repo "nl-todo/internal/todo/repository"
)

// CreateTodo inserts a new row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	var row repo.TodoRow
	err := r.db.GetContext(ctx, &row, insertTodoQuery,
		opt.Title, repo.NullString(opt.Description), repo.NullString(opt.DueDate), repo.JoinTags(opt.Tags), opt.Priority,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToInsert
	}
	return row.ToTodo(), nil
}

// ListTodos returns todos in insertion order, optionally filtered by due date prefix.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]todo.Todo, error) {
	query, args := listTodosQuery, []any{}
	if opt.DatePrefix != "" {
		query, args = listTodosByPrefixQuery, []any{repo.EscapeLike(opt.DatePrefix) + "%"}
	}

	var rows []repo.TodoRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}

	todos := make([]todo.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, row.ToTodo())
	}
	return todos, nil
}

// UpdateTodo replaces all mutable fields. Returns repo.ErrNotFound for an unknown id.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, error) {
	var row repo.TodoRow
	err := r.db.GetContext(ctx, &row, updateTodoQuery,
		opt.Title, repo.NullString(opt.Description), repo.NullString(opt.DueDate), repo.JoinTags(opt.Tags), opt.Priority,
		opt.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToUpdate
	}
	return row.ToTodo(), nil
}

// DeleteTodo removes a row by id. Returns repo.ErrNotFound when nothing was deleted.
func (r *implRepository) DeleteTodo(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteTodoQuery, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// DeleteTodosInRange removes every todo whose due date lies in [Start, End].
// The temporal query runs first; if it errors the whole attempt is rolled back
// and retried with plain string comparison.
func (r *implRepository) DeleteTodosInRange(ctx context.Context, opt repo.DeleteRangeOptions) ([]todo.DeletedTodo, error) {
	deleted, err := r.deleteInRange(ctx, r.temporalRangeQuery, opt)
	if err == nil {
		return deleted, nil
	}
	r.l.Warnf(ctx, "%s: temporal range query failed, falling back to string comparison: %v", r.dsn("DeleteTodosInRange"), err)

	deleted, err = r.deleteInRange(ctx, r.stringRangeQuery, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s fallback: %v", r.dsn("DeleteTodosInRange"), err)
		return nil, repo.ErrFailedToDelete
	}
	return deleted, nil
}

func (r *implRepository) deleteInRange(ctx context.Context, selectQuery string, opt repo.DeleteRangeOptions) (deleted []todo.DeletedTodo, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var rows []repo.DeletedRow
	if err = tx.SelectContext(ctx, &rows, selectQuery, opt.Start, opt.End); err != nil {
		return nil, err
	}

	deleted = make([]todo.DeletedTodo, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		deleted = append(deleted, todo.DeletedTodo{ID: row.ID, Title: row.Title})
		ids = append(ids, row.ID)
	}

	if len(ids) > 0 {
		var query string
		var args []any
		query, args, err = sqlx.In(deleteTodosByIDQuery, ids)
		if err != nil {
			return nil, err
		}
		if _, err = tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return deleted, nil
}
