package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	repo "nl-todo/internal/todo/repository"
)

const createTodosTable = `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER NOT NULL PRIMARY KEY,
		title VARCHAR(512) NOT NULL,
		description TEXT,
		due_date VARCHAR(64),
		tags VARCHAR(512),
		priority INTEGER DEFAULT 0
	)`

const createTitleIndex = `CREATE INDEX IF NOT EXISTS ix_todos_title ON todos (title)`

const addPriorityColumn = `ALTER TABLE todos ADD COLUMN priority INTEGER DEFAULT 0`

// Migrate creates the schema and adds the priority column to tables created
// before it existed. Existing rows read the column default.
func (r *implRepository) Migrate(ctx context.Context) error {
	for _, stmt := range []string{createTodosTable, createTitleIndex} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
			return fmt.Errorf("%w: %v", repo.ErrFailedToMigrate, err)
		}
	}

	cols, err := r.columns(ctx, "todos")
	if err != nil {
		r.l.Errorf(ctx, "%s table_info: %v", r.dsn("Migrate"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToMigrate, err)
	}
	if _, ok := cols["priority"]; ok {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, addPriorityColumn); err != nil {
		r.l.Errorf(ctx, "%s add priority: %v", r.dsn("Migrate"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToMigrate, err)
	}
	r.l.Infof(ctx, "%s: added priority column to todos", r.dsn("Migrate"))
	return nil
}

func (r *implRepository) columns(ctx context.Context, table string) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]struct{})
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name.String] = struct{}{}
	}
	return cols, rows.Err()
}
