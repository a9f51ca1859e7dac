package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"nl-todo/internal/todo/repository"
	"nl-todo/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger

	// Range selection, temporal first, string comparison as the fallback.
	temporalRangeQuery string
	stringRangeQuery   string
}

// New creates a new SQLite-backed Repository for the todo domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("todo/repository/sqlite: db is required")
	}
	return &implRepository{
		db:                 db,
		l:                  l,
		temporalRangeQuery: selectInRangeTemporalQuery,
		stringRangeQuery:   selectInRangeStringQuery,
	}
}

// Ping checks that the database answers.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/sqlite.%s", method)
}
