package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "nl-todo/internal/todo/repository"
	"nl-todo/pkg/database"
	"nl-todo/pkg/log"
)

func TestMigrate_AddsPriorityToLegacyTable(t *testing.T) {
	ctx := context.Background()
	db, _, err := database.Open(ctx, database.Config{URL: filepath.Join(t.TempDir(), "legacy.db")})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE todos (
		id INTEGER NOT NULL PRIMARY KEY,
		title VARCHAR(512) NOT NULL,
		description TEXT,
		due_date VARCHAR(64),
		tags VARCHAR(512)
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO todos (title, due_date, tags) VALUES ('legacy', '2024-01-01', 'a,b')`)
	require.NoError(t, err)

	r := New(db, log.NewNop()).(*implRepository)
	require.NoError(t, r.Migrate(ctx))

	cols, err := r.columns(ctx, "todos")
	require.NoError(t, err)
	assert.Contains(t, cols, "priority")

	todos, err := r.ListTodos(ctx, repo.ListTodosOptions{})
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "legacy", todos[0].Title)
	assert.Equal(t, 0, todos[0].Priority)
	assert.Equal(t, []string{"a", "b"}, todos[0].Tags)

	// Running again is a no-op.
	require.NoError(t, r.Migrate(ctx))
}
