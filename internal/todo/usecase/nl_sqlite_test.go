package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl-todo/internal/todo"
	"nl-todo/internal/todo/repository/sqlite"
	"nl-todo/internal/todo/usecase"
	"nl-todo/pkg/database"
	"nl-todo/pkg/log"
)

func TestProcessNL_DeleteDayAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	db, _, err := database.Open(ctx, database.Config{URL: filepath.Join(t.TempDir(), "todos.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.New(db, log.NewNop())
	require.NoError(t, repo.Migrate(ctx))

	crud := usecase.New(repo, nil, log.NewNop())
	for _, in := range []todo.CreateTodoInput{
		{Title: "standup", DueDate: strPtr("2024-03-01T09:00:00")},
		{Title: "pay rent", DueDate: strPtr("2024-03-01")},
		{Title: "dentist", DueDate: strPtr("2024-03-02T10:00:00")},
	} {
		_, err := crud.Create(ctx, in)
		require.NoError(t, err)
	}

	ext := &mockExtractor{result: okResult(t, `{"action":"delete","start":"2024-03-01","end":"2024-03-01"}`)}
	uc := usecase.New(repo, ext, log.NewNop())

	out, err := uc.ProcessNL(ctx, todo.NLInput{Text: "clear March 1st"})
	require.NoError(t, err)
	require.NotNil(t, out.Removed)
	assert.Equal(t, 2, out.Removed.Count)
	assert.Equal(t, []todo.DeletedTodo{{ID: 1, Title: "standup"}, {ID: 2, Title: "pay rent"}}, out.Removed.Deleted)

	left, err := crud.List(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "dentist", left[0].Title)
}
