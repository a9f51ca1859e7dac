package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl-todo/internal/intent"
	"nl-todo/internal/middleware"
	todohttp "nl-todo/internal/todo/delivery/http"
	"nl-todo/internal/todo/repository/sqlite"
	"nl-todo/internal/todo/usecase"
	"nl-todo/pkg/database"
	"nl-todo/pkg/log"
)

// newServer wires the real stack on a temp SQLite file with extraction disabled.
func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	db, _, err := database.Open(ctx, database.Config{URL: filepath.Join(t.TempDir(), "todos.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := log.NewNop()
	repo := sqlite.New(db, l)
	require.NoError(t, repo.Migrate(ctx))

	uc := usecase.New(repo, intent.New(intent.Config{}, nil, l), l)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	todohttp.RegisterRoutes(r.Group(""), todohttp.New(l, uc), middleware.New(l, middleware.Config{}))
	return r
}

func call(t *testing.T, r *gin.Engine, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

type todoBody struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"`
	Tags        []string `json:"tags"`
	Priority    int      `json:"priority"`
}

func TestCreateBuyMilk(t *testing.T) {
	r := newServer(t)

	var got todoBody
	code := call(t, r, http.MethodPost, "/todos", map[string]any{"title": "Buy milk", "due_date": "2024-03-05"}, &got)
	require.Equal(t, http.StatusOK, code)

	assert.NotZero(t, got.ID)
	assert.Equal(t, "Buy milk", got.Title)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2024-03-05", *got.DueDate)
	assert.Equal(t, 0, got.Priority)
	assert.Equal(t, []string{}, got.Tags)
}

func TestCreateSplitsTagsAndReadsStringPriority(t *testing.T) {
	r := newServer(t)

	var got todoBody
	code := call(t, r, http.MethodPost, "/todos", map[string]any{"title": "x", "tags": []string{"a,b", " c "}, "priority": "5"}, &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
	assert.Equal(t, 5, got.Priority)

	var listed []todoBody
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/todos", nil, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, []string{"a", "b", "c"}, listed[0].Tags)
	assert.Equal(t, 5, listed[0].Priority)
}

func TestUpdateMissing(t *testing.T) {
	r := newServer(t)

	code := call(t, r, http.MethodPut, "/todos/5", map[string]any{"title": "x"}, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUpdateAndDelete(t *testing.T) {
	r := newServer(t)

	var created todoBody
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/todos", map[string]any{"title": "a", "tags": []string{"x"}}, &created))

	var updated todoBody
	path := "/todos/" + jsonNumber(created.ID)
	code := call(t, r, http.MethodPut, path, map[string]any{"title": "b", "due_date": "2024/03/05 18:00", "priority": 4}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "b", updated.Title)
	assert.Equal(t, "2024-03-05T18:00:00", *updated.DueDate)
	assert.Equal(t, []string{}, updated.Tags)
	assert.Equal(t, 4, updated.Priority)

	assert.Equal(t, http.StatusNoContent, call(t, r, http.MethodDelete, path, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodDelete, path, nil, nil))
}

func TestListByDatePrefix(t *testing.T) {
	r := newServer(t)

	for _, due := range []string{"2024-03-05T10:00:00", "2024-03-20", "2024-04-01"} {
		require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/todos", map[string]any{"title": due, "due_date": due}, nil))
	}

	var got []todoBody
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/todos/date?date=2024-03", nil, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-05T10:00:00", *got[0].DueDate)
	assert.Equal(t, "2024-03-20", *got[1].DueDate)

	var all []todoBody
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/todos", nil, &all))
	assert.Len(t, all, 3)

	assert.Equal(t, http.StatusBadRequest, call(t, r, http.MethodGet, "/todos/date", nil, nil))
}

func TestNLWithoutCredential(t *testing.T) {
	r := newServer(t)

	var got todoBody
	code := call(t, r, http.MethodPost, "/todos/nl", map[string]any{"text": "dentist next Friday 9am #health", "now": "2024-03-09T08:00:00Z"}, &got)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "dentist next Friday 9am #health", got.Title)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.DueDate)
	assert.Equal(t, []string{}, got.Tags)
	assert.Equal(t, 0, got.Priority)

	assert.Equal(t, http.StatusBadRequest, call(t, r, http.MethodPost, "/todos/nl", map[string]any{"text": ""}, nil))
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
