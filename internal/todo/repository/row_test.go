package repository_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"nl-todo/internal/todo/repository"
)

func TestTagsRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "two tags", in: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "empty", in: []string{}, want: []string{}},
		{name: "nil", in: nil, want: []string{}},
		{name: "trimmed and blanks dropped", in: []string{" work ", "", "  ", "home"}, want: []string{"work", "home"}},
		{name: "separator splits", in: []string{"a,b", " c "}, want: []string{"a", "b", "c"}},
		{name: "only separators", in: []string{",", " , "}, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stored := repository.JoinTags(tc.in)
			got := repository.SplitTags(stored.String)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJoinTags_EmptyIsNull(t *testing.T) {
	assert.False(t, repository.JoinTags(nil).Valid)
	assert.False(t, repository.JoinTags([]string{" "}).Valid)
	assert.Equal(t, sql.NullString{String: "x,y", Valid: true}, repository.JoinTags([]string{"x", "y"}))
}

func TestTodoRow_ToTodo(t *testing.T) {
	row := repository.TodoRow{
		ID:      7,
		Title:   "Buy milk",
		DueDate: sql.NullString{String: "2024-03-05", Valid: true},
	}
	got := row.ToTodo()

	assert.Equal(t, int64(7), got.ID)
	assert.Nil(t, got.Description)
	if assert.NotNil(t, got.DueDate) {
		assert.Equal(t, "2024-03-05", *got.DueDate)
	}
	assert.Equal(t, []string{}, got.Tags)
	assert.Equal(t, 0, got.Priority)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "2024-03", repository.EscapeLike("2024-03"))
	assert.Equal(t, `50\%\_x\\`, repository.EscapeLike(`50%_x\`))
}
