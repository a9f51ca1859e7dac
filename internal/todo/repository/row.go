package repository

import (
	"database/sql"
	"strings"

	"nl-todo/internal/todo"
)

// TagSeparator joins tags in the tags column.
const TagSeparator = ","

// TodoRow is the todos table row as scanned by sqlx.
type TodoRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	DueDate     sql.NullString `db:"due_date"`
	Tags        sql.NullString `db:"tags"`
	Priority    sql.NullInt64  `db:"priority"`
}

// ToTodo converts a row into the domain entity.
func (r TodoRow) ToTodo() todo.Todo {
	t := todo.Todo{
		ID:       r.ID,
		Title:    r.Title,
		Tags:     SplitTags(r.Tags.String),
		Priority: int(r.Priority.Int64),
	}
	if r.Description.Valid {
		d := r.Description.String
		t.Description = &d
	}
	if r.DueDate.Valid {
		d := r.DueDate.String
		t.DueDate = &d
	}
	return t
}

// DeletedRow is the (id, title) projection read before a range delete.
type DeletedRow struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}

// JoinTags stores tags as one delimited string. An empty list is stored as NULL.
func JoinTags(tags []string) sql.NullString {
	clean := CleanTags(tags)
	if len(clean) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(clean, TagSeparator), Valid: true}
}

// SplitTags is the inverse of JoinTags. It never returns nil.
func SplitTags(s string) []string {
	return CleanTags(strings.Split(s, TagSeparator))
}

// CleanTags trims every tag and drops the empty ones. It never returns nil.
// A tag containing the separator is split, matching how the stored row reads back.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		for _, t := range strings.Split(tag, TagSeparator) {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// NullString maps an optional string to a nullable column value.
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// EscapeLike escapes LIKE wildcards so the pattern matches s literally. Use with ESCAPE '\'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
