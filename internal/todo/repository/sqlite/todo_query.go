package sqlite

const todoColumns = `id, title, description, due_date, tags, priority`

const (
	insertTodoQuery = `
		INSERT INTO todos (title, description, due_date, tags, priority)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + todoColumns

	listTodosQuery = `SELECT ` + todoColumns + ` FROM todos ORDER BY id`

	listTodosByPrefixQuery = `
		SELECT ` + todoColumns + ` FROM todos
		WHERE due_date IS NOT NULL AND due_date LIKE ? ESCAPE '\'
		ORDER BY id`

	updateTodoQuery = `
		UPDATE todos
		SET title = ?, description = ?, due_date = ?, tags = ?, priority = ?
		WHERE id = ?
		RETURNING ` + todoColumns

	deleteTodoQuery = `DELETE FROM todos WHERE id = ?`

	deleteTodosByIDQuery = `DELETE FROM todos WHERE id IN (?)`
)

// Range selection. datetime() understands both canonical shapes, so a
// date-only bound compares as midnight of that day.
const (
	selectInRangeTemporalQuery = `
		SELECT id, title FROM todos
		WHERE due_date IS NOT NULL
		  AND datetime(due_date) >= datetime(?)
		  AND datetime(due_date) <= datetime(?)
		ORDER BY id`

	// Only exact when both bounds share the stored values' granularity.
	selectInRangeStringQuery = `
		SELECT id, title FROM todos
		WHERE due_date IS NOT NULL AND due_date >= ? AND due_date <= ?
		ORDER BY id`
)
