package postgre

const todoColumns = `id, title, description, due_date, tags, priority`

const (
	insertTodoQuery = `
		INSERT INTO todos (title, description, due_date, tags, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + todoColumns

	listTodosQuery = `SELECT ` + todoColumns + ` FROM todos ORDER BY id`

	listTodosByPrefixQuery = `
		SELECT ` + todoColumns + ` FROM todos
		WHERE due_date IS NOT NULL AND due_date LIKE $1 ESCAPE '\'
		ORDER BY id`

	updateTodoQuery = `
		UPDATE todos
		SET title = $1, description = $2, due_date = $3, tags = $4, priority = $5
		WHERE id = $6
		RETURNING ` + todoColumns

	deleteTodoQuery = `DELETE FROM todos WHERE id = $1`

	// sqlx.In expands the ? and the result is rebound to $n.
	deleteTodosByIDQuery = `DELETE FROM todos WHERE id IN (?)`
)

// The cast fails for any stored value that is not a timestamp, which sends
// the caller to the string comparison query.
const (
	selectInRangeTemporalQuery = `
		SELECT id, title FROM todos
		WHERE due_date IS NOT NULL
		  AND due_date::timestamp >= $1::timestamp
		  AND due_date::timestamp <= $2::timestamp
		ORDER BY id`

	selectInRangeStringQuery = `
		SELECT id, title FROM todos
		WHERE due_date IS NOT NULL AND due_date >= $1 AND due_date <= $2
		ORDER BY id`
)

const (
	createTodosTable = `
		CREATE TABLE IF NOT EXISTS todos (
			id SERIAL PRIMARY KEY,
			title VARCHAR(512) NOT NULL,
			description TEXT,
			due_date VARCHAR(64),
			tags VARCHAR(512),
			priority INTEGER DEFAULT 0
		)`

	addPriorityColumn = `ALTER TABLE todos ADD COLUMN IF NOT EXISTS priority INTEGER DEFAULT 0`

	createTitleIndex = `CREATE INDEX IF NOT EXISTS ix_todos_title ON todos (title)`
)
