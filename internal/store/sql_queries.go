package store

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

var taskColumns = []string{"id", "owner_id", "title", "done", "created_at", "updated_at"}

const taskReturning = "RETURNING id, owner_id, title, done, created_at, updated_at"
