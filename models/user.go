package models

import "time"

// User represents an account that can sign in and own tasks.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier used at sign in.
	Login string `json:"username"`

	// Password is the plain-text password received from the login form.
	// It is never persisted and never serialized back to clients.
	Password string `json:"pwd,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
