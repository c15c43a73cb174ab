package models

import "time"

// Task is a unit of work owned by exactly one user.
type Task struct {
	// ID is the server-assigned identifier of the task.
	ID int64 `json:"id"`

	// OwnerID is the user that created the task. Only the owner may read,
	// update or delete it.
	OwnerID int64 `json:"owner_id"`

	// Title is the human-readable task description. Must not be empty.
	Title string `json:"title"`

	// Done reports whether the task has been completed.
	Done bool `json:"done"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskPatch is a partial update of a task. Nil fields are left untouched.
type TaskPatch struct {
	Title *string `json:"title,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Done == nil
}
