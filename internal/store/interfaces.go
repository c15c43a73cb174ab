package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-web-server/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// TaskRepository persists tasks. It does not check ownership; callers
// compare models.Task.OwnerID with the caller identity.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, taskID int64) (models.Task, error)
	ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, taskID int64, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
