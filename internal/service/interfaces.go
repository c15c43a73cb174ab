package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=TaskServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-web-server/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService manages tasks on behalf of an authenticated owner. Every
// method is scoped to ownerID; touching another user's task yields
// ErrForbidden.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID int64, title string) (models.Task, error)
	ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID int64, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) error
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validation.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}
