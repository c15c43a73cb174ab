package service

import (
	"github.com/MKhiriev/go-web-server/internal/config"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/store"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		TaskService: NewTaskValidationService().Wrap(NewTaskService(storages.TaskRepository, logger)),
	}
}
