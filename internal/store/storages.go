package store

import "github.com/MKhiriev/go-web-server/internal/logger"

// Storages bundles the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
