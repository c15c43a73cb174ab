package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web-server/internal/validators"
	"github.com/MKhiriev/go-web-server/models"
)

// TaskValidationService validates input before handing it to the wrapped
// TaskService.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{
		validator: validators.NewTaskValidator(),
	}
}

func (v *TaskValidationService) CreateTask(ctx context.Context, ownerID int64, title string) (models.Task, error) {
	task := models.Task{OwnerID: ownerID, Title: title}
	if err := v.validator.Validate(ctx, task, validators.FieldOwnerID, validators.FieldTitle); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before saving: %w", err)
	}

	return v.inner.CreateTask(ctx, ownerID, title)
}

func (v *TaskValidationService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	if err := v.validator.Validate(ctx, models.Task{OwnerID: ownerID}, validators.FieldOwnerID); err != nil {
		return nil, fmt.Errorf("error during task list validation: %w", err)
	}

	return v.inner.ListTasks(ctx, ownerID)
}

func (v *TaskValidationService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	if err := v.validateRef(ctx, ownerID, taskID); err != nil {
		return models.Task{}, err
	}

	return v.inner.GetTask(ctx, ownerID, taskID)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, ownerID, taskID int64, patch models.TaskPatch) (models.Task, error) {
	if err := v.validateRef(ctx, ownerID, taskID); err != nil {
		return models.Task{}, err
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Task{}, fmt.Errorf("error during task patch validation: %w", err)
	}

	return v.inner.UpdateTask(ctx, ownerID, taskID, patch)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if err := v.validateRef(ctx, ownerID, taskID); err != nil {
		return err
	}

	return v.inner.DeleteTask(ctx, ownerID, taskID)
}

func (v *TaskValidationService) Wrap(inner TaskService) TaskService {
	v.inner = inner
	return v
}

func (v *TaskValidationService) validateRef(ctx context.Context, ownerID, taskID int64) error {
	ref := models.Task{ID: taskID, OwnerID: ownerID}
	if err := v.validator.Validate(ctx, ref, validators.FieldID, validators.FieldOwnerID); err != nil {
		return fmt.Errorf("error during task reference validation: %w", err)
	}
	return nil
}
