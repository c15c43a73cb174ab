// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/store"
	"github.com/MKhiriev/go-web-server/models"
)

// taskService is the owner-scoped implementation of TaskService.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, ownerID int64, title string) (models.Task, error) {
	task, err := s.taskRepository.CreateTask(ctx, models.Task{OwnerID: ownerID, Title: title})
	if err != nil {
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("task_id", task.ID).
		Int64("owner_id", ownerID).
		Msg("task created")

	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}
	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	return s.ownedTask(ctx, ownerID, taskID)
}

func (s *taskService) UpdateTask(ctx context.Context, ownerID, taskID int64, patch models.TaskPatch) (models.Task, error) {
	if _, err := s.ownedTask(ctx, ownerID, taskID); err != nil {
		return models.Task{}, err
	}

	task, err := s.taskRepository.UpdateTask(ctx, taskID, patch)
	if err != nil {
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if _, err := s.ownedTask(ctx, ownerID, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("task deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("task_id", taskID).
		Int64("owner_id", ownerID).
		Msg("task deleted")
	return nil
}

// ownedTask loads the task and checks that ownerID owns it.
func (s *taskService) ownedTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	if task.OwnerID != ownerID {
		logger.FromContext(ctx).Warn().
			Int64("task_id", taskID).
			Int64("owner_id", task.OwnerID).
			Int64("caller_id", ownerID).
			Msg("access to foreign task denied")
		return models.Task{}, ErrForbidden
	}

	return task, nil
}
