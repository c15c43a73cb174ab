// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// Queries are built with squirrel using dollar placeholders.
type taskRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger,
	}
}

func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.builder.
		Insert(models.Task{}.TableName()).
		Columns("owner_id", "title", "done").
		Values(task.OwnerID, task.Title, task.Done).
		Suffix(taskReturning).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := t.queryOne(ctx, writeStatement, query, args)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.CreateTask").Int64("owner_id", task.OwnerID).Msg("failed to insert task")
		return models.Task{}, err
	}

	return created, nil
}

func (t *taskRepository) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	query, args, err := t.builder.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.queryOne(ctx, readStatement, query, args)
}

func (t *taskRepository) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.builder.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tasks []models.Task
	err = t.db.withRetry(ctx, readStatement, func() error {
		tasks = make([]models.Task, 0, 16)

		rows, err := t.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var task models.Task
			if err := rows.Scan(&task.ID, &task.OwnerID, &task.Title, &task.Done, &task.CreatedAt, &task.UpdatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			tasks = append(tasks, task)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "taskRepository.ListTasks").Int64("owner_id", ownerID).Msg("failed to list tasks")
		return nil, err
	}

	return tasks, nil
}

// UpdateTask applies the non-nil fields of patch and bumps updated_at.
func (t *taskRepository) UpdateTask(ctx context.Context, taskID int64, patch models.TaskPatch) (models.Task, error) {
	update := t.builder.Update(models.Task{}.TableName())
	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Done != nil {
		update = update.Set("done", *patch.Done)
	}

	query, args, err := update.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": taskID}).
		Suffix(taskReturning).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.queryOne(ctx, writeStatement, query, args)
}

func (t *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := t.builder.
		Delete(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = t.db.withRetry(ctx, writeStatement, func() error {
		res, err := t.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "taskRepository.DeleteTask").Int64("task_id", taskID).Msg("failed to delete task")
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// queryOne runs a statement returning a single task row.
func (t *taskRepository) queryOne(ctx context.Context, kind statementKind, query string, args []any) (models.Task, error) {
	var task models.Task
	err := t.db.withRetry(ctx, kind, func() error {
		row := t.db.QueryRowContext(ctx, query, args...)
		return row.Scan(&task.ID, &task.OwnerID, &task.Title, &task.Done, &task.CreatedAt, &task.UpdatedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Task{}, ErrTaskNotFound
	case err != nil:
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}
