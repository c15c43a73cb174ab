package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-web-server/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID      = "id"
	FieldOwnerID = "owner_id"
	FieldTitle   = "title"
	FieldPatch   = "patch"
)

// MaxTitleLength is the maximum number of characters in a task title.
const MaxTitleLength = 500

type TaskValidator struct{}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	case models.TaskPatch:
		return v.validatePatch(ctx, value)
	case *models.TaskPatch:
		return v.validatePatch(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateTask(_ context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if task.ID <= 0 {
				return ErrInvalidTaskID
			}
		case FieldOwnerID:
			if task.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if err := validateTitle(task.Title); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validatePatch(_ context.Context, patch models.TaskPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if patch.Title != nil {
		return validateTitle(*patch.Title)
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
