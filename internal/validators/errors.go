package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTaskID    = errors.New("invalid task ID")
	ErrInvalidOwnerID   = errors.New("invalid owner ID")
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
