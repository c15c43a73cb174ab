package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrForbidden is returned when a caller touches a task owned by
	// another user.
	ErrForbidden = errors.New("task belongs to another user")
)
