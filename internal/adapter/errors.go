package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-web-server/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrLoginFailed         = errors.New("login failed")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a failed call as reported by the server.
type APIError struct {
	StatusCode int
	Response   models.ErrorResponse

	sentinel error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d %s: %s (request %s)",
		e.StatusCode, e.Response.ErrorCode, e.Response.Message, e.Response.RequestID)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}
