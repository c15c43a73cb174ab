// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-server/internal/app"
)

// Kind classifies a pipeline failure. Each kind has a fixed HTTP status and
// a stable error code that clients may rely on.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindValidationFailed
	KindLoginFailed
	KindNotFound
	KindMethodNotAllowed
)

type kindInfo struct {
	name    string
	status  int
	code    string
	message string
}

var kinds = map[Kind]kindInfo{
	KindInternal:         {"internal", http.StatusInternalServerError, "SERVICE_ERROR", app.MsgInternalServerError},
	KindUnauthorized:     {"unauthorized", http.StatusUnauthorized, "NO_AUTH", app.MsgAuthenticationRequired},
	KindForbidden:        {"forbidden", http.StatusForbidden, "FORBIDDEN", app.MsgAccessDenied},
	KindValidationFailed: {"validation_failed", http.StatusBadRequest, "VALIDATION_FAILED", app.MsgInvalidRequest},
	KindLoginFailed:      {"login_failed", http.StatusForbidden, "LOGIN_FAIL", app.MsgInvalidLoginPassword},
	KindNotFound:         {"not_found", http.StatusNotFound, "ENTITY_NOT_FOUND", app.MsgEntityNotFound},
	KindMethodNotAllowed: {"method_not_allowed", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", app.MsgMethodNotAllowed},
}

func (k Kind) info() kindInfo {
	if info, ok := kinds[k]; ok {
		return info
	}
	return kinds[KindInternal]
}

func (k Kind) String() string { return k.info().name }

// Status returns the HTTP status code rendered for k.
func (k Kind) Status() int { return k.info().status }

// Code returns the error_code rendered for k.
func (k Kind) Code() string { return k.info().code }

// PipelineError is the typed error raised by handlers and middleware.
// Message is rendered to the client; Err is the internal cause and is only
// logged.
type PipelineError struct {
	Kind    Kind
	Message string
	Err     error
}

func newError(kind Kind, message string, cause error) *PipelineError {
	if message == "" {
		message = kind.info().message
	}
	return &PipelineError{Kind: kind, Message: message, Err: cause}
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnauthorized is raised by the authorization gate. The message is
	// the same whether the cookie was missing, expired or tampered with.
	ErrUnauthorized = newError(KindUnauthorized, "", nil)

	errMethodNotAllowed = newError(KindMethodNotAllowed, "", nil)
	errUnknownRPCMethod = errors.New("unknown rpc method")
	errJarNotInstalled  = errors.New("cookie jar is not installed")
)
