// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorResponse is the only body shape ever rendered for a failed request.
//
// It deliberately carries no internal detail: Status and ErrorCode are stable
// and documented, Message is safe to display to end users, and RequestID lets
// operators find the matching server-side log entry.
type ErrorResponse struct {
	// Status is the HTTP status code, repeated in the body for clients that
	// only keep the payload.
	Status int `json:"status"`

	// ErrorCode is a stable machine-readable identifier (e.g. "NO_AUTH").
	ErrorCode string `json:"error_code"`

	// Message is a human-readable, safe-to-display description.
	Message string `json:"message"`

	// RequestID is the correlation identifier of the failed request.
	RequestID string `json:"request_id"`
}

// LoginResponse is returned by the login and logoff endpoints.
type LoginResponse struct {
	Result LoginResult `json:"result"`
}

// LoginResult reports the outcome of a login or logoff call.
type LoginResult struct {
	Success   bool `json:"success,omitempty"`
	LoggedOff bool `json:"logged_off,omitempty"`
}

// LogoffRequest is the payload of the logoff endpoint.
type LogoffRequest struct {
	Logoff bool `json:"logoff"`
}

// WhoAmIResponse describes the identity resolved for the current request.
type WhoAmIResponse struct {
	UserID    int64     `json:"user_id"`
	Login     string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
