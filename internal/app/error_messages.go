// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-web-server handlers and middleware.
//
// All Msg* constants are human-readable message strings rendered in the
// "message" field of error responses. Keeping them in one place keeps the
// public wording consistent across the API.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgAuthenticationRequired is returned for every request rejected by
	// the authorization gate, whatever was wrong with the identity cookie.
	MsgAuthenticationRequired = "authentication required"

	// MsgAccessDenied is returned when an authenticated user touches an
	// entity owned by someone else.
	MsgAccessDenied = "access denied"

	// MsgInvalidRequest is the fallback for validation failures without a
	// more specific message.
	MsgInvalidRequest = "invalid request"

	// MsgInvalidDataProvided is returned when the login form is incomplete.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidParams is returned when RPC params do not match the method.
	MsgInvalidParams = "invalid params"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLogoffNotConfirmed is returned when a logoff request does not carry
	// "logoff": true.
	MsgLogoffNotConfirmed = "logoff must be true"

	// MsgEntityNotFound is returned when the addressed entity does not exist.
	MsgEntityNotFound = "entity not found"

	MsgMethodNotAllowed = "method not allowed"
)
