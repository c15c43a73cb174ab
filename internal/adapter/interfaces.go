// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-web-server HTTP API.
//
// The primary abstraction is [ServerAdapter]. The HTTP implementation
// ([NewHTTPServerAdapter]) keeps the identity cookie in a cookie jar, so a
// successful Login authenticates every later call made through the same
// adapter, and Logoff clears it again.
//
// Failed calls are mapped from the server's error body by mapHTTPError so
// that callers can use [errors.Is] against the sentinels in errors.go
// (e.g. [ErrUnauthorized] for NO_AUTH) or [errors.As] against [*APIError]
// for the full response.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-web-server/models"
)

// ServerAdapter defines communication with the go-web-server API.
type ServerAdapter interface {
	// Login exchanges credentials for the identity cookie.
	Login(ctx context.Context, login, password string) error

	// Logoff asks the server to drop the identity cookie.
	Logoff(ctx context.Context) error

	// WhoAmI returns the identity the server resolved for this client.
	WhoAmI(ctx context.Context) (models.WhoAmIResponse, error)

	// Call invokes an RPC method. params is encoded as the "params" member;
	// the "result" member of the response is decoded into result when it is
	// not nil.
	Call(ctx context.Context, method string, params any, result any) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
