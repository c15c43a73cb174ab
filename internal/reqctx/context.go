// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reqctx

import (
	"context"
	"time"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	requestContextKey = contextKey("requestContext")
	identityKey       = contextKey("identity")
)

// Context is the per-request record created by the request stamper.
//
// RequestID and ReceivedAt are fixed at creation. The auth outcome is
// written exactly once through [Context.Resolve].
type Context struct {
	// RequestID is the opaque, collision-resistant identifier of the request.
	RequestID string

	// ReceivedAt is the moment the request entered the pipeline.
	ReceivedAt time.Time

	auth AuthOutcome
}

// New creates a Context in the Unresolved state.
func New(requestID string, receivedAt time.Time) *Context {
	return &Context{
		RequestID:  requestID,
		ReceivedAt: receivedAt,
	}
}

// Auth returns the current auth outcome.
func (c *Context) Auth() AuthOutcome {
	return c.auth
}

// Resolve records the auth outcome of the request.
//
// Only the first call with a terminal outcome takes effect. Subsequent calls
// return [ErrAlreadyResolved] and leave the recorded outcome untouched.
func (c *Context) Resolve(outcome AuthOutcome) error {
	if outcome.kind == Unresolved {
		return ErrUnresolvedOutcome
	}
	if c.auth.kind != Unresolved {
		return ErrAlreadyResolved
	}

	c.auth = outcome
	return nil
}

// WithContext returns a copy of ctx carrying rc.
func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, requestContextKey, rc)
}

// FromContext returns the request Context stored in ctx, if any.
func FromContext(ctx context.Context) (*Context, bool) {
	rc, ok := ctx.Value(requestContextKey).(*Context)
	return rc, ok && rc != nil
}

// RequestID returns the request identifier stored in ctx, or an empty string
// when ctx was not stamped.
func RequestID(ctx context.Context) string {
	if rc, ok := FromContext(ctx); ok {
		return rc.RequestID
	}
	return ""
}

// WithIdentity returns a copy of ctx carrying id. It is called by the
// authorization gate once it has checked the outcome, so handlers behind the
// gate can read the identity without inspecting the outcome themselves.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity admitted by the authorization
// gate. Handlers that are not behind the gate always get ok == false.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
