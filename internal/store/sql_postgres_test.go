// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionFailure, RetryableRead},
		{pgerrcode.ConnectionDoesNotExist, RetryableRead},
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.SyntaxError, NonRetryable},
		{"XX000", NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(errors.Join(errors.New("wrapped"), pgError(pgerrcode.DeadlockDetected))))
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(pgError(pgerrcode.UniqueViolation)))
	assert.Empty(t, postgresError(errors.New("plain")))
}

func TestStatementKind_Retries(t *testing.T) {
	tests := []struct {
		name  string
		kind  statementKind
		class ErrorClassification
		want  bool
	}{
		{"read after rollback", readStatement, Retryable, true},
		{"write after rollback", writeStatement, Retryable, true},
		{"read after lost connection", readStatement, RetryableRead, true},
		{"write after lost connection", writeStatement, RetryableRead, false},
		{"read after constraint violation", readStatement, NonRetryable, false},
		{"write after constraint violation", writeStatement, NonRetryable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.retries(tt.class))
		})
	}
}

func TestWithRetry(t *testing.T) {
	db := newDB(nil, logger.Nop())

	tests := []struct {
		name      string
		kind      statementKind
		errs      []error
		wantCalls int
		wantErr   string
	}{
		{
			name:      "succeeds first time",
			kind:      writeStatement,
			errs:      []error{nil},
			wantCalls: 1,
		},
		{
			name:      "stops on non-retryable error",
			kind:      readStatement,
			errs:      []error{pgError(pgerrcode.UniqueViolation)},
			wantCalls: 1,
			wantErr:   pgerrcode.UniqueViolation,
		},
		{
			name:      "recovers from deadlock",
			kind:      writeStatement,
			errs:      []error{pgError(pgerrcode.DeadlockDetected), nil},
			wantCalls: 2,
		},
		{
			name:      "read gives up after max attempts",
			kind:      readStatement,
			errs:      []error{pgError(pgerrcode.ConnectionFailure)},
			wantCalls: maxRetryAttempts,
			wantErr:   pgerrcode.ConnectionFailure,
		},
		{
			name:      "write is not repeated after lost connection",
			kind:      writeStatement,
			errs:      []error{pgError(pgerrcode.ConnectionFailure)},
			wantCalls: 1,
			wantErr:   pgerrcode.ConnectionFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := db.withRetry(context.Background(), tt.kind, func() error {
				i := min(calls, len(tt.errs)-1)
				calls++
				return tt.errs[i]
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, postgresError(err))
		})
	}

	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := db.withRetry(ctx, readStatement, func() error {
			calls++
			return pgError(pgerrcode.ConnectionFailure)
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, pgerrcode.ConnectionFailure, postgresError(err))
		assert.Equal(t, 1, calls)
	})
}
