package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells withRetry whether a failed statement may be run
// again and for which kinds of statement.
type ErrorClassification int

const (
	// NonRetryable errors are returned to the caller as is.
	NonRetryable ErrorClassification = iota

	// Retryable errors guarantee that the statement had no effect: the
	// transaction was rolled back or the connection was never established.
	// Any statement may be repeated.
	Retryable

	// RetryableRead errors leave the outcome of the statement unknown: the
	// connection broke after the statement may have been committed. Only
	// reads are repeated.
	RetryableRead
)

// statementKind says whether a statement changes data.
type statementKind int

const (
	readStatement statementKind = iota
	writeStatement
)

// retries reports whether a failure classified as c may be repeated for
// statements of kind k.
func (k statementKind) retries(c ErrorClassification) bool {
	switch c {
	case Retryable:
		return true
	case RetryableRead:
		return k == readStatement
	default:
		return false
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE codes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. Errors that carry no SQLSTATE
// are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected,     // 40P01
		pgerrcode.CannotConnectNow:     // 57P03
		return Retryable

	case pgerrcode.ConnectionException, // 08000
		pgerrcode.ConnectionDoesNotExist, // 08003
		pgerrcode.ConnectionFailure:      // 08006
		return RetryableRead
	}

	return NonRetryable
}
