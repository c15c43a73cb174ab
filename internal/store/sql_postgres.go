package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-web-server/internal/config"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/migrations"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	maxRetryAttempts = 3
	retryBaseDelay   = 50 * time.Millisecond
	retryMaxDelay    = time.Second
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, log), nil
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs op with exponential backoff. It stops when op succeeds,
// when the classifier rules out repeating a statement of the given kind,
// after maxRetryAttempts runs or when ctx is done.
func (db *DB) withRetry(ctx context.Context, kind statementKind, op func() error) error {
	log := logger.FromContext(ctx)

	var lastErr error
	operation := func() error {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !kind.retries(db.errorClassificator.Classify(lastErr)) {
			return backoff.Permanent(lastErr)
		}
		return lastErr
	}

	notify := func(err error, delay time.Duration) {
		log.Warn().
			Err(err).
			Str("func", "DB.withRetry").
			Dur("retry_after", delay).
			Msg("retryable database error")
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(db.newBackOff(), maxRetryAttempts-1),
		ctx,
	)
	err := backoff.RetryNotify(operation, bo, notify)
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) && lastErr != nil {
		return errors.Join(lastErr, err)
	}
	return err
}

func (db *DB) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryBaseDelay
	b.MaxInterval = retryMaxDelay
	b.Reset()
	return b
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
