package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID and CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, writeStatement, func() error {
		row := r.db.QueryRowContext(ctx, createUser, user.Login, user.PasswordHash)
		if err := row.Err(); err != nil {
			return err
		}
		return row.Scan(&created.UserID, &created.Login, &created.PasswordHash, &created.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByLogin retrieves the user whose Login matches user.Login.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - Any other error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.withRetry(ctx, readStatement, func() error {
		row := r.db.QueryRowContext(ctx, findUserByLogin, user.Login)
		return row.Scan(&foundUser.UserID, &foundUser.Login, &foundUser.PasswordHash, &foundUser.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", "*userRepository.FindUserByLogin").Str("login", user.Login).Msg("user not found")
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
