// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account persistence against the "users" table and works
// unchanged on PostgreSQL and SQLite thanks to the placeholder-aware
// statement builder carried by [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
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

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&created.ID, &created.Email, &created.HashedPassword, &created.FullName,
		&created.IsActive, &created.IsSuperuser, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		if r.db.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		r.db.warnIfRetryable(log, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user record with the given email.
// Returns [ErrUserNotFound] if no such user exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUserRow(ctx, log, query, args)
}

// FindUserByID retrieves the user record with the given ID.
// Returns [ErrUserNotFound] if no such user exists.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUserByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUserRow(ctx, log, query, args)
}

// ListUsers returns a page of user records ordered by ID.
func (r *userRepository) ListUsers(ctx context.Context, page models.Pagination) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsersQuery(r.db.builder, page)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: executing query")
		r.db.warnIfRetryable(log, err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, page.Limit)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.IsActive, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser applies the non-nil fields of patch to the user with the given
// ID and returns the updated record.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - no row matched the ID → [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateUserQuery(r.db.builder, id, patch)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID, &updated.Email, &updated.HashedPassword, &updated.FullName,
		&updated.IsActive, &updated.IsSuperuser, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: updating user")

		if r.db.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		r.db.warnIfRetryable(log, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the user with the given ID. Items owned by the user are
// removed by the ON DELETE CASCADE constraint on the items table.
// Returns [ErrUserNotFound] if no row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteUserQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: deleting user")
		r.db.warnIfRetryable(log, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) scanUserRow(ctx context.Context, log *logger.Logger, query string, args []any) (models.User, error) {
	var found models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&found.ID, &found.Email, &found.HashedPassword, &found.FullName,
		&found.IsActive, &found.IsSuperuser, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.scanUserRow").Msg("error: scanning user row")
		r.db.warnIfRetryable(log, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
