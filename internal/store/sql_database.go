package store

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/migrations"
	"github.com/mattn/go-sqlite3"
)

// DB wraps the raw *sql.DB connection with everything the repositories need
// to stay driver-agnostic: a squirrel statement builder configured with the
// driver's placeholder format, a unique-violation detector, and an error
// classificator for retry decisions.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the database schema up to date. PostgreSQL uses the
// embedded goose migrations; SQLite applies the bootstrap DDL directly
// because goose's pgx dialect does not apply there.
func (db *DB) Migrate() error {
	if db.driver == config.DriverSQLite {
		return db.bootstrapSQLite()
	}
	return migrations.Migrate(db.DB)
}

// warnIfRetryable logs a warning when err is classified as transient, so
// that operators can tell connection flaps apart from real query failures.
// SQLite connections carry no classificator and skip the check.
func (db *DB) warnIfRetryable(log *logger.Logger, err error) {
	if db.errorClassificator == nil {
		return
	}
	if db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Msg("transient database error, operation may be retried")
	}
}

// IsUniqueViolation reports whether err was caused by a unique-constraint
// violation, regardless of the underlying driver.
func (db *DB) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if postgresErrorCode(err) == uniqueViolationCode {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
