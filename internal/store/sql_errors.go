package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassifier inspects driver-level errors and recognizes the constraint
// violations repositories translate into domain sentinels. Each backend gets
// its own implementation because the drivers expose error codes through
// incompatible types.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a UNIQUE
	// constraint violation (e.g. a duplicate username).
	IsUniqueViolation(err error) bool
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassifier]. It attempts to unwrap err
// as a *pgconn.PgError and checks for code 23505 (unique_violation).
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite.
// It inspects the extended result code returned by the mattn driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassifier]. It attempts to unwrap err
// as a sqlite3.Error and checks for the SQLITE_CONSTRAINT_UNIQUE extended code.
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
