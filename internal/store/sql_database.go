package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/booknotes/internal/config"
	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/migrations"
)

// DB wraps the shared *sql.DB connection together with the driver-specific
// pieces repositories need: a squirrel statement builder configured with the
// right placeholder format and an error classifier for constraint violations.
type DB struct {
	*sql.DB

	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	driver     string
	logger     *logger.Logger
}

// NewConnect opens a connection to the configured backend and verifies it
// with a ping, retrying transient failures per the startup policy (3 attempts,
// 2 seconds apart). The caller is expected to treat an error as fatal.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "postgres":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies all embedded goose migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
