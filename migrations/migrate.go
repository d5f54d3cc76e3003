package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// dialects maps the configured driver name to the goose dialect.
var dialects = map[string]string{
	"postgres": "pgx",
	"sqlite3":  "sqlite3",
}

// Migrate applies all embedded migrations for the given driver.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
