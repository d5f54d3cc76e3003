package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/booknotes/internal/config"
	"github.com/MKhiriev/booknotes/internal/logger"
)

// NewConnectSQLite opens a file-backed SQLite connection and verifies it with
// a ping, retrying per the startup policy. The database file is created if it
// does not exist yet.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database with retries
	err = retry.Do(ctx, retry.WithMaxRetries(connectRetries, retry.NewConstant(connectRetryDelay)), func(ctx context.Context) error {
		if pingErr := conn.PingContext(ctx); pingErr != nil {
			log.Err(pingErr).Str("func", "NewConnectSQLite").Msg("DB connection failed, retrying...")
			return retry.RetryableError(pingErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: NewSQLiteErrorClassifier(),
		driver:     "sqlite3",
		logger:     log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create database file: %w", err)
	}

	return file.Close()
}
