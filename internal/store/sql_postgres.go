package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/booknotes/internal/config"
	"github.com/MKhiriev/booknotes/internal/logger"
)

// Startup connection retry policy: 3 attempts total, 2 seconds apart.
// Exhausting the retries is fatal for the process.
const (
	connectRetries    = 2
	connectRetryDelay = 2 * time.Second
)

// NewConnectPostgres opens a PostgreSQL connection via the pgx database/sql
// driver and verifies it with a ping, retrying per the startup policy.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database with retries
	err = retry.Do(ctx, retry.WithMaxRetries(connectRetries, retry.NewConstant(connectRetryDelay)), func(ctx context.Context) error {
		if pingErr := conn.PingContext(ctx); pingErr != nil {
			log.Err(pingErr).Str("func", "NewConnectPostgres").Msg("DB connection failed, retrying...")
			return retry.RetryableError(pingErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:         conn,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: NewPostgresErrorClassifier(),
		driver:     "postgres",
		logger:     log,
	}

	return db, nil
}
