package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/chenna14/Real-time-Data-Classification/internal/config"
	"github.com/chenna14/Real-time-Data-Classification/internal/redact"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/sethvargo/go-retry"
)

const pingTimeout = 5 * time.Second

// setupAppDatabase opens the connection pool and waits for the database to
// answer, retrying with Fibonacci backoff up to MaxConnectRetries times.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	backoff := retry.WithMaxRetries(cfg.Database.MaxConnectRetries, retry.NewFibonacci(1*time.Second))
	if err := pingWithRetry(ctx, db, backoff, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("Database connection established")
	return db, nil
}

func pingWithRetry(ctx context.Context, db *sql.DB, backoff retry.Backoff, logger *slog.Logger) error {
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := db.PingContext(pingCtx); err != nil {
			logger.Warn("database not ready",
				"attempt", attempt,
				"error", redact.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to ping database after %d attempts: %w", attempt, err)
	}
	return nil
}
