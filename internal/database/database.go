// Package database implements the Postgres persistence gateway for clients and
// items, plus inert no-op fallbacks used when no DATABASE_URL is configured.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnconfigured is returned by the no-op gateway for any write.
	ErrUnconfigured = errors.New("persistence gateway is not configured")
)

var (
	dbHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "database")})
	dbLogger  = slog.New(dbHandler)
)

// Connect opens a pgx connection pool and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	dbLogger.Info("connected to database")
	return pool, nil
}
