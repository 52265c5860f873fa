package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

const (
	dbMaxConns        = 25
	dbMinConns        = 5
	dbMaxConnLifetime = 5 * time.Minute
	dbMaxConnIdleTime = time.Minute
	dbApplicationName = "arch-gallery"
)

// ConnectDatabase opens the connection pool and returns it with a cleanup
// function that closes it.
func ConnectDatabase(ctx context.Context, config Config, log logger.Logger) (*pgxpool.Pool, func(), error) {
	log.Info(ctx, "connecting to database")

	poolConfig, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		log.Error(ctx, "failed to parse database URL", "error", err)
		return nil, nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = dbMaxConns
	poolConfig.MinConns = dbMinConns
	poolConfig.MaxConnLifetime = dbMaxConnLifetime
	poolConfig.MaxConnIdleTime = dbMaxConnIdleTime
	poolConfig.ConnConfig.RuntimeParams["application_name"] = dbApplicationName

	log.Debug(ctx, "database pool configuration",
		"max_conns", poolConfig.MaxConns,
		"min_conns", poolConfig.MinConns,
		"max_conn_lifetime", poolConfig.MaxConnLifetime,
		"max_conn_idle_time", poolConfig.MaxConnIdleTime,
	)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error(ctx, "failed to create connection pool", "error", err)
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, "failed to ping database", "error", err)
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info(ctx, "database connection established")

	cleanup := func() {
		log.Info(context.Background(), "closing database connection pool")
		pool.Close()
	}
	return pool, cleanup, nil
}
