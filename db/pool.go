// Package db owns the PostgreSQL connection pool and schema migrations.
package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/NomadCrew/feedback-api/config"
	"github.com/NomadCrew/feedback-api/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig builds a pgxpool configuration from the database settings.
func PoolConfig(cfg *config.DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)

	connMaxLife, err := time.ParseDuration(cfg.ConnMaxLife)
	if err != nil {
		return nil, fmt.Errorf("invalid connection max lifetime %q: %w", cfg.ConnMaxLife, err)
	}
	poolConfig.MaxConnLifetime = connMaxLife

	if cfg.SSLMode == "require" && poolConfig.ConnConfig.TLSConfig == nil {
		poolConfig.ConnConfig.TLSConfig = &tls.Config{
			ServerName: poolConfig.ConnConfig.Host,
			MinVersion: tls.VersionTLS12,
		}
	}

	return poolConfig, nil
}

// NewPool connects to PostgreSQL and verifies the connection with a ping.
// The pool is shared by every request for the lifetime of the process.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	log := logger.GetLogger()

	poolConfig, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	log.Infow("Connecting to database",
		"connection_string", logger.MaskConnectionString(cfg.URL()),
		"max_connections", poolConfig.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database connection established")
	return pool, nil
}
