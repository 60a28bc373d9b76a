package config

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/NomadCrew/feedback-api/logger"
	"github.com/redis/go-redis/v9"
)

// RedisOptions builds go-redis client options from the Redis settings.
// TLS is enabled when UseTLS is set or the address points at Upstash.
func RedisOptions(cfg *RedisConfig) *redis.Options {
	opts := &redis.Options{
		Addr:            cfg.Address,
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        cfg.PoolSize,
		ConnMaxLifetime: time.Hour,
		MaxRetries:      3,
		MinRetryBackoff: 100 * time.Millisecond,
		MaxRetryBackoff: 2 * time.Second,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	}

	if cfg.UseTLS || strings.Contains(cfg.Address, "upstash.io") {
		host := cfg.Address
		if i := strings.LastIndex(host, ":"); i > 0 {
			host = host[:i]
		}
		opts.TLSConfig = &tls.Config{
			ServerName: host,
			MinVersion: tls.VersionTLS12,
		}
	}

	logger.GetLogger().Infow("Configuring Redis connection",
		"address", cfg.Address,
		"db", cfg.DB,
		"pool_size", cfg.PoolSize,
		"use_tls", opts.TLSConfig != nil)

	return opts
}

// PingRedis pings the client up to attempts times, sleeping delay between
// tries. It gives up early when ctx is done.
func PingRedis(ctx context.Context, client *redis.Client, attempts int, delay time.Duration) error {
	log := logger.GetLogger()
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = client.Ping(ctx).Err(); err == nil {
			if i > 0 {
				log.Infow("Connected to Redis after retries", "attempt", i+1)
			}
			return nil
		}
		if i == attempts-1 {
			break
		}
		log.Warnw("Failed to ping Redis, retrying", "error", err, "attempt", i+1, "max_attempts", attempts)
		select {
		case <-ctx.Done():
			return fmt.Errorf("redis ping cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("failed to connect to redis after %d attempts: %w", attempts, err)
}
