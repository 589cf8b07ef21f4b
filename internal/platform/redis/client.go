// Package redis holds the Redis-backed pieces of the service: the client
// constructor and the revoked-token list consulted on every authenticated
// request.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/colis-app/colis-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewClient creates a Redis client from cfg and checks the connection.
// It returns nil and no error when cfg.Addr is empty, meaning revocation is
// disabled.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	options := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}
