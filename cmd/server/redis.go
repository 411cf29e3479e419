package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// setupRedis connects to the token revocation store and verifies it answers.
func setupRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Address, err)
	}

	logger.Info("Redis connection established", "address", cfg.Address, "db", cfg.DB)
	return client, nil
}
