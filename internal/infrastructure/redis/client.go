package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/config"
)

// NewClient creates a Redis client for the audit event sink.
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping verifies the Redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}
