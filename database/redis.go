package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dan-yates1/umg-project/config"
)

// ConnectRedis opens the Redis connection used by session-mode authentication
// and verifies it with a ping.
func ConnectRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}
