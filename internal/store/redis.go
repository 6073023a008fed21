package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and pings it. A config without an
// address yields a nil client and no error: Redis-backed features are off.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	if cfg.Address == "" {
		log.Info().Msg("redis is not configured")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Address, err)
	}

	log.Info().Str("address", cfg.Address).Msg("connected to redis")
	return client, nil
}
