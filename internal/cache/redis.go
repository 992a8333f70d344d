package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"pds/internal/config"
	"pds/internal/logger"
)

const pingTimeout = 3 * time.Second

// NewRedisClient connects to redis for the list cache. A nil client is returned
// when redis is disabled or unreachable so the service keeps working uncached.
func NewRedisClient(cfg *config.Config, log *logger.Logger) (*redis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info("redis disabled, list cache off")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, list cache off", "addr", cfg.Redis.Addr, "error", err)
		_ = client.Close()
		return nil, func() {}, nil
	}

	log.Info("connected to redis", "addr", cfg.Redis.Addr)
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn("closing redis client failed", "error", err)
		}
	}
	return client, cleanup, nil
}
