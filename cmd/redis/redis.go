package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/stock-allocation/cmd/config"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dialTimeout = 5 * time.Second

var client *redis.Client

// New connects the shared client used for per-order locks. With Redis disabled the client
// stays nil and only database row locks serialize order mutations.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}
	if !cfg.Redis.Enabled {
		logger.Warn("redis disabled, order locks fall back to database row locks")
		return nil
	}
	if cfg.Redis.LockTTL <= 0 {
		return fmt.Errorf("redis lock ttl must be positive, got %s", cfg.Redis.LockTTL)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	client = c
	logger.Info("redis connected", zap.String("addr", addr), zap.Int("pool_size", cfg.Redis.PoolSize))
	return nil
}

// Get returns the shared client, nil when Redis is disabled.
func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
