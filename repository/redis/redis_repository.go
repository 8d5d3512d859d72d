package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/stock-allocation/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

// Repository defines the Redis-backed advisory locks
type Repository interface {
	// AcquireLock sets key to value if absent. It reports true when the caller now holds
	// the lock, and always true when Redis is not configured.
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// ReleaseLock deletes key only if it still holds value.
	ReleaseLock(ctx context.Context, key, value string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (r *redis) AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, key, value, ttl).Result()
}

func (r *redis) ReleaseLock(ctx context.Context, key, value string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return releaseScript.Run(ctx, client, []string{key}, value).Err()
}
