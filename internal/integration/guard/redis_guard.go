// Package guard implements the in-flight mutation guard.
package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// releaseScript deletes the key only when it still holds our token, so a
// guard that expired and was re-acquired elsewhere is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisGuard implements adapter.MutationGuard with SET NX PX.
type redisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisGuard creates a guard shared by every dashboard instance using the same Redis.
// ttl bounds how long a crashed request can hold a key.
func NewRedisGuard(client *redis.Client, ttl time.Duration) adapter.MutationGuard {
	return &redisGuard{
		client: client,
		ttl:    ttl,
	}
}

// TryAcquire claims key for ttl.
func (g *redisGuard) TryAcquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire mutation guard: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees key if token still owns it.
func (g *redisGuard) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, g.client, []string{key}, token).Err(); err != nil {
		return fmt.Errorf("failed to release mutation guard: %w", err)
	}
	return nil
}
