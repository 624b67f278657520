package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budget-control/backend/internal/application/adapter"
)

const rateLimitKeyPrefix = "rate_limit:"

// RedisRateLimitStore is a fixed window counter shared by every API instance.
type RedisRateLimitStore struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

var _ adapter.RateLimitStore = (*RedisRateLimitStore)(nil)

// NewRedisRateLimitStore creates a store allowing maxAttempts per key within each window.
func NewRedisRateLimitStore(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RedisRateLimitStore {
	return &RedisRateLimitStore{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// allowScript counts the attempt and starts the window in one step. A counter
// left without a TTL is given one on its next attempt.
var allowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// Allow increments the counter for key and reports whether it is within the limit.
// The window starts with the first attempt.
func (s *RedisRateLimitStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitKeyPrefix + key

	count, err := allowScript.Run(ctx, s.client, []string{redisKey}, s.windowDuration.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to count attempt: %w", err)
	}

	return count <= int64(s.maxAttempts), nil
}
