package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimitStore_Allow(t *testing.T) {
	store := NewMemoryRateLimitStore(2, time.Minute)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := store.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, _ := store.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed)

	allowed, _ = store.Allow(ctx, "10.0.0.2")
	assert.True(t, allowed, "keys are counted separately")

	current = current.Add(time.Minute + time.Second)
	allowed, _ = store.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed, "window expired")
}

func TestMemoryRateLimitStore_CleanupAndReset(t *testing.T) {
	store := NewMemoryRateLimitStore(1, time.Minute)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	_, _ = store.Allow(ctx, "a")
	current = current.Add(30 * time.Second)
	_, _ = store.Allow(ctx, "b")

	current = current.Add(45 * time.Second)
	store.Cleanup()
	assert.Len(t, store.entries, 1)

	store.Reset()
	assert.Empty(t, store.entries)
}

func TestRedisRateLimitStore_Allow(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisRateLimitStore(client, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := store.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, server.TTL(rateLimitKeyPrefix+"10.0.0.1"))

	server.FastForward(time.Minute + time.Second)

	allowed, err = store.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimitStore_CounterWithoutTTL(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	redisKey := rateLimitKeyPrefix + "10.0.0.1"

	// counter created by an earlier attempt whose window was never started
	require.NoError(t, client.Incr(ctx, redisKey).Err())
	require.Zero(t, server.TTL(redisKey))

	store := NewRedisRateLimitStore(client, 2, time.Minute)

	allowed, err := store.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, time.Minute, server.TTL(redisKey))

	allowed, err = store.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	server.FastForward(time.Minute + time.Second)

	allowed, err = store.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed, "window healed and expired")
}

func TestRedisRateLimitStore_Unavailable(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	store := NewRedisRateLimitStore(client, 3, time.Minute)

	_, err := store.Allow(context.Background(), "10.0.0.1")
	assert.Error(t, err)
}
