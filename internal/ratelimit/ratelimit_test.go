package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRedis_Allow(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	clock := time.Date(2024, 5, 1, 12, 0, 10, 0, time.UTC)
	l := NewRedis(client, "messages", 5, time.Minute)
	l.now = func() time.Time { return clock }

	t.Run("allows up to the limit per window", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			ok, err := l.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, ok, "request %d", i+1)
		}
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("callers are counted separately", func(t *testing.T) {
		ok, err := l.Allow(ctx, "5.6.7.8")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("keys expire with the window", func(t *testing.T) {
		key := l.key("1.2.3.4")
		assert.True(t, mr.Exists(key))
		assert.Equal(t, time.Minute, mr.TTL(key))

		mr.FastForward(time.Minute)
		assert.False(t, mr.Exists(key))
	})

	t.Run("next window starts fresh", func(t *testing.T) {
		clock = clock.Add(time.Minute)
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("redis failure is reported", func(t *testing.T) {
		mr.Close()
		_, err := l.Allow(ctx, "1.2.3.4")
		assert.Error(t, err)
	})
}

func TestLocal_Allow(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l := NewLocal(3, time.Minute)
	l.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "a")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok)

	// one token refills every 20s
	clock = clock.Add(21 * time.Second)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a")
	assert.False(t, ok)
}

func TestLocal_Prune(t *testing.T) {
	clock := time.Now()
	l := NewLocal(1, time.Second)
	l.now = func() time.Time { return clock }

	_, _ = l.Allow(context.Background(), "old")
	clock = clock.Add(2 * time.Second)
	l.prune(clock)
	assert.Empty(t, l.visitors)
}
