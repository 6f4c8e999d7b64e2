//go:build unit

package repository_test

import (
	"context"
	"sync"
	"testing"

	"request-market/internal/infra/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCounter(t *testing.T) (*repository.RedisUsageCounter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewRedisUsageCounter(client, "test:usage"), mr
}

func TestRedisUsageCounter_Increment(t *testing.T) {
	counter, mr := newRedisCounter(t)
	ctx := context.Background()
	userID := uuid.New()

	for want := 1; want <= 3; want++ {
		got, err := counter.Increment(ctx, userID, "2025-03")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// first increment sets an expiry so stale periods eventually drop off
	ttl := mr.TTL("test:usage:2025-03:" + userID.String())
	assert.Positive(t, ttl)
}

func TestRedisUsageCounter_ConcurrentIncrement(t *testing.T) {
	counter, _ := newRedisCounter(t)
	ctx := context.Background()
	userID := uuid.New()

	const workers = 32
	errc := make(chan error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := counter.Increment(ctx, userID, "2025-03")
			errc <- err
		}()
	}
	wg.Wait()
	close(errc)

	for err := range errc {
		require.NoError(t, err)
	}

	// no increment may be lost under contention
	got, err := counter.Get(ctx, userID, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, workers, got)
}

func TestRedisUsageCounter_Get(t *testing.T) {
	counter, _ := newRedisCounter(t)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("missing key reads as zero", func(t *testing.T) {
		count, err := counter.Get(ctx, userID, "2025-03")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("periods are isolated", func(t *testing.T) {
		_, err := counter.Increment(ctx, userID, "2025-03")
		require.NoError(t, err)

		count, err := counter.Get(ctx, userID, "2025-03")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = counter.Get(ctx, userID, "2025-04")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
