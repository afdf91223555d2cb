//go:build integration

package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/inventory-tracker/internal/lock"
	"github.com/donaldgifford/inventory-tracker/pkg/logger"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = ctr.Terminate(context.Background())
	})

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisLocker(t *testing.T) {
	client := setupRedis(t)
	l := lock.NewRedisLocker(client,
		lock.WithKeyPrefix("test:"),
		lock.WithRetryDelay(10*time.Millisecond),
		lock.WithLogger(logger.Discard()),
	)
	ctx := context.Background()

	require.NoError(t, l.Ping(ctx))

	t.Run("exclusive until released", func(t *testing.T) {
		release, err := l.Acquire(ctx, "product:1", time.Minute)
		require.NoError(t, err)

		short, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()
		_, err = l.Acquire(short, "product:1", time.Minute)
		require.ErrorIs(t, err, lock.ErrNotAcquired)

		release()

		release2, err := l.Acquire(ctx, "product:1", time.Minute)
		require.NoError(t, err)
		release2()
	})

	t.Run("expired lease is not released by its old holder", func(t *testing.T) {
		stale, err := l.Acquire(ctx, "product:2", 50*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)

		fresh, err := l.Acquire(ctx, "product:2", time.Minute)
		require.NoError(t, err)
		defer fresh()

		stale()

		exists, err := client.Exists(ctx, "test:product:2").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})

	t.Run("waits for holder", func(t *testing.T) {
		release, err := l.Acquire(ctx, "product:3", time.Minute)
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			release()
		}()

		waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		r2, err := l.Acquire(waitCtx, "product:3", time.Minute)
		require.NoError(t, err)
		r2()
	})
}
