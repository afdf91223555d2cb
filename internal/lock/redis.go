package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
)

const (
	defaultKeyPrefix  = "invt:lock:"
	defaultRetryDelay = 50 * time.Millisecond
	releaseTimeout    = 5 * time.Second
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lease never removes a lock another worker has since taken.
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

// RedisLocker is a Locker shared by every replica pointed at the same Redis.
type RedisLocker struct {
	client     redis.UniversalClient
	prefix     string
	retryDelay time.Duration
	log        *slog.Logger
}

// RedisOption configures a RedisLocker.
type RedisOption func(*RedisLocker)

// WithKeyPrefix namespaces lock keys.
func WithKeyPrefix(p string) RedisOption {
	return func(l *RedisLocker) {
		if p != "" {
			l.prefix = p
		}
	}
}

// WithRetryDelay sets how often a contended key is polled.
func WithRetryDelay(d time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if d > 0 {
			l.retryDelay = d
		}
	}
}

// WithLogger sets the logger used for release failures.
func WithLogger(log *slog.Logger) RedisOption {
	return func(l *RedisLocker) { l.log = log }
}

// NewRedisLocker creates a RedisLocker on an existing client.
func NewRedisLocker(client redis.UniversalClient, opts ...RedisOption) *RedisLocker {
	l := &RedisLocker{
		client:     client,
		prefix:     defaultKeyPrefix,
		retryDelay: defaultRetryDelay,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Ping verifies the Redis connection.
func (l *RedisLocker) Ping(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}
	return nil
}

// Acquire implements Locker with SET NX PX and a per-lease token.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	k := l.prefix + key
	token := uuid.NewString()
	contended := false

	for {
		ok, err := l.client.SetNX(ctx, k, token, ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, ctx.Err())
			}
			return nil, fmt.Errorf("acquiring %s: %w", key, err)
		}
		if ok {
			break
		}
		if !contended {
			contended = true
			metrics.LockContentionTotal.Inc()
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, ctx.Err())
		case <-time.After(l.retryDelay):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(k, token) })
	}, nil
}

func (l *RedisLocker) release(k, token string) {
	rctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	if err := releaseScript.Run(rctx, l.client, []string{k}, token).Err(); err != nil {
		l.log.Warn("releasing lock", "key", k, "error", err)
	}
}
