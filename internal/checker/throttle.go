package checker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// ErrDailyLimitReached is returned when a store's daily request budget has
// been exhausted.
var ErrDailyLimitReached = errors.New("daily store request limit reached")

// Throttle spaces requests to each store by the store's request delay and
// enforces its optional daily budget. The budget uses a rolling 24-hour
// window that resets 24 hours after the first request in each window.
type Throttle struct {
	mu      sync.Mutex
	stores  map[int64]*storeBudget
	nowFunc func() time.Time
}

type storeBudget struct {
	limiter *rate.Limiter
	delay   time.Duration
	daily   int64
	resetAt time.Time
}

// ThrottleOption configures the Throttle.
type ThrottleOption func(*Throttle)

// WithThrottleNowFunc overrides the time function for testing.
func WithThrottleNowFunc(f func() time.Time) ThrottleOption {
	return func(t *Throttle) {
		t.nowFunc = f
	}
}

// NewThrottle creates an empty per-store throttle.
func NewThrottle(opts ...ThrottleOption) *Throttle {
	t := &Throttle{
		stores:  make(map[int64]*storeBudget),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Wait blocks until the store's limiter allows another request, or the
// context is canceled. Returns ErrDailyLimitReached if the store's daily
// budget is spent.
func (t *Throttle) Wait(ctx context.Context, cfg *domain.StoreAPIConfig) error {
	b, err := t.reserve(cfg)
	if err != nil {
		return err
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("store throttle wait: %w", err)
	}
	return nil
}

// DailyCount returns the number of requests made to a store in the current
// window.
func (t *Throttle) DailyCount(storeID int64) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if b, ok := t.stores[storeID]; ok {
		return b.daily
	}
	return 0
}

// reserve counts the request against the daily budget and returns the
// store's limiter, creating or retuning it when the delay changed.
func (t *Throttle) reserve(cfg *domain.StoreAPIConfig) (*storeBudget, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.nowFunc()
	delay := cfg.RequestDelay()

	b, ok := t.stores[cfg.StoreID]
	if !ok {
		b = &storeBudget{
			limiter: rate.NewLimiter(limitFor(delay), 1),
			delay:   delay,
			resetAt: now.Add(24 * time.Hour),
		}
		t.stores[cfg.StoreID] = b
	}

	if b.delay != delay {
		b.limiter.SetLimit(limitFor(delay))
		b.delay = delay
	}

	if now.After(b.resetAt) {
		b.daily = 0
		b.resetAt = now.Add(24 * time.Hour)
	}

	if cfg.DailyLimit > 0 && b.daily >= cfg.DailyLimit {
		return nil, fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, b.daily, cfg.DailyLimit)
	}

	b.daily++
	return b, nil
}

func limitFor(delay time.Duration) rate.Limit {
	if delay <= 0 {
		return rate.Inf
	}
	return rate.Every(delay)
}
