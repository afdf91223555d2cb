// Package lock provides keyed mutual exclusion so that two checks of the same
// product never run at the same time.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
)

// ErrNotAcquired is returned when the context ends before the lock is free.
var ErrNotAcquired = errors.New("lock not acquired")

// Locker hands out exclusive leases on string keys. Acquire blocks until the
// key is free or ctx is done. The returned release func is safe to call more
// than once.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// ProductKey is the lock key used for a product's check.
func ProductKey(productID int64) string {
	return fmt.Sprintf("product:%d", productID)
}

// MemoryLocker is an in-process Locker. The ttl is ignored since a lease
// cannot outlive the process that holds it. A key's entry lives only while
// some caller holds or waits on it.
type MemoryLocker struct {
	mu   sync.Mutex
	keys map[string]*keyEntry
}

type keyEntry struct {
	sem  chan struct{}
	refs int
}

// NewMemoryLocker creates an empty in-process locker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{keys: make(map[string]*keyEntry)}
}

// Acquire implements Locker.
func (l *MemoryLocker) Acquire(ctx context.Context, key string, _ time.Duration) (func(), error) {
	l.mu.Lock()
	e, ok := l.keys[key]
	if !ok {
		e = &keyEntry{sem: make(chan struct{}, 1)}
		l.keys[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	default:
		metrics.LockContentionTotal.Inc()
		select {
		case e.sem <- struct{}{}:
		case <-ctx.Done():
			l.unref(key, e)
			return nil, fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, ctx.Err())
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			l.unref(key, e)
		})
	}, nil
}

func (l *MemoryLocker) unref(key string, e *keyEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.keys, key)
	}
}
