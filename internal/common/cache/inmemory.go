package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryClient keeps entries in process memory. Suitable for values that
// are immutable once written, such as allocated IBAN details.
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry[T]
	done    chan struct{}
}

type memoryEntry[T any] struct {
	value    T
	expireAt time.Time
}

func (e memoryEntry[T]) expired(now time.Time) bool {
	return !e.expireAt.IsZero() && e.expireAt.Before(now)
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	c := &InMemoryClient[T]{
		entries: make(map[string]memoryEntry[T]),
		done:    make(chan struct{}),
	}

	go c.evictLoop()
	return c
}

func (c *InMemoryClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()

	if !found {
		return result, ErrNotExists
	}

	if entry.expired(time.Now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return result, ErrNotExists
	}

	return entry.value, nil
}

func (c *InMemoryClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry[T]{
		value:    object,
		expireAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

func (c *InMemoryClient[T]) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.Get(ctx, key)
	if err == ErrNotExists {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *InMemoryClient[T]) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, entry := range c.entries {
				if entry.expired(now) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

// Close stops the background eviction loop.
func (c *InMemoryClient[T]) Close() {
	close(c.done)
}
