// Package dedup suppresses repeated webhook deliveries for the same key
// within a fixed time window.
package dedup

import (
	"sync"
	"time"
)

const DefaultTTL = 5 * time.Minute

type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	firstSeen map[string]time.Time
}

type Option func(*Cache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithTTL sets the suppression window. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func New(opts ...Option) *Cache {
	c := &Cache{
		ttl:       DefaultTTL,
		now:       time.Now,
		firstSeen: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Note records a delivery for key. It returns true for the first delivery
// within the TTL window and false for every repeat. Expired entries are swept
// after each insertion.
func (x *Cache) Note(key string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	now := x.now()
	if seen, ok := x.firstSeen[key]; ok && now.Sub(seen) < x.ttl {
		return false
	}

	x.firstSeen[key] = now
	x.sweep(now)
	return true
}

func (x *Cache) sweep(now time.Time) {
	for key, seen := range x.firstSeen {
		if now.Sub(seen) >= x.ttl {
			delete(x.firstSeen, key)
		}
	}
}

// Len returns the number of live entries.
func (x *Cache) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.firstSeen)
}

func (x *Cache) TTL() time.Duration {
	return x.ttl
}
