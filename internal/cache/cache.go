// Package cache provides a small TTL-expiring key/value map used to time-box
// repeated search evaluations. It is deliberately not an LRU and has no
// capacity bound; entries simply expire.
package cache

import (
	"sync"
	"time"
)

// TTLCache is a mutex-protected map whose entries expire after a fixed
// duration via per-entry timers
type TTLCache struct {
	mu     sync.Mutex
	ttl    time.Duration
	items  map[string]any
	timers map[string]*time.Timer
}

// New creates a TTL cache. A non-positive ttl disables caching entirely:
// Set becomes a no-op.
func New(ttl time.Duration) *TTLCache {
	return &TTLCache{
		ttl:    ttl,
		items:  make(map[string]any),
		timers: make(map[string]*time.Timer),
	}
}

// Get returns the cached value for key, if present and unexpired
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

// Set stores a value under key and schedules its expiry. Setting an existing
// key resets its timer.
func (c *TTLCache) Set(key string, value any) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[key]; ok {
		t.Stop()
	}
	c.items[key] = value
	c.timers[key] = time.AfterFunc(c.ttl, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.items, key)
		delete(c.timers, key)
	})
}

// Delete removes a key ahead of its expiry
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[key]; ok {
		t.Stop()
		delete(c.timers, key)
	}
	delete(c.items, key)
}

// Len returns the number of live entries
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stop cancels all pending expiry timers and clears the cache
func (c *TTLCache) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.timers {
		t.Stop()
	}
	c.items = make(map[string]any)
	c.timers = make(map[string]*time.Timer)
}
