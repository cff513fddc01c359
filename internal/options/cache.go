package options

import (
	"sync"
	"time"
)

// Cache is a TTL cache for resolved option lists. An entry is visible
// only while now - timestamp < ttl; expired entries are simply ignored
// until the next insert replaces them.
//
// The mutex exists because the suspending resolution path runs on a
// bubbletea command goroutine while preloads run on the caller's.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	options []string
	stamp   time.Time
	ttl     time.Duration
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached list for key if a live entry exists.
func (c *Cache) Get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.stamp) >= entry.ttl {
		return nil, false
	}
	return entry.options, true
}

// Insert stores a list under key with the given TTL, stamped now.
func (c *Cache) Insert(key string, opts []string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		options: opts,
		stamp:   c.now(),
		ttl:     ttl,
	}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
