// Package cache implements a small in-memory TTL cache. Every upstream
// client in this engine keeps its own typed cache so repeated requests
// for the same corridor do not hammer the public APIs.
package cache

import (
	"fmt"
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache is a generic TTL cache safe for concurrent use. A background
// sweeper evicts expired entries; Close stops it.
type Cache[T any] struct {
	mu         sync.RWMutex
	entries    map[string]entry[T]
	defaultTTL time.Duration
	done       chan struct{}
	closeOnce  sync.Once
}

// New creates a cache whose entries live for defaultTTL unless SetTTL
// overrides it, sweeping expired entries every sweepInterval.
func New[T any](defaultTTL, sweepInterval time.Duration) *Cache[T] {
	c := &Cache[T]{
		entries:    make(map[string]entry[T]),
		defaultTTL: defaultTTL,
		done:       make(chan struct{}),
	}
	go c.sweep(sweepInterval)
	return c
}

// Get returns the live value for key, if any.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *Cache[T]) Set(key string, value T) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL.
func (c *Cache[T]) SetTTL(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, expiresAt: time.Now().Add(ttl)}
}

// Delete removes key if present.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Flush discards every entry.
func (c *Cache[T]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the background sweeper. Safe to call more than once.
func (c *Cache[T]) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Cache[T]) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, e := range c.entries {
				if now.After(e.expiresAt) {
					delete(c.entries, k)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

// PointKey builds a cache key from a coordinate rounded to four decimal
// places (about 36 feet), plus an arbitrary discriminator.
func PointKey(lat, lon float64, extra int) string {
	return fmt.Sprintf("%.4f,%.4f,%d", lat, lon, extra)
}
