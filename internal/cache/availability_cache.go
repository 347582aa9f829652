package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultTTL bounds how stale a cached availability value may get even
	// if invalidation is missed.
	DefaultTTL = 30 * time.Second

	// DefaultSize bounds memory; least-recently-used flights are evicted first.
	DefaultSize = 1024
)

// AvailabilityCache is a process-local, TTL- and size-bounded cache of
// computed available-seat counts. Read path only: the reservation engine
// never consults it, so it can never feed a stale value into a write.
type AvailabilityCache struct {
	entries *lru.LRU[string, int]
}

// NewAvailabilityCache creates a cache holding at most size entries, each
// expiring ttl after insertion. Zero values fall back to the defaults.
func NewAvailabilityCache(size int, ttl time.Duration) *AvailabilityCache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &AvailabilityCache{
		entries: lru.NewLRU[string, int](size, nil, ttl),
	}
}

// Get returns the cached available-seat count for a flight, if present and
// not expired.
func (c *AvailabilityCache) Get(flightID string) (int, bool) {
	return c.entries.Get(flightID)
}

// Set stores the available-seat count for a flight.
func (c *AvailabilityCache) Set(flightID string, available int) {
	c.entries.Add(flightID, available)
}

// Invalidate removes a flight's entry. No-op when nothing is cached.
func (c *AvailabilityCache) Invalidate(flightID string) {
	c.entries.Remove(flightID)
}

// Len returns the number of live entries.
func (c *AvailabilityCache) Len() int {
	return c.entries.Len()
}
