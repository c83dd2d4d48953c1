package availability

import (
	"sync"
	"time"
)

type cacheEntry struct {
	remaining int
	fetchedAt time.Time
}

// Cache is a TTL cache of remaining-slot counts keyed by date string.
// The clock is injectable so expiry can be tested without real delays.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache returns a cache with the given TTL. A nil clock defaults to time.Now.
func NewCache(ttl time.Duration, clock func() time.Time) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     clock,
	}
}

// Get returns the cached remaining count for a date if it is still fresh.
// Every read also sweeps expired entries, so the map cannot grow unbounded
// without a dedicated lifecycle owner.
func (c *Cache) Get(date string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweepLocked(now)

	entry, ok := c.entries[date]
	if !ok {
		return 0, false
	}
	return entry.remaining, true
}

// Set overwrites the entry for a date with a freshly fetched value.
func (c *Cache) Set(date string, remaining int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[date] = cacheEntry{remaining: remaining, fetchedAt: c.now()}
}

// Invalidate removes a single entry so the next read bypasses the stale
// pre-booking count. Invalidating an absent entry is a no-op.
func (c *Cache) Invalidate(date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, date)
}

func (c *Cache) sweepLocked(now time.Time) {
	for date, entry := range c.entries {
		if now.Sub(entry.fetchedAt) >= c.ttl {
			delete(c.entries, date)
		}
	}
}
