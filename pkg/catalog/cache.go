package catalog

import (
	"sync"
	"time"

	"github.com/threestrands/threestrands/internal/utils"
)

// Cache holds the last combined catalog payload for a fixed window. It is
// constructed at startup and owned by the service; there is no ambient
// package-level state. A stale entry is never served: Get reports a miss the
// moment the TTL elapses and the caller must refetch. Concurrent misses may
// each refetch; the upstream reads are idempotent and the window is short.
type Cache struct {
	mu        sync.Mutex
	ttl       time.Duration
	clock     utils.Clock
	payload   *Catalog
	fetchedAt time.Time
}

func NewCache(ttl time.Duration, clock utils.Clock) *Cache {
	return &Cache{ttl: ttl, clock: clock}
}

// Get returns the cached payload if it is still fresh.
func (c *Cache) Get() (*Catalog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.payload == nil {
		return nil, false
	}
	if c.clock.Now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.payload, true
}

// Put replaces the cache entry wholesale and restarts the TTL window.
func (c *Cache) Put(payload *Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = payload
	c.fetchedAt = c.clock.Now()
}
