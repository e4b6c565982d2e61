// Package heightcache memoizes computed heights by exact world coordinate.
package heightcache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the entry count at which the cache is dropped wholesale.
const DefaultCapacity = 100000

// Cache is a bounded coordinate -> height map safe for concurrent use.
// Reaching capacity clears every entry before the next insert; there is no
// selective eviction.
type Cache struct {
	mu       sync.RWMutex
	entries  map[[2]float32]float32
	capacity int
	enabled  atomic.Bool
	clears   atomic.Int64
	gen      uint64 // bumped by Clear; guarded by mu
}

// New returns an enabled cache. A non-positive capacity uses DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{
		entries:  make(map[[2]float32]float32),
		capacity: capacity,
	}
	c.enabled.Store(true)
	return c
}

// GetOrInsert returns the cached height for (x,y), calling compute on a miss.
// compute runs outside the lock; racing misses on one key may both compute
// and the last insert wins. A result is not stored if the cache was cleared
// or disabled while compute ran.
func (c *Cache) GetOrInsert(x, y float32, compute func() float32) float32 {
	if !c.enabled.Load() {
		return compute()
	}
	key := [2]float32{x, y}

	c.mu.RLock()
	h, ok := c.entries[key]
	gen := c.gen
	c.mu.RUnlock()
	if ok {
		return h
	}

	h = compute()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || !c.enabled.Load() {
		return h
	}
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		clear(c.entries)
		c.clears.Add(1)
	}
	c.entries[key] = h
	return h
}

// SetEnabled toggles caching. Disabling also drops every entry so that a
// later re-enable never serves heights computed under older settings.
func (c *Cache) SetEnabled(on bool) {
	if c.enabled.Swap(on) && !on {
		c.Clear()
	}
}

// Enabled reports whether lookups consult the cache.
func (c *Cache) Enabled() bool { return c.enabled.Load() }

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	clear(c.entries)
	c.gen++
	c.mu.Unlock()
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clears returns how many times the cache overflowed and was dropped.
func (c *Cache) Clears() int64 { return c.clears.Load() }
