// Package cache holds computed diff results for the TTL window, bounded by
// an insertion-order eviction policy.
package cache

import (
	"sync"
	"time"

	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/aleister1102/revisiondiff/internal/models"
)

type entry struct {
	result     *models.DiffResult
	insertedAt time.Time
}

// DiffCache is a bounded in-memory store of computed diff results.
// Expired entries are evicted lazily on the read that observes the TTL
// breach; at capacity, the oldest inserted entry is evicted on write.
// Eviction is deliberately insertion-ordered, not LRU.
type DiffCache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	order      []string
	ttl        time.Duration
	maxEntries int
	hits       uint64
	misses     uint64

	// now is swappable for TTL tests.
	now func() time.Time
}

// NewDiffCache creates a cache from configuration.
func NewDiffCache(cfg config.CacheConfig) *DiffCache {
	return &DiffCache{
		entries:    make(map[string]*entry),
		ttl:        time.Duration(cfg.TTLSeconds) * time.Second,
		maxEntries: cfg.MaxEntries,
		now:        time.Now,
	}
}

// Get returns the cached result for key, or false if the key is absent or
// its entry has expired. An expired entry is removed on observation.
func (c *DiffCache) Get(key string) (*models.DiffResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}

	if c.now().Sub(ent.insertedAt) > c.ttl {
		delete(c.entries, key)
		c.misses++
		return nil, false
	}

	c.hits++
	return ent.result, true
}

// Put stores a result under key. Writing an existing key replaces the value
// (last write wins) and resets its TTL without changing its insertion slot.
// A new key at capacity first evicts the oldest entry still present.
func (c *DiffCache) Put(key string, result *models.DiffResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.entries[key]; ok {
		ent.result = result
		ent.insertedAt = c.now()
		return
	}

	if len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	c.entries[key] = &entry{result: result, insertedAt: c.now()}
	c.order = append(c.order, key)
}

// evictOldest removes the earliest-inserted key still present. Order slots
// of keys already removed by TTL eviction are skipped.
func (c *DiffCache) evictOldest() {
	for len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		if _, ok := c.entries[oldest]; ok {
			delete(c.entries, oldest)
			return
		}
	}
}

// Stats reports entry count and hit/miss counters.
func (c *DiffCache) Stats() (entries int, hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries), c.hits, c.misses
}
