package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(id int64) *models.DiffResult {
	return &models.DiffResult{
		LeftVersion:  &models.Version{ID: id},
		RightVersion: &models.Version{ID: id + 1},
		ComputedAt:   time.Now(),
	}
}

func TestKey_OrderIndependent(t *testing.T) {
	opts := models.CompareOptions{Granularity: models.GranularityLine}

	assert.Equal(t, Key(1, 2, opts), Key(2, 1, opts))
	assert.Equal(t, Key(42, 7, opts), Key(7, 42, opts))
}

func TestKey_DependsOnOptions(t *testing.T) {
	lineKey := Key(1, 2, models.CompareOptions{Granularity: models.GranularityLine})
	rawKey := Key(1, 2, models.CompareOptions{Granularity: models.GranularityRaw})

	assert.NotEqual(t, lineKey, rawKey)
}

func TestKey_NormalizesDefaults(t *testing.T) {
	// Empty options and their explicit defaults must share an entry.
	implicit := Key(1, 2, models.CompareOptions{})
	explicit := Key(1, 2, models.CompareOptions{Granularity: models.GranularityLine, Algorithm: models.DefaultAlgorithmLabel})

	assert.Equal(t, implicit, explicit)
}

func TestDiffCache_GetMiss(t *testing.T) {
	c := NewDiffCache(config.NewDefaultCacheConfig())

	result, ok := c.Get("absent")

	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestDiffCache_PutGet(t *testing.T) {
	c := NewDiffCache(config.NewDefaultCacheConfig())
	stored := testResult(1)

	c.Put("k", stored)
	loaded, ok := c.Get("k")

	require.True(t, ok)
	assert.Same(t, stored, loaded)
}

func TestDiffCache_CapacityEvictsOldestInserted(t *testing.T) {
	c := NewDiffCache(config.CacheConfig{MaxEntries: 3, TTLSeconds: 3600})

	for i := 0; i < 4; i++ {
		c.Put(fmt.Sprintf("key-%d", i), testResult(int64(i)))
	}

	entries, _, _ := c.Stats()
	assert.Equal(t, 3, entries)

	_, ok := c.Get("key-0")
	assert.False(t, ok, "earliest-inserted key must be evicted")
	for i := 1; i < 4; i++ {
		_, ok := c.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, ok)
	}
}

func TestDiffCache_EvictionIsNotLRU(t *testing.T) {
	c := NewDiffCache(config.CacheConfig{MaxEntries: 2, TTLSeconds: 3600})

	c.Put("first", testResult(1))
	c.Put("second", testResult(2))

	// Touching "first" must not protect it: eviction follows insertion order.
	_, ok := c.Get("first")
	require.True(t, ok)

	c.Put("third", testResult(3))

	_, ok = c.Get("first")
	assert.False(t, ok)
	_, ok = c.Get("second")
	assert.True(t, ok)
}

func TestDiffCache_TTLExpiryOnRead(t *testing.T) {
	c := NewDiffCache(config.CacheConfig{MaxEntries: 10, TTLSeconds: 60})

	current := time.Now()
	c.now = func() time.Time { return current }

	c.Put("k", testResult(1))

	current = current.Add(61 * time.Second)
	_, ok := c.Get("k")
	assert.False(t, ok, "entry past TTL must be treated as absent")

	// A fresh computation can be stored in its place.
	replacement := testResult(2)
	c.Put("k", replacement)
	loaded, ok := c.Get("k")
	require.True(t, ok)
	assert.Same(t, replacement, loaded)
}

func TestDiffCache_OverwriteSameKey(t *testing.T) {
	c := NewDiffCache(config.CacheConfig{MaxEntries: 2, TTLSeconds: 3600})

	c.Put("k", testResult(1))
	latest := testResult(2)
	c.Put("k", latest)

	entries, _, _ := c.Stats()
	assert.Equal(t, 1, entries)

	loaded, ok := c.Get("k")
	require.True(t, ok)
	assert.Same(t, latest, loaded)
}
