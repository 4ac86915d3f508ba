package dictionary

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// LoadFunc produces the Bucket for a cache miss.
type LoadFunc func(ctx context.Context) (*Bucket, error)

// CacheStats is a point-in-time view of cache activity.
type CacheStats struct {
	Partitions  int   `json:"partitions"`
	Words       int   `json:"words"`
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Loads       int64 `json:"loads"`
	FailedLoads int64 `json:"failed_loads"`
}

// Cache memoizes Buckets by PartitionKey for the lifetime of the process.
// Each key is written at most once; concurrent misses for the same key
// share a single load. Failed loads are not cached.
type Cache struct {
	mu      sync.RWMutex
	buckets map[PartitionKey]*Bucket
	group   singleflight.Group

	hits        atomic.Int64
	misses      atomic.Int64
	loads       atomic.Int64
	failedLoads atomic.Int64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		buckets: make(map[PartitionKey]*Bucket),
	}
}

// Get returns the cached bucket for key without loading it.
func (c *Cache) Get(key PartitionKey) (*Bucket, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.buckets[key]
	return b, ok
}

// GetOrLoad returns the cached bucket for key, calling load on a miss.
func (c *Cache) GetOrLoad(ctx context.Context, key PartitionKey, load LoadFunc) (*Bucket, error) {
	if b, ok := c.Get(key); ok {
		c.hits.Add(1)
		return b, nil
	}
	c.misses.Add(1)

	v, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		// Another caller may have stored the bucket between our miss and
		// acquiring the flight.
		if b, ok := c.Get(key); ok {
			return b, nil
		}

		c.loads.Add(1)
		b, err := load(ctx)
		if err != nil {
			c.failedLoads.Add(1)
			return nil, err
		}
		if b == nil {
			b = EmptyBucket()
		}

		c.mu.Lock()
		if existing, ok := c.buckets[key]; ok {
			b = existing
		} else {
			c.buckets[key] = b
		}
		c.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Bucket), nil
}

// Keys returns the cached partition keys in a stable order.
func (c *Cache) Keys() []PartitionKey {
	c.mu.RLock()
	keys := make([]PartitionKey, 0, len(c.buckets))
	for k := range c.buckets {
		keys = append(keys, k)
	}
	c.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Language != keys[j].Language {
			return keys[i].Language < keys[j].Language
		}
		if keys[i].Length != keys[j].Length {
			return keys[i].Length < keys[j].Length
		}
		return keys[i].Letter < keys[j].Letter
	})
	return keys
}

// Len returns the number of cached partitions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.buckets)
}

// Stats returns the cache counters and sizes.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	words := 0
	for _, b := range c.buckets {
		words += b.Len()
	}
	partitions := len(c.buckets)
	c.mu.RUnlock()

	return CacheStats{
		Partitions:  partitions,
		Words:       words,
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Loads:       c.loads.Load(),
		FailedLoads: c.failedLoads.Load(),
	}
}
