package cache

import (
	"golang.org/x/sync/singleflight"
)

// Cache is a bounded key-value memoization store.
//
// Entries never expire on their own: a cached value is assumed to be valid
// for the lifetime of the process. A store may still drop entries to respect
// its capacity, so callers must always be able to recompute a value.
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or was evicted.
	Get(key string) (V, error)

	// Set stores a value, evicting the least recently used entry if needed.
	Set(key string, value V)

	// Len returns the number of entries currently held.
	Len() int

	// Clear removes all entries from the cache.
	Clear()
}

// Loader computes a value on a cache miss.
type Loader[V any] func() (V, error)

// GetOrSet retrieves a value from the cache, or calls fn to compute it on a miss.
//
// Concurrent misses for the same key within one group share a single call
// to fn. A failed computation is not cached and its error is returned to
// every waiting caller.
func GetOrSet[V any](c Cache[V], group *singleflight.Group, key string, fn Loader[V]) (V, error) {
	if v, err := c.Get(key); err == nil {
		return v, nil
	}

	v, err, _ := group.Do(key, func() (any, error) {
		// Another caller may have filled the entry while we waited for the group.
		if v, err := c.Get(key); err == nil {
			return v, nil
		}
		val, err := fn()
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	val, _ := v.(V)
	return val, nil
}
