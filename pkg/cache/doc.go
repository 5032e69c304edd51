// Package cache provides a bounded, concurrency-safe memoization store.
//
// The message rendering engine keeps several process-lifetime caches:
// compiled templates keyed by raw template text, and plural rules, number
// formatters and date formatters keyed by locale plus an options signature.
// All of them are pure memoization: dropping an entry never affects
// correctness, it only costs a recomputation. This package provides the
// store those caches are built on.
//
// # Interface
//
// The [Cache] interface is generic over value type V:
//
//   - Get(key) (V, error) — retrieve a value, [ErrNotFound] on a miss
//   - Set(key, value) — store a value
//   - Len() int — number of entries
//   - Clear() — remove all entries
//
// # In-Memory Cache
//
// [NewMemory] uses a hash map for O(1) lookups and a doubly-linked list for
// O(1) LRU eviction. Without [WithMaxEntries] the cache grows without bound,
// which is fine for template sets known at build time:
//
//	c := cache.NewMemory[*Compiled](cache.WithMaxEntries(10000))
//	c.Set("greeting", compiled)
//	val, err := c.Get("greeting")
//
// # Miss Deduplication
//
// [Memory.GetOrSet] and the standalone [GetOrSet] function use
// golang.org/x/sync/singleflight so that concurrent misses for the same key
// compute the value once:
//
//	tpl, err := c.GetOrSet(raw, func() (*Compiled, error) {
//	    return compile(raw)
//	})
//
// Errors from the loader are returned and never cached.
package cache
