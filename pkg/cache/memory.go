package cache

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value V
	key   string
}

// Memory is an in-memory memoization store with optional LRU bounding.
//
// It uses a hash map for O(1) lookups and a doubly-linked list for O(1)
// LRU ordering. The most recently accessed items are at the front of the
// list; the least recently used are at the back.
type Memory[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *memoryOptions
	group    singleflight.Group
	mu       sync.Mutex
}

// NewMemory creates a new in-memory cache.
//
// Example:
//
//	c := cache.NewMemory[*Template](cache.WithMaxEntries(10000))
//	tpl, err := c.GetOrSet(raw, func() (*Template, error) {
//	    return compile(raw)
//	})
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Memory[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
	}
}

// Get retrieves a value by key.
// Accessing a key marks it as recently used for LRU purposes.
func (m *Memory[V]) Get(key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	m.eviction.MoveToFront(elem)

	return elem.Value.(*entry[V]).value, nil
}

// Set stores a value. Overwriting an existing key is allowed: racing writers
// compute equal values, so the last writer wins without harm.
func (m *Memory[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		m.eviction.MoveToFront(elem)
		return
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.eviction.Back(); oldest != nil {
			m.removeElement(oldest)
		}
	}

	m.items[key] = m.eviction.PushFront(&entry[V]{key: key, value: value})
}

// Len returns the number of cached entries.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Clear removes all entries from the cache.
func (m *Memory[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]*list.Element)
	m.eviction.Init()
}

// GetOrSet returns the cached value for key or computes it with fn.
// Concurrent misses on the same key share one computation.
func (m *Memory[V]) GetOrSet(key string, fn Loader[V]) (V, error) {
	return GetOrSet[V](m, &m.group, key, fn)
}

// removeElement removes a specific element. Caller must hold the mutex.
func (m *Memory[V]) removeElement(elem *list.Element) {
	m.eviction.Remove(elem)
	delete(m.items, elem.Value.(*entry[V]).key)
}

var _ Cache[any] = (*Memory[any])(nil)
