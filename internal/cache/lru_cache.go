package cache

import (
	"container/list"
	"sync"
)

var _ Cache[int] = (*LRUCache[int])(nil)

// lruEntry is the value held by each list element.
type lruEntry[V any] struct {
	key   string
	value V
}

// LRUCache is a fixed-size cache with an LRU eviction policy.
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex

	// list tracks access order.
	// Front is Most Recently Used (MRU), Back is Least Recently Used (LRU).
	list *list.List

	// cache maps the key to the list element holding its lruEntry.
	cache map[string]*list.Element
}

// NewLRUCache creates a new LRU cache holding at most capacity values.
// A capacity of zero or less falls back to 100.
func NewLRUCache[V any](capacity int) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 100
	}

	return &LRUCache[V]{
		capacity: capacity,
		list:     list.New(),
		cache:    make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a value and promotes it to Most Recently Used.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	// Promotion reorders the list, so reads take the write lock too.
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.cache[key]; ok {
		c.list.MoveToFront(element)
		return element.Value.(*lruEntry[V]).value, true
	}

	var zero V
	return zero, false
}

func (c *LRUCache[V]) Set(key string, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.cache[key]; ok {
		element.Value.(*lruEntry[V]).value = value
		c.list.MoveToFront(element)
		return false
	}

	element := c.list.PushFront(&lruEntry[V]{key: key, value: value})
	c.cache[key] = element

	if c.list.Len() > c.capacity {
		c.evictOldest()
		return true
	}

	return false
}

func (c *LRUCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.list.Len()
}

// evictOldest removes the least recently used value.
func (c *LRUCache[V]) evictOldest() {
	tail := c.list.Back()
	if tail == nil {
		return
	}

	c.list.Remove(tail)
	delete(c.cache, tail.Value.(*lruEntry[V]).key)
}
