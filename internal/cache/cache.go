package cache

// Cache is the interface for lookup caches keyed by string.
type Cache[V any] interface {
	// Get retrieves a value from the cache.
	Get(key string) (V, bool)
	// Set adds or replaces a value. It reports whether an older entry was
	// evicted to make room.
	Set(key string, value V) bool
	// Len returns the number of cached values.
	Len() int
}
