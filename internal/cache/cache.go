// Package cache memoizes position queries that are expensive to recompute,
// such as checkmate and stalemate detection.
package cache

// Backend defines the interface for cache storage backends.
// Implementations handle storage and eviction strategy (LRU).
type Backend[K comparable, V any] interface {
	// Get retrieves a cached value. Returns the zero value and false if not found.
	Get(key K) (V, bool)

	// Set stores a value in the cache.
	Set(key K, value V)

	// Stats returns cache statistics.
	Stats() Stats
}

// Stats contains cache statistics.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int // Current number of entries
}

// HitRate returns the cache hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}
