// Package memory implements an in-memory cache backend.
package memory

import (
	"sync/atomic"

	"github.com/discochess/chessrules/internal/cache"
	"github.com/discochess/chessrules/internal/cache/cachestrategy"
	"github.com/discochess/chessrules/internal/stats"
)

// Compile-time check that Backend implements cache.Backend.
var _ cache.Backend[string, int] = (*Backend[string, int])(nil)

// Backend is an in-memory cache backend. It is as safe for concurrent use
// as its strategy.
type Backend[K comparable, V any] struct {
	strategy  cachestrategy.Strategy[K, V]
	collector stats.Collector

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a new memory backend with the given eviction strategy.
// The collector is optional; if nil, a no-op collector is used.
func New[K comparable, V any](strategy cachestrategy.Strategy[K, V], collector stats.Collector) *Backend[K, V] {
	if collector == nil {
		collector = stats.NewNoop()
	}
	return &Backend[K, V]{
		strategy:  strategy,
		collector: collector,
	}
}

// Get retrieves a value from the cache.
func (b *Backend[K, V]) Get(key K) (V, bool) {
	val, ok := b.strategy.Get(key)
	if ok {
		b.hits.Add(1)
		b.collector.IncCounter(stats.MetricCacheHits, 1)
		return val, true
	}
	b.misses.Add(1)
	b.collector.IncCounter(stats.MetricCacheMisses, 1)
	var zero V
	return zero, false
}

// Set stores a value in the cache.
func (b *Backend[K, V]) Set(key K, value V) {
	b.strategy.Add(key, value)
	b.collector.SetGauge(stats.MetricCacheSize, int64(b.strategy.Len()))
}

// Stats returns current cache statistics.
func (b *Backend[K, V]) Stats() cache.Stats {
	return cache.Stats{
		Hits:   b.hits.Load(),
		Misses: b.misses.Load(),
		Size:   b.strategy.Len(),
	}
}
