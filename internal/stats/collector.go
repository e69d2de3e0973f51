// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Referee metrics.
	MetricMovesAttempted = "chessrules_moves_attempted_total"
	MetricMovesApplied   = "chessrules_moves_applied_total"
	MetricMovesRejected  = "chessrules_moves_rejected_total"
	MetricChecks         = "chessrules_checks_total"
	MetricGamesFinished  = "chessrules_games_finished_total"
	MetricStatusSeconds  = "chessrules_status_seconds"

	// Status cache metrics.
	MetricCacheHits   = "chessrules_status_cache_hits_total"
	MetricCacheMisses = "chessrules_status_cache_misses_total"
	MetricCacheSize   = "chessrules_status_cache_size"

	// Replay metrics.
	MetricGamesReplayed = "chessrules_games_replayed_total"
	MetricReplayErrors  = "chessrules_replay_mismatches_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
