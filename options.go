package chessrules

import (
	"go.uber.org/zap"

	"github.com/discochess/chessrules/internal/stats"
)

// Option configures a Referee.
type Option interface {
	apply(*options)
}

// options holds the referee configuration.
type options struct {
	statusCacheSize int
	stats           stats.Collector
	logger          *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		statusCacheSize: 4096,
		stats:           stats.NewNoop(),
		logger:          zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithStatusCacheSize sets how many position statuses are memoized.
// Zero disables the cache. Default is 4096.
func WithStatusCacheSize(n int) Option {
	return optionFunc(func(o *options) {
		o.statusCacheSize = n
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		if c != nil {
			o.stats = c
		}
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}
