// Package chessrules is a rules engine for standard chess. It keeps board
// state, decides whether a proposed move is legal, applies legal moves and
// reports check, checkmate and stalemate.
//
// The engine itself is the Board type: a plain value with no notion of whose
// turn it is. Game adds turn alternation and end-of-game detection on top of
// a Referee, which carries logging, metrics and a status cache.
//
// Example usage:
//
//	ref, err := chessrules.New(chessrules.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ref.Close()
//
//	game := ref.NewGame()
//	status, err := game.Move(chessrules.MustParseSquare("e2"), chessrules.MustParseSquare("e4"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(status, game.FEN())
package chessrules

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/chessrules/internal/cache"
	"github.com/discochess/chessrules/internal/cache/cachestrategy/lru"
	"github.com/discochess/chessrules/internal/cache/memory"
	"github.com/discochess/chessrules/internal/stats"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrClosed indicates the referee has been closed.
	ErrClosed = errors.New("chessrules: referee closed")

	// ErrInvalidCacheSize indicates a negative status cache size.
	ErrInvalidCacheSize = errors.New("chessrules: invalid status cache size")
)

// Referee creates games and evaluates positions.
// A Referee is safe for concurrent use by multiple goroutines; the games it
// creates are not.
type Referee struct {
	statuses cache.Backend[string, Status]
	stats    stats.Collector
	logger   *zap.Logger
	closed   atomic.Bool
}

// New creates a new Referee with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Referee, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	r := &Referee{
		stats:  cfg.stats,
		logger: cfg.logger,
	}

	switch {
	case cfg.statusCacheSize < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, cfg.statusCacheSize)
	case cfg.statusCacheSize > 0:
		strategy, err := lru.New[string, Status](cfg.statusCacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating status cache: %w", err)
		}
		r.statuses = memory.New[string, Status](strategy, cfg.stats)
	}

	r.logger.Debug("referee initialized",
		zap.Int("statusCacheSize", cfg.statusCacheSize),
	)

	return r, nil
}

// Status classifies b for color c, consulting the status cache first.
func (r *Referee) Status(b *Board, c Color) Status {
	start := time.Now()
	defer func() {
		r.stats.ObserveHistogram(stats.MetricStatusSeconds, time.Since(start).Seconds())
	}()

	if r.statuses == nil {
		return b.Status(c)
	}

	key := b.key() + " " + c.String()
	if s, ok := r.statuses.Get(key); ok {
		return s
	}
	s := b.Status(c)
	r.statuses.Set(key, s)
	return s
}

// CacheStats returns status cache statistics. All fields are zero when the
// cache is disabled.
func (r *Referee) CacheStats() cache.Stats {
	if r.statuses == nil {
		return cache.Stats{}
	}
	return r.statuses.Stats()
}

// NewGame starts a game from the standard starting position.
func (r *Referee) NewGame() *Game {
	return r.newGame(NewStandardBoard(), Light)
}

// GameFromFEN starts a game from an arbitrary position.
func (r *Referee) GameFromFEN(s string) (*Game, error) {
	b, side, err := FromFEN(s)
	if err != nil {
		return nil, err
	}
	return r.newGame(b, side), nil
}

// Close marks the referee as closed. Games created by it stop accepting moves.
func (r *Referee) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	return nil
}

func (r *Referee) newGame(b *Board, turn Color) *Game {
	g := &Game{
		referee: r,
		board:   b,
		turn:    turn,
	}
	g.status = r.Status(b, turn)
	return g
}
