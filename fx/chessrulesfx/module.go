// Package chessrulesfx provides an fx module for a chess referee and the
// game replayer built on it.
package chessrulesfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/chessrules"
	"github.com/discochess/chessrules/internal/replay"
	"github.com/discochess/chessrules/internal/stats"
	"github.com/discochess/chessrules/internal/stats/logger"
)

// Config holds configuration for the referee.
type Config struct {
	// StatusCacheSize is the number of position statuses to memoize.
	// Zero uses the library default; a negative value disables the cache.
	StatusCacheSize int

	// Workers is the number of games replayed concurrently.
	// Zero uses GOMAXPROCS.
	Workers int
}

// Module provides a *chessrules.Referee and a *replay.Replayer.
// Requires a *zap.Logger to be provided. Config and stats.Collector are
// optional; without a collector, metrics are logged at debug level.
var Module = fx.Module("chessrules",
	fx.Provide(
		newReferee,
		newReplayer,
	),
)

// Params holds dependencies for creating the referee.
type Params struct {
	fx.In

	Config    Config          `optional:"true"`
	Collector stats.Collector `optional:"true"`
	Logger    *zap.Logger
	Lifecycle fx.Lifecycle
}

// Result holds the provided referee.
type Result struct {
	fx.Out

	Referee *chessrules.Referee
}

func newReferee(p Params) (Result, error) {
	collector := p.Collector
	if collector == nil {
		collector = logger.New(p.Logger.Named("chessrules.stats"))
	}

	opts := []chessrules.Option{
		chessrules.WithStats(collector),
		chessrules.WithLogger(p.Logger.Named("chessrules")),
	}
	switch {
	case p.Config.StatusCacheSize > 0:
		opts = append(opts, chessrules.WithStatusCacheSize(p.Config.StatusCacheSize))
	case p.Config.StatusCacheSize < 0:
		opts = append(opts, chessrules.WithStatusCacheSize(0))
	}

	ref, err := chessrules.New(opts...)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return ref.Close()
		},
	})

	return Result{Referee: ref}, nil
}

// ReplayerParams holds dependencies for creating the replayer.
type ReplayerParams struct {
	fx.In

	Config    Config          `optional:"true"`
	Collector stats.Collector `optional:"true"`
	Referee   *chessrules.Referee
	Logger    *zap.Logger
}

func newReplayer(p ReplayerParams) *replay.Replayer {
	return replay.New(p.Referee,
		replay.WithWorkers(p.Config.Workers),
		replay.WithStats(p.Collector),
		replay.WithLogger(p.Logger.Named("replay")),
	)
}
