// Package replay plays recorded games through the rules engine and reports
// every point where the engine disagrees with the record.
package replay

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/discochess/chessrules"
	"github.com/discochess/chessrules/internal/pgn"
	"github.com/discochess/chessrules/internal/stats"
)

// Mismatch is a disagreement between the engine and a recorded game.
type Mismatch struct {
	Game   int
	Ply    int
	Move   string
	Reason string
}

func (m Mismatch) String() string {
	if m.Move == "" {
		return fmt.Sprintf("game %d: %s", m.Game, m.Reason)
	}
	return fmt.Sprintf("game %d ply %d (%s): %s", m.Game, m.Ply, m.Move, m.Reason)
}

// Report summarizes a replay run.
type Report struct {
	Games      int
	Skipped    int
	Plies      int
	Checkmates int
	Stalemates int
	Mismatches []Mismatch
}

// OK reports whether every replayed game matched its record.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Replayer replays games concurrently, one Game per recorded game.
type Replayer struct {
	referee *chessrules.Referee
	workers int
	stats   stats.Collector
	logger  *zap.Logger
}

// Option configures a Replayer.
type Option func(*Replayer)

// WithWorkers sets how many games are replayed at once.
// Default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(r *Replayer) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithStats sets the stats collector.
func WithStats(c stats.Collector) Option {
	return func(r *Replayer) {
		if c != nil {
			r.stats = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Replayer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Replayer that judges moves with referee.
func New(referee *chessrules.Referee, opts ...Option) *Replayer {
	r := &Replayer{
		referee: referee,
		workers: runtime.GOMAXPROCS(0),
		stats:   stats.NewNoop(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type outcome struct {
	skipped    bool
	plies      int
	ending     chessrules.Status
	mismatches []Mismatch
}

// Run replays games and returns a report. It stops early only when ctx is
// cancelled; mismatches are collected, not returned as errors.
func (p *Replayer) Run(ctx context.Context, games []pgn.Game) (Report, error) {
	results := make([]outcome, len(games))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	var mu sync.Mutex
	done := 0
	for i := range games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.replay(&games[i])

			mu.Lock()
			done++
			n := done
			mu.Unlock()
			if n%1000 == 0 {
				p.logger.Info("replay progress", zap.Int("games", n), zap.Int("total", len(games)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("replaying games: %w", err)
	}

	var rep Report
	for _, res := range results {
		if res.skipped {
			rep.Skipped++
			continue
		}
		rep.Games++
		rep.Plies += res.plies
		switch res.ending {
		case chessrules.StatusCheckmate:
			rep.Checkmates++
		case chessrules.StatusStalemate:
			rep.Stalemates++
		}
		rep.Mismatches = append(rep.Mismatches, res.mismatches...)
	}

	p.logger.Info("replay finished",
		zap.Int("games", rep.Games),
		zap.Int("skipped", rep.Skipped),
		zap.Int("plies", rep.Plies),
		zap.Int("mismatches", len(rep.Mismatches)),
	)
	return rep, nil
}

func (p *Replayer) replay(rec *pgn.Game) outcome {
	if rec.Underpromotes() {
		p.logger.Debug("skipping game with underpromotion", zap.Int("game", rec.Index))
		return outcome{skipped: true}
	}

	var res outcome
	mismatch := func(ply int, m pgn.Move, format string, args ...any) {
		res.mismatches = append(res.mismatches, Mismatch{
			Game:   rec.Index,
			Ply:    ply,
			Move:   m.String(),
			Reason: fmt.Sprintf(format, args...),
		})
		p.stats.IncCounter(stats.MetricReplayErrors, 1)
	}

	game := p.referee.NewGame()
	for i, m := range rec.Moves {
		from, err := chessrules.ParseSquare(m.From)
		if err != nil {
			mismatch(i+1, m, "%v", err)
			break
		}
		to, err := chessrules.ParseSquare(m.To)
		if err != nil {
			mismatch(i+1, m, "%v", err)
			break
		}
		if _, err := game.Move(from, to); err != nil {
			mismatch(i+1, m, "rejected: %v", err)
			break
		}
		res.plies++

		if i+1 < len(rec.Placements) {
			got := placement(game.FEN())
			if want := rec.Placements[i+1]; got != want {
				mismatch(i+1, m, "placement %s, want %s", got, want)
				break
			}
		}
	}

	res.ending = game.Status()
	if len(res.mismatches) == 0 {
		want := expected(rec.Ending)
		if got := res.ending; got.Terminal() != want.Terminal() || (want.Terminal() && got != want) {
			res.mismatches = append(res.mismatches, Mismatch{
				Game:   rec.Index,
				Reason: fmt.Sprintf("final status %s, recorded %s", got, rec.Ending),
			})
			p.stats.IncCounter(stats.MetricReplayErrors, 1)
		}
	}

	p.stats.IncCounter(stats.MetricGamesReplayed, 1)
	return res
}

func expected(e pgn.Ending) chessrules.Status {
	switch e {
	case pgn.Checkmate:
		return chessrules.StatusCheckmate
	case pgn.Stalemate:
		return chessrules.StatusStalemate
	default:
		return chessrules.StatusNormal
	}
}

func placement(fen string) string {
	field, _, _ := strings.Cut(fen, " ")
	return field
}
