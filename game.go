package chessrules

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/discochess/chessrules/internal/stats"
)

var (
	// ErrGameOver indicates a move after checkmate or stalemate.
	ErrGameOver = errors.New("chessrules: game is over")

	// ErrNoPiece indicates the origin square is empty or off the board.
	ErrNoPiece = errors.New("chessrules: no piece on origin square")

	// ErrWrongTurn indicates the piece belongs to the side not on move.
	ErrWrongTurn = errors.New("chessrules: not this side's turn")

	// ErrIllegalMove indicates the engine rejected the move.
	ErrIllegalMove = errors.New("chessrules: illegal move")
)

// Game alternates turns over a Board and stops once the game is decided.
// A Game must not be used from multiple goroutines at once.
type Game struct {
	referee *Referee
	board   *Board
	turn    Color
	status  Status
	plies   int
}

// Move plays the piece on from to to for the side on move and returns the
// status of the side that moves next.
func (g *Game) Move(from, to Square) (Status, error) {
	r := g.referee
	if r.closed.Load() {
		return g.status, ErrClosed
	}
	if g.status.Terminal() {
		return g.status, ErrGameOver
	}

	r.stats.IncCounter(stats.MetricMovesAttempted, 1)

	piece := g.board.At(from)
	switch {
	case piece.IsEmpty():
		r.stats.IncCounter(stats.MetricMovesRejected, 1)
		return g.status, fmt.Errorf("%w: %s", ErrNoPiece, from)
	case piece.Color != g.turn:
		r.stats.IncCounter(stats.MetricMovesRejected, 1)
		return g.status, fmt.Errorf("%w: %s piece on %s, %s to move", ErrWrongTurn, piece.Color, from, g.turn)
	}

	if !g.board.MovePiece(from, to) {
		r.stats.IncCounter(stats.MetricMovesRejected, 1)
		r.logger.Debug("move rejected",
			zap.Stringer("piece", piece),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
		return g.status, fmt.Errorf("%w: %s %s-%s", ErrIllegalMove, piece.Kind, from, to)
	}

	g.plies++
	g.turn = g.turn.Opponent()
	g.status = r.Status(g.board, g.turn)

	r.stats.IncCounter(stats.MetricMovesApplied, 1)
	if g.status == StatusCheck || g.status == StatusCheckmate {
		r.stats.IncCounter(stats.MetricChecks, 1)
	}
	if g.status.Terminal() {
		r.stats.IncCounter(stats.MetricGamesFinished, 1)
		r.logger.Info("game finished",
			zap.Stringer("status", g.status),
			zap.Stringer("winner", g.Winner()),
			zap.Int("plies", g.plies),
		)
	}

	r.logger.Debug("move applied",
		zap.Stringer("piece", piece),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Stringer("next", g.turn),
		zap.Stringer("status", g.status),
	)

	return g.status, nil
}

// Board returns a copy of the current position.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Turn returns the side on move.
func (g *Game) Turn() Color {
	return g.turn
}

// Status returns the status of the side on move.
func (g *Game) Status() Status {
	return g.status
}

// Plies returns the number of moves played in this game.
func (g *Game) Plies() int {
	return g.plies
}

// Winner returns the side that delivered checkmate, or NoColor.
func (g *Game) Winner() Color {
	if g.status != StatusCheckmate {
		return NoColor
	}
	return g.turn.Opponent()
}

// FEN encodes the current position with the side on move.
func (g *Game) FEN() string {
	return g.board.FEN(g.turn)
}
