package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/chessrules"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "chessrules",
	Short: "Standard chess rules: legality, check and checkmate",
	Long: `chessrules checks chess positions and moves against the standard rules.

Squares are written in algebraic form (e2, e4). Positions are given as FEN;
the halfmove and fullmove counters are optional and ignored.

Examples:
  # Classify a position
  chessrules status "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

  # Play a move from a position
  chessrules move "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -" e1g1

  # Play a game from the starting position
  chessrules play f2f3 e7e5 g2g4 d8h4

  # Replay a Lichess dump through the engine
  chessrules verify --pgn lichess_db_standard_rated_2013-01.pgn.zst`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger returns a development logger when --verbose is set and a
// production logger otherwise.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// newReferee creates a referee wired to a fresh logger. The caller must
// call the returned cleanup function.
func newReferee(opts ...chessrules.Option) (*chessrules.Referee, func(), error) {
	log, err := newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	ref, err := chessrules.New(append([]chessrules.Option{chessrules.WithLogger(log)}, opts...)...)
	if err != nil {
		log.Sync()
		return nil, nil, fmt.Errorf("creating referee: %w", err)
	}
	return ref, func() {
		ref.Close()
		log.Sync()
	}, nil
}

// parseMove accepts "e2e4", "e2-e4" or the two squares as separate words.
func parseMove(words ...string) (from, to chessrules.Square, err error) {
	s := strings.ReplaceAll(strings.Join(words, ""), "-", "")
	if len(s) != 4 {
		return from, to, fmt.Errorf("invalid move %q", strings.Join(words, " "))
	}
	if from, err = chessrules.ParseSquare(s[:2]); err != nil {
		return from, to, err
	}
	if to, err = chessrules.ParseSquare(s[2:]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// printBoard writes an ASCII diagram with rank 8 at the top.
func printBoard(b *chessrules.Board) {
	for row := 0; row < 8; row++ {
		fmt.Printf("%d ", 8-row)
		for col := 0; col < 8; col++ {
			fmt.Printf("%c ", b.At(chessrules.Sq(row, col)).Symbol())
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}

func printGame(g *chessrules.Game) {
	printBoard(g.Board())
	fmt.Printf("FEN:    %s\n", g.FEN())
	fmt.Printf("Turn:   %s\n", g.Turn())
	fmt.Printf("Status: %s\n", g.Status())
	if w := g.Winner(); w != chessrules.NoColor {
		fmt.Printf("Winner: %s\n", w)
	}
}
