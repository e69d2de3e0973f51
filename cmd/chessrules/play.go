package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discochess/chessrules"
)

var playCmd = &cobra.Command{
	Use:   "play [MOVES...]",
	Short: "Play a sequence of moves",
	Long: `Play moves in coordinate form, alternating sides, starting from the
standard position or from --fen. Stops at the first illegal move.

Example:
  chessrules play e2e4 e7e5 g1f3 b8c6 f1c4 g8f6`,
	RunE: runPlay,
}

var (
	playFEN string
	quiet   bool
)

func init() {
	playCmd.Flags().StringVar(&playFEN, "fen", chessrules.StartFEN, "starting position")
	playCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the final position")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ref, cleanup, err := newReferee()
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := ref.GameFromFEN(playFEN)
	if err != nil {
		return err
	}

	for i, m := range args {
		from, to, err := parseMove(m)
		if err != nil {
			return err
		}
		mover := g.Turn()
		status, err := g.Move(from, to)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if !quiet {
			fmt.Printf("%3d. %-5s %s -> %s\n", i+1, mover, m, status)
		}
	}

	printGame(g)
	return nil
}
