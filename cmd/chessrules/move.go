package main

import (
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move [FEN] [FROM] [TO]",
	Short: "Apply one move to a position",
	Long: `Apply a move for the side to move and print the resulting position.

The move may be written as two squares ("e2 e4") or as one word ("e2e4").
Promotions always produce a queen.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	from, to, err := parseMove(args[1:]...)
	if err != nil {
		return err
	}

	ref, cleanup, err := newReferee()
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := ref.GameFromFEN(args[0])
	if err != nil {
		return err
	}
	if _, err := g.Move(from, to); err != nil {
		return err
	}

	printGame(g)
	return nil
}
