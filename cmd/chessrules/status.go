package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/discochess/chessrules"
)

var statusCmd = &cobra.Command{
	Use:   "status [FEN]",
	Short: "Classify a position as normal, check, checkmate or stalemate",
	Long: `Report the status of the side to move in a FEN position.

With --moves, every legal move for that side is listed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

var (
	listMoves bool
)

func init() {
	statusCmd.Flags().BoolVar(&listMoves, "moves", false, "list legal moves for the side to move")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ref, cleanup, err := newReferee()
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := ref.GameFromFEN(args[0])
	if err != nil {
		return err
	}
	printGame(g)

	if listMoves {
		moves := legalMoves(g.Board(), g.Turn())
		fmt.Printf("Moves:  %d\n", len(moves))
		if len(moves) > 0 {
			fmt.Printf("        %s\n", strings.Join(moves, " "))
		}
	}
	return nil
}

// legalMoves lists every legal move for c in coordinate form.
func legalMoves(b *chessrules.Board, c chessrules.Color) []string {
	var moves []string
	for fr := 0; fr < 8; fr++ {
		for fc := 0; fc < 8; fc++ {
			from := chessrules.Sq(fr, fc)
			if b.At(from).Color != c {
				continue
			}
			for tr := 0; tr < 8; tr++ {
				for tc := 0; tc < 8; tc++ {
					if to := chessrules.Sq(tr, tc); b.IsLegal(from, to) {
						moves = append(moves, from.String()+to.String())
					}
				}
			}
		}
	}
	return moves
}
