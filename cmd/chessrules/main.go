// Package main provides the chessrules CLI for checking positions, playing
// moves and verifying the rules engine against recorded games.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
