package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/discochess/chessrules/fx/chessrulesfx"
	"github.com/discochess/chessrules/internal/pgn"
	"github.com/discochess/chessrules/internal/replay"
	"github.com/discochess/chessrules/internal/stats"
	"github.com/discochess/chessrules/internal/stats/prometheus"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Replay recorded games through the rules engine",
	Long: `Replay every game in a PGN archive through the rules engine and report
disagreements with the record.

For each game this checks that:
- Every recorded move is accepted for the side on move
- The piece placement after each move matches the record
- Games recorded as checkmate or stalemate end that way, and no others do

Archives ending in .zst or .gz are decompressed on the fly. Games with a
promotion to anything but a queen are skipped.`,
	RunE: runVerify,
}

var (
	pgnPath     string
	workers     int
	maxGames    int
	cacheSize   int
	showMetrics bool
)

func init() {
	verifyCmd.Flags().StringVar(&pgnPath, "pgn", "", "PGN archive to replay (.pgn, .pgn.gz, .pgn.zst)")
	verifyCmd.Flags().IntVarP(&workers, "workers", "w", 0, "games replayed concurrently (default GOMAXPROCS)")
	verifyCmd.Flags().IntVarP(&maxGames, "games", "n", 0, "maximum number of games to read (0 = all)")
	verifyCmd.Flags().IntVar(&cacheSize, "cache-size", 0, "status cache size (0 = default, negative disables)")
	verifyCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print collected metrics after the run")
	verifyCmd.MarkFlagRequired("pgn")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	start := time.Now()
	games, err := pgn.ReadFile(pgnPath, maxGames)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d games in %s\n", len(games), time.Since(start).Round(time.Millisecond))

	registry := prom.NewRegistry()
	options := []fx.Option{
		fx.NopLogger,
		fx.Supply(log),
		fx.Supply(chessrulesfx.Config{StatusCacheSize: cacheSize, Workers: workers}),
		chessrulesfx.Module,
	}
	if showMetrics {
		options = append(options, fx.Provide(func() stats.Collector {
			return prometheus.New(registry)
		}))
	}

	var replayer *replay.Replayer
	app := fx.New(append(options, fx.Populate(&replayer))...)
	if err := app.Err(); err != nil {
		return fmt.Errorf("wiring replayer: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("starting: %w", err)
	}
	defer app.Stop(context.Background())

	start = time.Now()
	rep, err := replayer.Run(ctx, games)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Replayed %d games (%d plies) in %s, skipped %d\n",
		rep.Games, rep.Plies, elapsed.Round(time.Millisecond), rep.Skipped)
	fmt.Printf("Checkmates: %d, stalemates: %d\n", rep.Checkmates, rep.Stalemates)

	if showMetrics {
		if err := printMetrics(registry); err != nil {
			return err
		}
	}

	if !rep.OK() {
		for _, m := range rep.Mismatches {
			fmt.Printf("  MISMATCH: %s\n", m)
		}
		return fmt.Errorf("%d games disagree with the engine", len(rep.Mismatches))
	}

	fmt.Println("All games verified successfully.")
	return nil
}

func printMetrics(g prom.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Println("Metrics:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Printf("  %-44s %.0f\n", mf.GetName(), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				fmt.Printf("  %-44s %.0f\n", mf.GetName(), m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				var mean float64
				if n := h.GetSampleCount(); n > 0 {
					mean = h.GetSampleSum() / float64(n)
				}
				fmt.Printf("  %-44s n=%d mean=%s\n", mf.GetName(), h.GetSampleCount(),
					time.Duration(mean*float64(time.Second)))
			}
		}
	}
	return nil
}
