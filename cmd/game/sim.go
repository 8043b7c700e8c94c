package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/telemetry"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the demo game headless",
	Long: `Run the seeded demo game without a window and print a summary.
The same seed and definitions always give the same summary.

Examples:
  game sim --seed 42
  game sim --seed 42 --ticks 100000 --difficulty hard`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", config.SimDefaultTicks, "Simulation ticks to run (stops early on game over)")
}

func runSim(cmd *cobra.Command, args []string) {
	lib, err := loadLibrary()
	if err != nil {
		fail("cannot load definitions", err)
	}
	demo, err := app.NewDemo(lib, defs.Difficulty(flagDifficulty), flagSeed)
	if err != nil {
		fail("cannot start demo", err)
	}

	sink := telemetry.NewSink(config.TelemetryFlushSecs * time.Second)
	listener := telemetry.NewListener(sink)
	for _, t := range listener.EventTypes() {
		demo.Game.Subscribe(t, listener)
	}

	started := time.Now()
	summary := demo.Run(flagTicks)
	sink.Frame(int(summary.Ticks))
	sink.Close()

	logger.Logger.Info("simulation finished",
		"seed", summary.Seed,
		"ticks", summary.Ticks,
		"elapsed", time.Since(started).Round(time.Millisecond),
		"dropped", sink.Dropped())
	printSummary(summary)
}

func printSummary(s app.Summary) {
	fmt.Printf("  %-12s %d\n", "Seed", s.Seed)
	fmt.Printf("  %-12s %d\n", "Ticks", s.Ticks)
	fmt.Printf("  %-12s %d\n", "Wave", s.Wave)
	fmt.Printf("  %-12s %d\n", "Towers", s.Towers)
	fmt.Printf("  %-12s %d\n", "Kills", s.Kills)
	fmt.Printf("  %-12s %d\n", "Leaked", s.Leaked)
	fmt.Printf("  %-12s %d\n", "Money", s.Money)
	fmt.Printf("  %-12s %d\n", "Earned", s.Earned)
	fmt.Printf("  %-12s %d\n", "Base", s.BaseHealth)
	fmt.Printf("  %-12s %v\n", "Game over", s.GameOver)
}
