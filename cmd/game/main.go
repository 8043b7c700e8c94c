// Path Defense is a tower defense game: enemies walk a fixed path toward the
// base and towers placed beside it shoot them down.
//
// Usage:
//
//	game [play]          - Open the game window (default)
//	game sim             - Run the seeded demo headless and print a summary
//	game towers          - Print the tower table from the loaded definitions
//
// Global flags:
//
//	--config <path>       - Custom definitions YAML
//	--difficulty <name>   - easy, normal or hard
//	--seed <value>        - Demo RNG seed (0 = time based)
//	--speed <n>           - Initial game speed multiplier
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/logger"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagSpeed      int
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Path Defense - a tower defense game",
	Long: `Path Defense sends waves of enemies down a fixed path. Build towers
beside the path, upgrade them and keep the base alive.

Examples:
  game
  game play --difficulty hard
  game sim --seed 42 --ticks 20000
  game towers --config ./my-game.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagLogLevel != "" {
			logger.Logger.SetLevel(logger.ParseLevel(flagLogLevel))
		}
	},
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom definitions YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", string(defs.DifficultyNormal), "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Demo RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 1, "Initial game speed multiplier")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(towersCmd)
}

// loadLibrary loads definitions and checks the global flags against them.
func loadLibrary() (*defs.Library, error) {
	lib, err := defs.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if _, ok := lib.Difficulty(defs.Difficulty(flagDifficulty)); !ok {
		return nil, fmt.Errorf("%w: %q", app.ErrUnknownDifficulty, flagDifficulty)
	}
	if !lib.SpeedAllowed(flagSpeed) {
		return nil, fmt.Errorf("%w: %dx (allowed %v)", app.ErrInvalidSpeed, flagSpeed, lib.Speeds)
	}
	return lib, nil
}

func fail(msg string, err error) {
	logger.Logger.Error(msg, "err", err)
	os.Exit(1)
}
