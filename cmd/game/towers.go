package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-path-defense/internal/defs"
)

var flagDumpConfig bool

var towersCmd = &cobra.Command{
	Use:   "towers",
	Short: "List tower types",
	Long: `Shows every tower type from the loaded definitions with its base stats and shop status.

Examples:
  game towers
  game towers --dump-config > ~/.pathdefense/game.yaml`,
	Run: runTowers,
}

func init() {
	towersCmd.Flags().BoolVar(&flagDumpConfig, "dump-config", false, "Print the built-in definitions as YAML and exit")
}

func runTowers(cmd *cobra.Command, args []string) {
	if flagDumpConfig {
		if _, err := os.Stdout.Write(defs.DefaultYAML()); err != nil {
			fail("cannot write definitions", err)
		}
		return
	}

	lib, err := loadLibrary()
	if err != nil {
		fail("cannot load definitions", err)
	}

	initial := make(map[defs.TowerType]bool, len(lib.Shop.Initial))
	for _, t := range lib.Shop.Initial {
		initial[t] = true
	}

	fmt.Printf("  %-8s %-8s %5s %7s %6s %5s %7s  %s\n", "Type", "Name", "Cost", "Damage", "Range", "Rate", "Splash", "Shop")
	fmt.Printf("  %-8s %-8s %5s %7s %6s %5s %7s  %s\n", "----", "----", "----", "------", "-----", "----", "------", "----")
	for _, t := range defs.AllTowerTypes {
		def, ok := lib.Tower(t)
		if !ok {
			continue
		}
		shop := "starter"
		if !initial[t] {
			shop = fmt.Sprintf("%d cr", lib.Shop.Unlocks[t])
		}
		splash := "-"
		if def.HasSplash() {
			splash = fmt.Sprintf("%.0f/%.0f", def.SplashDamage, def.SplashRange)
		}
		fmt.Printf("  %-8s %-8s %5d %7.0f %6.0f %5.0f %7s  %s\n", t, def.Name, def.Cost, def.Damage, def.Range, def.FireRate, splash, shop)
	}
	fmt.Println()
	fmt.Println("Fire rate is ticks between shots: lower fires faster.")
}
