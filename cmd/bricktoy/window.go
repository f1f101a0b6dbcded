package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricktoy/internal/games/bricktoy"
	"github.com/vovakirdan/bricktoy/internal/platform/desktop"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the toy in a desktop window at one pixel per world unit.

Controls:
  WASD/Arrows  - Move the ball
  P            - Pause
  R            - Restart
  Q/Esc        - Quit

Examples:
  bricktoy window
  bricktoy window --scale 0.75 --sound`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	windowCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a blip on every collision")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Screen pixels per world unit")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadToyConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagScale <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --scale must be positive")
		os.Exit(1)
	}

	game := bricktoy.New()
	stopSound := enableSound(game)
	defer stopSound()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := desktop.DefaultOptions()
	opts.Scale = flagScale
	opts.TickRate = cfg.Sim.TickRate
	opts.Store = store
	opts.OnFinish = logRun

	if err := desktop.Run(game, opts); err != nil {
		logger.Error("window closed with error", "error", err)
		os.Exit(1)
	}
}
