package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/games/bricktoy"
	"github.com/vovakirdan/bricktoy/internal/platform/tui"
	"github.com/vovakirdan/bricktoy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the toy in the terminal.

Controls:
  WASD/Arrows  - Move the ball
  P            - Pause
  R            - Restart
  Q/Esc        - Quit

Difficulty options:
  easy    - Brick and ball at 60% speed
  normal  - Default speeds
  hard    - Brick and ball at 150% speed

Terminals report key presses but not releases, so a direction stays held
for a few ticks after its last key repeat. Use 'bricktoy window' for exact
held-key input.

Examples:
  bricktoy play
  bricktoy play --difficulty easy
  bricktoy play --config ./my-toy.yaml --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a blip on every collision")
}

func runPlay(_ *cobra.Command, _ []string) {
	toyCfg, err := loadToyConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: toyCfg.Sim.TickRate,
	}

	game := bricktoy.New()
	stopSound := enableSound(game)

	store := openStore()

	// The alternate screen owns the terminal until Run returns.
	type finished struct {
		run storage.Run
		err error
	}
	var runs []finished
	runErr := tui.Run(game, store, cfg, func(run storage.Run, err error) {
		runs = append(runs, finished{run, err})
	})

	stopSound()
	if store != nil {
		store.Close()
	}

	for _, f := range runs {
		logRun(f.run, f.err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
