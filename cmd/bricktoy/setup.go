package main

import (
	"fmt"
	"time"

	"github.com/vovakirdan/bricktoy/internal/audio"
	"github.com/vovakirdan/bricktoy/internal/config"
	"github.com/vovakirdan/bricktoy/internal/games/bricktoy"
	"github.com/vovakirdan/bricktoy/internal/storage"
)

// Flags shared by the play and window commands.
var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

// loadToyConfig applies --config and --difficulty and checks the result
// before any host starts. A config file that cannot be read is only a
// warning; the defaults still run.
func loadToyConfig() (config.ToyConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.ToyConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	bricktoy.SetConfigPath(flagConfig)
	bricktoy.SetDifficultyPreset(flagDifficulty)

	cfg, err := bricktoy.LoadConfig()
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	if err := applyFPS(&cfg, flagFPS); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFPS makes fps the tick rate of cfg. Zero keeps the configured rate.
// Hosts then tick at cfg.Sim.TickRate, the same rate the simulation steps.
func applyFPS(cfg *config.ToyConfig, fps int) error {
	if fps < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", fps)
	}
	if fps > 0 {
		cfg.Sim.TickRate = fps
	}
	return nil
}

// openStore opens the runs database. The toy runs without history when it
// cannot be opened.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// enableSound wires collision blips into game when --sound is set and
// returns the matching cleanup.
func enableSound(game *bricktoy.Game) func() {
	if !flagSound {
		return func() {}
	}

	beeper := audio.NewBeeper()
	if err := beeper.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return func() {}
	}
	game.SetCollisionListener(beeper.Listen)
	return beeper.Cleanup
}

// logRun reports a finished run after the host released the terminal.
func logRun(run storage.Run, err error) {
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Info("run finished",
		"id", run.ID,
		"ticks", run.Ticks,
		"bounces", run.Collisions,
		"duration", run.Duration.Round(100*time.Millisecond),
	)
}
