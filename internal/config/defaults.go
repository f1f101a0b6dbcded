package config

import (
	_ "embed"
)

//go:embed defaults/bricktoy.yaml
var defaultToyYAML []byte

// DefaultToyConfig returns the built-in configuration.
// It mirrors defaults/bricktoy.yaml and is used when the embedded file cannot be parsed.
func DefaultToyConfig() ToyConfig {
	return ToyConfig{
		Sim: SimConfig{
			TickRate: 60,
		},
		Arena: ArenaConfig{
			Left:          -450,
			Right:         450,
			Bottom:        -300,
			Top:           300,
			WallThickness: 10,
		},
		Ball: BallConfig{
			StartX: 0,
			StartY: -50,
			Size:   30,
			Speed:  16,
		},
		Brick: BrickConfig{
			StartX: 100,
			StartY: 100,
			Width:  100,
			Height: 30,
			Speed:  512,
			DirX:   1,
			DirY:   1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultToyYAML
}
