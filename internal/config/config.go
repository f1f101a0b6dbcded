// Package config provides YAML-based configuration loading and validation
// for the brick toy.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidArena is returned when the wall coordinates do not describe an
// arena with positive width and height.
var ErrInvalidArena = errors.New("config: arena width and height must be positive")

// ErrInvalidConfig is returned for any other out-of-range setting.
var ErrInvalidConfig = errors.New("config: invalid setting")

// ToyConfig contains every constant the simulation reads.
type ToyConfig struct {
	Sim   SimConfig   `yaml:"sim"`
	Arena ArenaConfig `yaml:"arena"`
	Ball  BallConfig  `yaml:"ball"`
	Brick BrickConfig `yaml:"brick"`
}

// SimConfig defines the fixed timestep.
type SimConfig struct {
	TickRate int `yaml:"tick_rate"` // Fixed ticks per second
}

// ArenaConfig defines the wall center lines in world units.
// X grows to the right, Y grows upward.
type ArenaConfig struct {
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	Bottom        float64 `yaml:"bottom"`
	Top           float64 `yaml:"top"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// BallConfig defines the input-driven entity.
type BallConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"`  // Full diameter
	Speed  float64 `yaml:"speed"` // Units per tick per held direction
}

// BrickConfig defines the kinetic entity.
type BrickConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per second
	DirX   float64 `yaml:"dir_x"` // Initial direction, normalized at setup
	DirY   float64 `yaml:"dir_y"`
}

// Width returns the distance between the left and right walls.
func (a ArenaConfig) Width() float64 {
	return a.Right - a.Left
}

// Height returns the distance between the bottom and top walls.
func (a ArenaConfig) Height() float64 {
	return a.Top - a.Bottom
}

// TickDuration returns the fixed tick length in seconds.
func (c ToyConfig) TickDuration() float64 {
	return 1.0 / float64(c.Sim.TickRate)
}

// Validate checks the configuration for settings the simulation cannot run with.
func (c ToyConfig) Validate() error {
	if c.Arena.Width() <= 0 || c.Arena.Height() <= 0 {
		return fmt.Errorf("%w (width %.1f, height %.1f)", ErrInvalidArena, c.Arena.Width(), c.Arena.Height())
	}
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Sim.TickRate)
	}
	if c.Arena.WallThickness < 0 {
		return fmt.Errorf("%w: wall_thickness must not be negative", ErrInvalidConfig)
	}
	if c.Ball.Size <= 0 {
		return fmt.Errorf("%w: ball size must be positive", ErrInvalidConfig)
	}
	if c.Brick.Width <= 0 || c.Brick.Height <= 0 {
		return fmt.Errorf("%w: brick width and height must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named speed preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown names return "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// speedFactors scales brick and ball speed per preset.
var speedFactors = map[DifficultyPreset]float64{
	DifficultyEasy:   0.6,
	DifficultyNormal: 1.0,
	DifficultyHard:   1.5,
}

// ApplyPreset scales the brick and ball speeds for a preset.
// An empty or unknown preset leaves the config untouched.
func ApplyPreset(cfg *ToyConfig, preset DifficultyPreset) {
	factor, ok := speedFactors[preset]
	if !ok {
		return
	}
	cfg.Brick.Speed *= factor
	cfg.Ball.Speed *= factor
}
