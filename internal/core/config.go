package core

// RuntimeConfig contains host settings passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Host and simulation ticks per second; 0 keeps the game config's rate
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Collisions so far
	Ticks    int  // Fixed ticks simulated since the last reset
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State      GameState
	Collisions int // Collision notifications emitted during this tick
}
