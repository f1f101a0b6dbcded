// Package bricktoy binds the simulation core to the registry.Game contract
// used by every host.
package bricktoy

import (
	"fmt"

	"github.com/vovakirdan/bricktoy/internal/config"
	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/registry"
	"github.com/vovakirdan/bricktoy/internal/sim"
	"github.com/vovakirdan/bricktoy/internal/world"
)

// ID is the registry key of the toy.
const ID = "bricktoy"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the configuration the same way Reset does.
// A config file that cannot be read or parsed falls back to the defaults
// and the error is returned alongside them.
func LoadConfig() (config.ToyConfig, error) {
	cfg, err := config.Load(configPath)
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game runs one world through the fixed-tick scheduler.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ToyConfig
	fixed   *config.ToyConfig // Set by NewWithConfig; skips file loading

	world *world.World
	sched *sim.Scheduler

	score    int
	paused   bool
	last     []sim.CollisionEvent
	listener func(sim.CollisionEvent)
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always resets to cfg.
func NewWithConfig(cfg config.ToyConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Brick Toy" }

// Reset rebuilds the world from the configuration. A positive
// runtime.TickRate replaces the configured tick rate.
// It panics when the configuration describes an unusable arena.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixed != nil {
		g.cfg = *g.fixed
	} else {
		// Read errors already fell back to defaults; hosts report them at startup.
		g.cfg, _ = LoadConfig()
	}
	// The host's tick rate is the simulation rate: dt is always 1/rate.
	if runtime.TickRate > 0 {
		g.cfg.Sim.TickRate = runtime.TickRate
	}

	w, err := sim.Setup(g.cfg)
	if err != nil {
		panic(fmt.Sprintf("bricktoy: reset: %v", err))
	}

	g.world = w
	g.sched = sim.NewScheduler(g.cfg)
	g.score = 0
	g.paused = false
	g.last = nil
}

// SetCollisionListener registers fn to receive every collision event after
// the tick that produced it. Pass nil to remove it.
func (g *Game) SetCollisionListener(fn func(sim.CollisionEvent)) {
	g.listener = fn
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.last = nil
		return core.StepResult{State: g.State()}
	}

	if err := g.sched.Tick(g.world, in); err != nil {
		panic(err)
	}

	g.last = g.sched.Events().Drain()
	g.score += len(g.last)
	if g.listener != nil {
		for _, evt := range g.last {
			g.listener(evt)
		}
	}

	return core.StepResult{State: g.State(), Collisions: len(g.last)}
}

// State returns the current game state. Score counts collision events.
func (g *Game) State() core.GameState {
	ticks := 0
	if g.sched != nil {
		ticks = int(g.sched.Ticks()) //#nosec G115 -- tick count fits in int
	}
	return core.GameState{
		Score:  g.score,
		Ticks:  ticks,
		Paused: g.paused,
	}
}

// Config returns the configuration of the current world.
func (g *Game) Config() config.ToyConfig { return g.cfg }

// World exposes the simulation state for hosts and tests.
func (g *Game) World() *world.World { return g.world }

// LastEvents returns the collision events of the most recent tick.
func (g *Game) LastEvents() []sim.CollisionEvent { return g.last }

// Stats returns the scheduler statistics.
func (g *Game) Stats() sim.SchedulerStats { return g.sched.Stats() }

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
