package sim

import (
	"fmt"
	"time"

	"github.com/vovakirdan/bricktoy/internal/config"
	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/world"
)

// Frame is what a system sees during one tick.
type Frame struct {
	World  *world.World
	Input  core.InputFrame
	Events *EventQueue
	Tick   uint64 // 1 on the first tick
}

// System is one step of the fixed-tick pipeline.
type System interface {
	Name() string
	Run(f *Frame) error
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Ticks   uint64
	Systems []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string        `yaml:"name"`
	ExecutionCount int64         `yaml:"executions"`
	MinDuration    time.Duration `yaml:"min"`
	MaxDuration    time.Duration `yaml:"max"`
	AvgDuration    time.Duration `yaml:"avg"`
	LastDuration   time.Duration `yaml:"last"`
	TotalDuration  time.Duration `yaml:"total"`
}

// Scheduler runs the integrator, mover and resolver, in that order, once per tick.
type Scheduler struct {
	systems []System
	stats   []SystemStats
	events  EventQueue
	tick    uint64
}

// NewScheduler builds the fixed pipeline from a validated configuration.
func NewScheduler(cfg config.ToyConfig) *Scheduler {
	s := &Scheduler{}
	s.register(&Integrator{DT: cfg.TickDuration()})
	s.register(&Mover{Arena: cfg.Arena, Speed: cfg.Ball.Speed})
	s.register(&Resolver{})
	return s
}

func (s *Scheduler) register(sys System) {
	s.systems = append(s.systems, sys)
	s.stats = append(s.stats, SystemStats{
		Name:        sys.Name(),
		MinDuration: time.Duration(1<<63 - 1),
	})
}

// Tick advances the world by one fixed step. Collision events accumulate
// in Events until drained. An error means the world violates a singleton
// expectation and the simulation cannot continue.
func (s *Scheduler) Tick(w *world.World, in core.InputFrame) error {
	s.tick++
	frame := &Frame{
		World:  w,
		Input:  in,
		Events: &s.events,
		Tick:   s.tick,
	}

	for i, sys := range s.systems {
		start := time.Now()
		err := sys.Run(frame)
		s.record(i, time.Since(start))
		if err != nil {
			return fmt.Errorf("sim: tick %d: %s: %w", s.tick, sys.Name(), err)
		}
	}
	return nil
}

func (s *Scheduler) record(i int, d time.Duration) {
	st := &s.stats[i]
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	if d < st.MinDuration {
		st.MinDuration = d
	}
	if d > st.MaxDuration {
		st.MaxDuration = d
	}
}

// Events returns the queue the resolver writes to.
func (s *Scheduler) Events() *EventQueue {
	return &s.events
}

// Ticks returns the number of ticks run so far.
func (s *Scheduler) Ticks() uint64 {
	return s.tick
}

// Systems returns the system names in execution order.
func (s *Scheduler) Systems() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.Name()
	}
	return names
}

// Stats returns a copy of the execution statistics.
func (s *Scheduler) Stats() SchedulerStats {
	out := SchedulerStats{
		Ticks:   s.tick,
		Systems: make([]SystemStats, len(s.stats)),
	}
	for i, st := range s.stats {
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		} else {
			st.MinDuration = 0
		}
		out.Systems[i] = st
	}
	return out
}
