package sim

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bricktoy/internal/config"
	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/world"
)

func TestSetupSpawnsDefaultScene(t *testing.T) {
	cfg := config.DefaultToyConfig()
	w, err := Setup(cfg)
	require.NoError(t, err)

	assert.Equal(t, 6, w.Len())
	assert.Len(t, collect(w.With(world.TagCollidable)), 5)

	left := w.Extent(1)
	require.NotNil(t, left)
	assert.Equal(t, core.V2(10, 610), left.Vec().Scale(2))

	top := w.Extent(4)
	require.NotNil(t, top)
	assert.Equal(t, core.V2(910, 10), top.Vec().Scale(2))
	assert.Equal(t, core.V2(0, 300), w.Position(4).Vec())

	ball, err := w.Single(world.TagControlled)
	require.NoError(t, err)
	assert.Equal(t, world.Position{X: 0, Y: -50, Z: 1}, *w.Position(ball))
	assert.Nil(t, w.Velocity(ball))
	assert.False(t, w.Has(ball, world.TagCollidable))

	brick, err := w.Single(world.TagKinetic)
	require.NoError(t, err)
	vel := w.Velocity(brick)
	require.NotNil(t, vel)
	assert.InDelta(t, 512, vel.Vec().Len(), 1e-9)
	assert.Equal(t, vel.X, vel.Y)
	assert.True(t, w.Has(brick, world.TagCollidable))
}

func TestSetupRejectsInvalidArena(t *testing.T) {
	cfg := config.DefaultToyConfig()
	cfg.Arena.Left, cfg.Arena.Right = 100, -100

	w, err := Setup(cfg)
	assert.Nil(t, w)
	assert.ErrorIs(t, err, config.ErrInvalidArena)
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	s := NewScheduler(config.DefaultToyConfig())
	assert.Equal(t, []string{"integrator", "mover", "resolver"}, s.Systems())
}

func TestSchedulerFirstTick(t *testing.T) {
	cfg := config.DefaultToyConfig()
	w, err := Setup(cfg)
	require.NoError(t, err)
	s := NewScheduler(cfg)

	brick, _ := w.Single(world.TagKinetic)
	ball, _ := w.Single(world.TagControlled)
	before := *w.Position(brick)
	vel := *w.Velocity(brick)

	require.NoError(t, s.Tick(w, core.NewInputFrame()))

	dt := cfg.TickDuration()
	assert.Equal(t, before.X+vel.X*dt, w.Position(brick).X)
	assert.Equal(t, before.Y+vel.Y*dt, w.Position(brick).Y)
	assert.Equal(t, core.V2(0, -50), w.Position(ball).Vec())
	assert.Equal(t, uint64(1), s.Ticks())
	assert.Zero(t, s.Events().Len())
}

func TestSchedulerMovesBallAfterIntegration(t *testing.T) {
	cfg := config.DefaultToyConfig()
	w, err := Setup(cfg)
	require.NoError(t, err)
	s := NewScheduler(cfg)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	require.NoError(t, s.Tick(w, in))

	ball, _ := w.Single(world.TagControlled)
	assert.Equal(t, core.V2(-16, -50), w.Position(ball).Vec())
}

func TestSchedulerKeepsBrickSpeed(t *testing.T) {
	cfg := config.DefaultToyConfig()
	w, err := Setup(cfg)
	require.NoError(t, err)
	s := NewScheduler(cfg)

	brick, _ := w.Single(world.TagKinetic)
	start := *w.Velocity(brick)

	collisions := 0
	for range 1200 {
		require.NoError(t, s.Tick(w, core.NewInputFrame()))
		collisions += len(s.Events().Drain())

		vel := w.Velocity(brick)
		assert.Equal(t, math.Abs(start.X), math.Abs(vel.X))
		assert.Equal(t, math.Abs(start.Y), math.Abs(vel.Y))

		pos := w.Position(brick)
		assert.Less(t, math.Abs(pos.X), cfg.Arena.Right)
		assert.Less(t, math.Abs(pos.Y), cfg.Arena.Top)
	}
	assert.Positive(t, collisions)
}

func TestSchedulerIsDeterministic(t *testing.T) {
	run := func() []world.Position {
		cfg := config.DefaultToyConfig()
		w, err := Setup(cfg)
		require.NoError(t, err)
		s := NewScheduler(cfg)

		for i := range 300 {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Set(core.ActionRight)
			}
			if i%5 == 0 {
				in.Set(core.ActionUp)
			}
			require.NoError(t, s.Tick(w, in))
		}

		var out []world.Position
		for id := range w.Entities() {
			out = append(out, *w.Position(id))
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestSchedulerWrapsSystemErrors(t *testing.T) {
	cfg := config.DefaultToyConfig()
	w, _ := arenaWorld(t)
	_, err := w.Spawn(world.Position{}, world.ExtentFromSize(30, 30), world.Controlled{})
	require.NoError(t, err)

	s := NewScheduler(cfg)
	err = s.Tick(w, core.NewInputFrame())
	require.Error(t, err)
	assert.ErrorIs(t, err, world.ErrNotFound)
	assert.Contains(t, err.Error(), "resolver")
}

func TestSchedulerStats(t *testing.T) {
	cfg := config.DefaultToyConfig()
	w, err := Setup(cfg)
	require.NoError(t, err)
	s := NewScheduler(cfg)

	stats := s.Stats()
	for _, st := range stats.Systems {
		assert.Zero(t, st.ExecutionCount)
		assert.Zero(t, st.MinDuration)
	}

	for range 3 {
		require.NoError(t, s.Tick(w, core.NewInputFrame()))
	}

	stats = s.Stats()
	assert.Equal(t, uint64(3), stats.Ticks)
	require.Len(t, stats.Systems, 3)
	for _, st := range stats.Systems {
		assert.Equal(t, int64(3), st.ExecutionCount)
		assert.LessOrEqual(t, st.MinDuration, st.MaxDuration)
		assert.Equal(t, st.TotalDuration/3, st.AvgDuration)
	}
}

func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
