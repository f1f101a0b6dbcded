package bricktoy

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/bricktoy/internal/config"
	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/registry"
	"github.com/vovakirdan/bricktoy/internal/sim"
	"github.com/vovakirdan/bricktoy/internal/world"
)

var runtimeCfg = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
}

func newGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultToyConfig())
	g.Reset(runtimeCfg)
	return g
}

func inputs(n int) []core.InputFrame {
	seq := make([]core.InputFrame, n)
	for i := range seq {
		seq[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			seq[i].Set(core.ActionRight)
		case i%7 == 4:
			seq[i].Set(core.ActionDown)
			seq[i].Set(core.ActionLeft)
		}
	}
	return seq
}

func TestGameDeterminism(t *testing.T) {
	seq := inputs(600)

	g1 := newGame(t)
	for _, in := range seq {
		g1.Step(in)
	}
	snap1 := g1.Snapshot()

	g2 := newGame(t)
	for _, in := range seq {
		g2.Step(in)
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != 600 {
		t.Errorf("Tick = %d, want 600", snap1.Tick)
	}
}

func TestHashChangesWithState(t *testing.T) {
	g := newGame(t)
	before := g.Snapshot()

	g.Step(core.NewInputFrame())
	after := g.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("hash should change after a tick moves the brick")
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(t)
	fresh := g.Snapshot()

	for _, in := range inputs(300) {
		g.Step(in)
	}
	g.Reset(runtimeCfg)

	state := g.State()
	if state.Score != 0 || state.Ticks != 0 || state.Paused {
		t.Errorf("state after reset = %+v, want zero", state)
	}
	snap := g.Snapshot()
	if snap.Hash() != fresh.Hash() {
		t.Error("reset should restore the initial snapshot")
	}
}

func TestRestartAction(t *testing.T) {
	g := newGame(t)
	for range 10 {
		g.Step(core.NewInputFrame())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.State().Ticks != 0 {
		t.Errorf("Ticks after restart = %d, want 0", g.State().Ticks)
	}
}

func TestScoreCountsCollisionEvents(t *testing.T) {
	g := newGame(t)

	var heard []sim.CollisionEvent
	g.SetCollisionListener(func(evt sim.CollisionEvent) {
		heard = append(heard, evt)
	})

	total := 0
	for range 1200 {
		res := g.Step(core.NewInputFrame())
		total += res.Collisions
		if len(g.LastEvents()) != res.Collisions {
			t.Fatalf("LastEvents has %d events, result says %d", len(g.LastEvents()), res.Collisions)
		}
	}

	if total == 0 {
		t.Fatal("brick should hit a wall within 20 seconds")
	}
	if g.State().Score != total {
		t.Errorf("Score = %d, want %d", g.State().Score, total)
	}
	if len(heard) != total {
		t.Errorf("listener heard %d events, want %d", len(heard), total)
	}
	for _, evt := range heard {
		if evt.Side == sim.SideInside {
			t.Errorf("unexpected inside contact at tick %d", evt.Tick)
		}
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t)
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	frozen := g.Snapshot()

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if got := g.Snapshot(); got.Hash() != frozen.Hash() {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Fatal("second pause should resume")
	}
	if g.State().Ticks != 2 {
		t.Errorf("Ticks = %d, want 2", g.State().Ticks)
	}
}

// brickStep returns the brick's x displacement and x velocity over one tick.
func brickStep(t *testing.T, g *Game) (dx, vx float64) {
	t.Helper()
	id, err := g.World().Single(world.TagKinetic)
	if err != nil {
		t.Fatalf("Single(kinetic) failed: %v", err)
	}
	x0 := g.World().Position(id).X
	vx = g.World().Velocity(id).X
	g.Step(core.NewInputFrame())
	return g.World().Position(id).X - x0, vx
}

func TestHostTickRateDrivesTimeStep(t *testing.T) {
	tests := []struct {
		name        string
		configRate  int
		runtimeRate int
		wantRate    int
	}{
		{"host slower than config", 60, 30, 30},
		{"host faster than config", 30, 120, 120},
		{"host defers to config", 30, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultToyConfig()
			cfg.Sim.TickRate = tt.configRate

			g := NewWithConfig(cfg)
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tt.runtimeRate})

			if got := g.Config().Sim.TickRate; got != tt.wantRate {
				t.Errorf("Config().Sim.TickRate = %d, want %d", got, tt.wantRate)
			}

			dx, vx := brickStep(t, g)
			want := vx / float64(tt.wantRate)
			if math.Abs(dx-want) > 1e-9 {
				t.Errorf("brick moved %v in one tick, want %v (vx/%d)", dx, want, tt.wantRate)
			}
		})
	}
}

func TestResetPanicsOnInvalidArena(t *testing.T) {
	cfg := config.DefaultToyConfig()
	cfg.Arena.Top = cfg.Arena.Bottom

	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero-height arena")
		}
	}()
	NewWithConfig(cfg).Reset(runtimeCfg)
}

func TestDrawablesSortedByZ(t *testing.T) {
	g := newGame(t)
	ds := g.Drawables()

	if len(ds) != 6 {
		t.Fatalf("len(Drawables) = %d, want 6", len(ds))
	}
	for i := 1; i < len(ds); i++ {
		if ds[i-1].Z > ds[i].Z {
			t.Errorf("drawables out of order at %d", i)
		}
	}

	last := ds[len(ds)-1]
	if last.Shape != world.ShapeRound || last.Color != core.ColorPeriwinkle {
		t.Errorf("ball should draw last as a round periwinkle shape, got %+v", last)
	}
	if ds[0].Color != core.ColorDarkGray {
		t.Errorf("first drawable should be a wall, got %+v", ds[0])
	}
}

func TestRender(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(runtimeCfg.ScreenW, runtimeCfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Bounces: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	wall := screen.GetCell(0, 12)
	if wall.Rune != SolidGlyph || wall.Color != core.ColorDarkGray {
		t.Errorf("left wall cell = %+v", wall)
	}

	// Ball center (0, -50) lands just below the middle of the play area.
	if got := screen.Get(39, 13); got != RoundGlyph {
		t.Errorf("ball cell = %q, want %q", got, RoundGlyph)
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newGame(t)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(runtimeCfg.ScreenW, runtimeCfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should render the pause box")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(10, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", ID, err)
	}
	if g.Title() != "Brick Toy" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricktoy.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  speed: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Ball.Speed != 30 {
		t.Errorf("Ball.Speed = %v, want 30", cfg.Ball.Speed)
	}
	if cfg.Brick.Speed != 768 {
		t.Errorf("Brick.Speed = %v, want 768", cfg.Brick.Speed)
	}

	g := New()
	g.Reset(runtimeCfg)
	if g.Config().Ball.Speed != 30 {
		t.Errorf("Reset should use the loaded config, got ball speed %v", g.Config().Ball.Speed)
	}
}
