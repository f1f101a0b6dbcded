// Package desktop hosts the toy in an Ebitengine window.
package desktop

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/games/bricktoy"
	"github.com/vovakirdan/bricktoy/internal/storage"
	"github.com/vovakirdan/bricktoy/internal/world"
)

// Options configures the window host.
type Options struct {
	// Scale is screen pixels per world unit.
	Scale float64
	// TickRate is both the Ebitengine TPS and the simulation rate.
	TickRate int
	Title    string
	Store    *storage.Store
	// OnFinish receives every finished run and the result of saving it.
	OnFinish func(run storage.Run, err error)
}

// DefaultOptions returns a 60 TPS window at one pixel per world unit.
func DefaultOptions() Options {
	return Options{
		Scale:    1,
		TickRate: 60,
		Title:    "Brick Toy",
	}
}

var background = rgba(core.ColorLightGray)

// Host adapts a bricktoy.Game to ebiten.Game.
type Host struct {
	game    *bricktoy.Game
	opts    Options
	view    view
	state   core.GameState
	started time.Time
	saved   bool
}

// NewHost resets game and sizes the view to its arena.
func NewHost(game *bricktoy.Game, opts Options) *Host {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	h := &Host{game: game, opts: opts}
	h.reset()
	return h
}

func (h *Host) reset() {
	h.game.Reset(core.RuntimeConfig{TickRate: h.opts.TickRate})
	lo, hi := h.game.Bounds()
	h.view = newView(lo, hi, h.opts.Scale)
	h.state = h.game.State()
	h.started = time.Now()
	h.saved = false
}

// Update advances the simulation by one tick.
func (h *Host) Update() error {
	in := readFrame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)

	switch {
	case in.Has(core.ActionQuit):
		h.finishRun()
		return ebiten.Termination
	case in.Has(core.ActionRestart):
		h.finishRun()
		h.reset()
		return nil
	}

	h.state = h.game.Step(in).State
	return nil
}

// Draw paints every drawable and the HUD.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, d := range h.game.Drawables() {
		x, y, w, ht := h.view.rect(d.Center, d.Half)
		c := rgba(d.Color)
		if d.Shape == world.ShapeRound {
			r := float32(math.Min(d.Half.X, d.Half.Y) * h.view.scale)
			vector.DrawFilledCircle(screen, x+w/2, y+ht/2, r, c, true)
			continue
		}
		vector.DrawFilledRect(screen, x, y, w, ht, c, false)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Bounces: %d  Tick: %d", h.state.Score, h.state.Ticks))
	if h.state.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", h.view.width/2-18, h.view.height/2-8)
	}
}

// Layout keeps the logical screen at the arena size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.view.width, h.view.height
}

// finishRun saves the current run once, if it advanced at all.
func (h *Host) finishRun() {
	state := h.game.State()
	if state.Ticks == 0 || h.saved {
		return
	}
	h.saved = true

	run := storage.Run{
		GameID:     h.game.ID(),
		Ticks:      int64(state.Ticks),
		Collisions: state.Score,
		Duration:   time.Since(h.started),
	}

	var err error
	if h.opts.Store != nil {
		run.ID, err = h.opts.Store.SaveRun(run)
	}
	if h.opts.OnFinish != nil {
		h.opts.OnFinish(run, err)
	}
}

// Run opens a window for game and blocks until it is closed.
func Run(game *bricktoy.Game, opts Options) error {
	host := NewHost(game, opts)

	ebiten.SetWindowSize(host.view.width, host.view.height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.opts.TickRate)

	if err := ebiten.RunGame(host); err != nil {
		return err
	}
	// Closing the window skips Update, so save here too.
	host.finishRun()
	return nil
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
