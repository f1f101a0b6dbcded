package bricktoy

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/world"
)

// Visual characters for rendering
const (
	SolidGlyph = '█'
	RoundGlyph = '●'
)

// Minimum terminal size the render needs to be readable.
const (
	minScreenW = 20
	minScreenH = 8
)

// Drawable is everything a host needs to paint one entity.
type Drawable struct {
	ID     world.EntityID
	Center core.Vec2
	Half   core.Vec2
	Z      float64
	Color  core.Color
	Shape  world.Shape
}

// Drawables returns every entity with position, extent and appearance,
// sorted by Z. Entities sharing a Z keep spawn order.
func (g *Game) Drawables() []Drawable {
	if g.world == nil {
		return nil
	}

	out := make([]Drawable, 0, g.world.Len())
	for id := range g.world.Entities() {
		pos := g.world.Position(id)
		ext := g.world.Extent(id)
		look := g.world.Appearance(id)
		if pos == nil || ext == nil || look == nil {
			continue
		}
		out = append(out, Drawable{
			ID:     id,
			Center: pos.Vec(),
			Half:   ext.Vec(),
			Z:      pos.Z,
			Color:  look.Color,
			Shape:  look.Shape,
		})
	}

	slices.SortStableFunc(out, func(a, b Drawable) int {
		switch {
		case a.Z < b.Z:
			return -1
		case a.Z > b.Z:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Bounds returns the outer edges of the walls in world units.
func (g *Game) Bounds() (lo, hi core.Vec2) {
	a := g.cfg.Arena
	t := a.WallThickness / 2
	return core.V2(a.Left-t, a.Bottom-t), core.V2(a.Right+t, a.Top+t)
}

// Render draws the arena below a one-line HUD. World Y grows upward,
// screen rows grow downward.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	view := newViewport(g, dst.Width(), dst.Height()-1, 1)
	for _, d := range g.Drawables() {
		glyph := rune(SolidGlyph)
		if d.Shape == world.ShapeRound {
			glyph = RoundGlyph
		}
		dst.DrawRect(view.rect(d.Center.Sub(d.Half), d.Center.Add(d.Half)), glyph, d.Color)
	}

	g.renderHUD(dst)

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the bounce counter and tick number.
func (g *Game) renderHUD(dst *core.Screen) {
	state := g.State()
	dst.DrawText(1, 0, fmt.Sprintf("Bounces: %d", state.Score))

	tickText := fmt.Sprintf("Tick: %d", state.Ticks)
	dst.DrawText(dst.Width()-len(tickText)-1, 0, tickText)
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// viewport maps world coordinates onto a grid of cells.
type viewport struct {
	lo, hi core.Vec2
	sx, sy float64
	top    int
}

func newViewport(g *Game, cols, rows, top int) viewport {
	lo, hi := g.Bounds()
	return viewport{
		lo:  lo,
		hi:  hi,
		sx:  float64(cols) / (hi.X - lo.X),
		sy:  float64(rows) / (hi.Y - lo.Y),
		top: top,
	}
}

// rect converts a world-space box to the cells it covers. Every box covers
// at least one cell.
func (v viewport) rect(bl, tr core.Vec2) core.Rect {
	x0 := int(math.Floor((bl.X - v.lo.X) * v.sx))
	x1 := int(math.Ceil((tr.X - v.lo.X) * v.sx))
	y0 := int(math.Floor((v.hi.Y - tr.Y) * v.sy))
	y1 := int(math.Ceil((v.hi.Y - bl.Y) * v.sy))
	return core.NewRect(x0, v.top+y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}
