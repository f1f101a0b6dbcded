package desktop

import (
	"math"

	"github.com/vovakirdan/bricktoy/internal/core"
)

// view maps world units to screen pixels. World Y grows upward.
type view struct {
	lo, hi        core.Vec2
	scale         float64
	width, height int
}

func newView(lo, hi core.Vec2, scale float64) view {
	size := hi.Sub(lo).Scale(scale)
	return view{
		lo:     lo,
		hi:     hi,
		scale:  scale,
		width:  core.Max(int(math.Ceil(size.X)), 1),
		height: core.Max(int(math.Ceil(size.Y)), 1),
	}
}

// point returns the pixel position of a world point.
func (v view) point(p core.Vec2) (x, y float32) {
	return float32((p.X - v.lo.X) * v.scale), float32((v.hi.Y - p.Y) * v.scale)
}

// rect returns the top-left corner and size in pixels of a box.
func (v view) rect(center, half core.Vec2) (x, y, w, h float32) {
	x, y = v.point(core.V2(center.X-half.X, center.Y+half.Y))
	return x, y, float32(2 * half.X * v.scale), float32(2 * half.Y * v.scale)
}
