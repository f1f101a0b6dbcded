// Package sim implements the fixed-tick simulation: velocity integration,
// input-driven movement and AABB collision response for the kinetic brick.
package sim

import (
	"math"

	"github.com/vovakirdan/bricktoy/internal/core"
)

// Side classifies which face of B the box A ran into.
type Side int

const (
	SideLeft   Side = iota // A hit B's left face; B lies to the right of A
	SideRight              // A hit B's right face
	SideTop                // A hit B's top face; A is above B
	SideBottom             // A hit B's bottom face
	SideInside             // No face straddled; A sits inside B or covers it on both axes
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Detect tests two boxes for overlap and classifies the contact.
// Touching edges do not overlap. When both axes straddle an edge, the axis
// with the smaller penetration depth decides the side.
func Detect(a, b core.Box) (Side, bool) {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	if aMin.X >= bMax.X || aMax.X <= bMin.X || aMin.Y >= bMax.Y || aMax.Y <= bMin.Y {
		return SideInside, false
	}

	xSide, xDepth := SideInside, math.Inf(-1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = SideLeft, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = SideRight, aMin.X-bMax.X
	}

	ySide, yDepth := SideInside, math.Inf(-1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = SideBottom, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = SideTop, aMin.Y-bMax.Y
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide, true
	}
	return xSide, true
}
