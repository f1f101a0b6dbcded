package sim

import (
	"fmt"

	"github.com/vovakirdan/bricktoy/internal/config"
	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/world"
)

// Mover moves the controlled entity by held directions and keeps it
// inside the walls. It never touches Velocity.
type Mover struct {
	Arena config.ArenaConfig
	Speed float64 // Units per tick per held direction
}

// Name implements System.
func (*Mover) Name() string { return "mover" }

// Run implements System.
func (s *Mover) Run(f *Frame) error {
	id, err := f.World.Single(world.TagControlled)
	if err != nil {
		return err
	}

	dir, held := heldDirection(f.Input)
	if !held {
		return nil
	}

	pos := f.World.Position(id)
	if pos == nil {
		return fmt.Errorf("controlled entity %d has no position", id)
	}
	var half core.Vec2
	if ext := f.World.Extent(id); ext != nil {
		half = ext.Vec()
	}

	minX, maxX := s.bounds(s.Arena.Left, s.Arena.Right, half.X)
	minY, maxY := s.bounds(s.Arena.Bottom, s.Arena.Top, half.Y)

	// Diagonal input is deliberately left unnormalized.
	pos.X = core.ClampF(pos.X+dir.X*s.Speed, minX, maxX)
	pos.Y = core.ClampF(pos.Y+dir.Y*s.Speed, minY, maxY)
	return nil
}

// bounds returns the inclusive range a center may occupy between two walls.
func (s *Mover) bounds(lo, hi, half float64) (float64, float64) {
	inset := s.Arena.WallThickness/2 + half
	return lo + inset, hi - inset
}

// heldDirection sums the held directions into a vector with components in {-1, 0, 1}.
func heldDirection(in core.InputFrame) (dir core.Vec2, held bool) {
	if in.Has(core.ActionRight) {
		dir.X++
		held = true
	}
	if in.Has(core.ActionLeft) {
		dir.X--
		held = true
	}
	if in.Has(core.ActionUp) {
		dir.Y++
		held = true
	}
	if in.Has(core.ActionDown) {
		dir.Y--
		held = true
	}
	return dir, held
}
