package sim

import (
	"fmt"

	"github.com/vovakirdan/bricktoy/internal/world"
)

// Resolver tests the kinetic entity against every collidable and reflects
// its velocity on contact.
//
// Contacts are visited in spawn order and each one sees the velocity left by
// the previous ones, so a tick touching two walls can depend on their order.
type Resolver struct{}

// Name implements System.
func (*Resolver) Name() string { return "resolver" }

// Run implements System.
func (s *Resolver) Run(f *Frame) error {
	id, err := f.World.Single(world.TagKinetic)
	if err != nil {
		return err
	}

	box, ok := f.World.Box(id)
	vel := f.World.Velocity(id)
	if !ok || vel == nil {
		return fmt.Errorf("kinetic entity %d needs position, extent and velocity", id)
	}

	for other := range f.World.With(world.TagCollidable) {
		// The brick is collidable too; its self-overlap is always Inside and never counted.
		if other == id {
			continue
		}
		otherBox, _ := f.World.Box(other)

		side, hit := Detect(box, otherBox)
		if !hit {
			continue
		}

		f.Events.Push(CollisionEvent{Tick: f.Tick, Other: other, Side: side})
		Reflect(vel, side)
	}
	return nil
}

// Reflect flips one velocity component when the entity is still moving into
// the face it touched. It reports whether a flip happened. SideInside never flips.
func Reflect(v *world.Velocity, side Side) bool {
	switch side {
	case SideLeft:
		if v.X > 0 {
			v.X = -v.X
			return true
		}
	case SideRight:
		if v.X < 0 {
			v.X = -v.X
			return true
		}
	case SideTop:
		if v.Y < 0 {
			v.Y = -v.Y
			return true
		}
	case SideBottom:
		if v.Y > 0 {
			v.Y = -v.Y
			return true
		}
	}
	return false
}
