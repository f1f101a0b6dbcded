package world

import "github.com/vovakirdan/bricktoy/internal/core"

// Component is anything that can be attached to an entity at spawn time.
type Component interface {
	attach(w *World, id EntityID)
}

// Position is the entity center in world units. Z only orders drawing.
type Position struct {
	X, Y, Z float64
}

// Vec returns the 2D part of the position.
func (p Position) Vec() core.Vec2 {
	return core.V2(p.X, p.Y)
}

// Extent is the half-size of the entity's AABB.
type Extent struct {
	HalfW, HalfH float64
}

// ExtentFromSize converts a full width and height to an Extent.
func ExtentFromSize(w, h float64) Extent {
	return Extent{HalfW: w / 2, HalfH: h / 2}
}

// Vec returns the half-size as a vector.
func (e Extent) Vec() core.Vec2 {
	return core.V2(e.HalfW, e.HalfH)
}

// Velocity is in world units per second.
type Velocity struct {
	X, Y float64
}

// Vec returns the velocity as a vector.
func (v Velocity) Vec() core.Vec2 {
	return core.V2(v.X, v.Y)
}

// Shape selects how a host draws the entity.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeRound
)

// Appearance is draw-only data. The simulation never reads it.
type Appearance struct {
	Color core.Color
	Shape Shape
}

// Collidable marks an entity that takes part in collision tests.
type Collidable struct{}

// Kinetic marks the entity whose velocity collision response mutates.
type Kinetic struct{}

// Controlled marks the entity moved directly by input.
type Controlled struct{}

func (p Position) attach(w *World, id EntityID)   { w.positions.Put(id, &p) }
func (e Extent) attach(w *World, id EntityID)     { w.extents.Put(id, &e) }
func (v Velocity) attach(w *World, id EntityID)   { w.velocities.Put(id, &v) }
func (a Appearance) attach(w *World, id EntityID) { w.looks.Put(id, &a) }
func (Collidable) attach(w *World, id EntityID)   { w.addTag(id, TagCollidable) }
func (Kinetic) attach(w *World, id EntityID)      { w.addTag(id, TagKinetic) }
func (Controlled) attach(w *World, id EntityID)   { w.addTag(id, TagControlled) }

// Tag is a bit set of marker components.
type Tag uint8

const (
	TagCollidable Tag = 1 << iota
	TagKinetic
	TagControlled
)

// String returns the marker name, used in query errors.
func (t Tag) String() string {
	switch t {
	case TagCollidable:
		return "collidable"
	case TagKinetic:
		return "kinetic"
	case TagControlled:
		return "controlled"
	default:
		return "combined"
	}
}
