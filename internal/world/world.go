// Package world stores simulation entities as component tables keyed by
// entity id. Queries iterate in spawn order so every system sees entities
// in the same sequence on every tick.
package world

import (
	"errors"
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/bricktoy/internal/core"
)

var (
	// ErrNotFound is returned by Single when no entity carries the tag.
	ErrNotFound = errors.New("world: no matching entity")

	// ErrAmbiguous is returned by Single when more than one entity carries the tag.
	ErrAmbiguous = errors.New("world: more than one matching entity")

	// ErrIncompleteCollider is returned by Spawn for a Collidable without Position and Extent.
	ErrIncompleteCollider = errors.New("world: collidable entity needs position and extent")
)

// EntityID identifies an entity. Zero is never assigned.
type EntityID uint32

// World owns all entity component data.
type World struct {
	next  EntityID
	order []EntityID

	positions  *intmap.Map[EntityID, *Position]
	extents    *intmap.Map[EntityID, *Extent]
	velocities *intmap.Map[EntityID, *Velocity]
	looks      *intmap.Map[EntityID, *Appearance]
	tags       *intmap.Map[EntityID, Tag]
}

// New creates an empty world.
func New() *World {
	const capacity = 16
	return &World{
		order:      make([]EntityID, 0, capacity),
		positions:  intmap.New[EntityID, *Position](capacity),
		extents:    intmap.New[EntityID, *Extent](capacity),
		velocities: intmap.New[EntityID, *Velocity](capacity),
		looks:      intmap.New[EntityID, *Appearance](capacity),
		tags:       intmap.New[EntityID, Tag](capacity),
	}
}

// Spawn creates an entity from the given components and returns its id.
// Attaching the same component kind twice keeps the last value.
func (w *World) Spawn(components ...Component) (EntityID, error) {
	w.next++
	id := w.next

	for _, c := range components {
		c.attach(w, id)
	}

	if w.Has(id, TagCollidable) && (!w.positions.Has(id) || !w.extents.Has(id)) {
		w.drop(id)
		return 0, ErrIncompleteCollider
	}

	w.order = append(w.order, id)
	return id, nil
}

// drop removes every component of a half-built entity.
func (w *World) drop(id EntityID) {
	w.positions.Del(id)
	w.extents.Del(id)
	w.velocities.Del(id)
	w.looks.Del(id)
	w.tags.Del(id)
}

func (w *World) addTag(id EntityID, t Tag) {
	cur, _ := w.tags.Get(id)
	w.tags.Put(id, cur|t)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.order)
}

// Entities yields every entity id in spawn order.
func (w *World) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range w.order {
			if !yield(id) {
				return
			}
		}
	}
}

// With yields, in spawn order, every entity carrying all bits of tag.
func (w *World) With(tag Tag) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range w.order {
			if w.Has(id, tag) && !yield(id) {
				return
			}
		}
	}
}

// Has reports whether the entity carries all bits of tag.
func (w *World) Has(id EntityID, tag Tag) bool {
	t, ok := w.tags.Get(id)
	return ok && t&tag == tag
}

// Single returns the one entity carrying tag. Zero matches wrap ErrNotFound,
// several wrap ErrAmbiguous. Both mean the world was set up incorrectly.
func (w *World) Single(tag Tag) (EntityID, error) {
	var found EntityID
	count := 0
	for id := range w.With(tag) {
		if count == 0 {
			found = id
		}
		count++
	}

	switch count {
	case 1:
		return found, nil
	case 0:
		return 0, fmt.Errorf("%w: exactly one %s entity expected", ErrNotFound, tag)
	default:
		return 0, fmt.Errorf("%w: exactly one %s entity expected, found %d", ErrAmbiguous, tag, count)
	}
}

// Position returns the entity's position, or nil if it has none.
func (w *World) Position(id EntityID) *Position {
	p, _ := w.positions.Get(id)
	return p
}

// Extent returns the entity's extent, or nil if it has none.
func (w *World) Extent(id EntityID) *Extent {
	e, _ := w.extents.Get(id)
	return e
}

// Velocity returns the entity's velocity, or nil if it has none.
func (w *World) Velocity(id EntityID) *Velocity {
	v, _ := w.velocities.Get(id)
	return v
}

// Appearance returns the entity's draw data, or nil if it has none.
func (w *World) Appearance(id EntityID) *Appearance {
	a, _ := w.looks.Get(id)
	return a
}

// Box returns the entity's AABB. ok is false without Position or Extent.
func (w *World) Box(id EntityID) (box core.Box, ok bool) {
	p := w.Position(id)
	e := w.Extent(id)
	if p == nil || e == nil {
		return core.Box{}, false
	}
	return core.Box{Center: p.Vec(), Half: e.Vec()}, true
}
