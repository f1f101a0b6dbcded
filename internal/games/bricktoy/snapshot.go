package bricktoy

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/bricktoy/internal/world"
)

// Snapshot is the observable state of a game after a tick.
type Snapshot struct {
	Tick     uint64           `yaml:"tick"`
	Score    int              `yaml:"score"`
	Paused   bool             `yaml:"paused"`
	Entities []EntitySnapshot `yaml:"entities"`
}

// EntitySnapshot holds one entity's mutable components.
type EntitySnapshot struct {
	ID   world.EntityID `yaml:"id"`
	Tags string         `yaml:"tags,omitempty"`
	X    float64        `yaml:"x"`
	Y    float64        `yaml:"y"`
	VX   float64        `yaml:"vx,omitempty"`
	VY   float64        `yaml:"vy,omitempty"`
}

// Snapshot returns the current game state in spawn order.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Score:  g.score,
		Paused: g.paused,
	}
	if g.sched != nil {
		snap.Tick = g.sched.Ticks()
	}
	if g.world == nil {
		return snap
	}

	for id := range g.world.Entities() {
		es := EntitySnapshot{ID: id, Tags: tagNames(g.world, id)}
		if pos := g.world.Position(id); pos != nil {
			es.X, es.Y = pos.X, pos.Y
		}
		if vel := g.world.Velocity(id); vel != nil {
			es.VX, es.VY = vel.X, vel.Y
		}
		snap.Entities = append(snap.Entities, es)
	}
	return snap
}

// Hash returns an xxhash of the snapshot for determinism testing.
// Floats are hashed by their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 24+len(snap.Entities)*36)
	buf = binary.LittleEndian.AppendUint64(buf, snap.Tick)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(snap.Score)) //#nosec G115 -- hash computation
	if snap.Paused {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	for _, e := range snap.Entities {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.ID))
		for _, f := range [...]float64{e.X, e.Y, e.VX, e.VY} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
		}
	}
	return xxhash.Sum64(buf)
}

func tagNames(w *world.World, id world.EntityID) string {
	var names []string
	for _, t := range []world.Tag{world.TagCollidable, world.TagKinetic, world.TagControlled} {
		if w.Has(id, t) {
			names = append(names, t.String())
		}
	}
	return strings.Join(names, ",")
}
