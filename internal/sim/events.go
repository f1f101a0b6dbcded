package sim

import "github.com/vovakirdan/bricktoy/internal/world"

// CollisionEvent is emitted once per contact found by the Resolver.
type CollisionEvent struct {
	Tick  uint64         // Tick number the contact happened on
	Other world.EntityID // Collidable the kinetic entity touched
	Side  Side
}

// EventQueue is a FIFO of collision events filled during a tick and
// drained by the host afterwards.
type EventQueue struct {
	items []CollisionEvent
}

// Push appends an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of undrained events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
