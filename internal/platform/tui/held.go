package tui

import "github.com/vovakirdan/bricktoy/internal/core"

// DefaultHoldTicks is how long one key press counts as held.
// Terminal key repeat arrives roughly every 30ms, well inside this window.
const DefaultHoldTicks = 8

// HeldKeys approximates held directions from key press events.
// Terminals report presses and auto-repeats but never releases, so a
// direction stays held for a fixed number of ticks after its last press.
type HeldKeys struct {
	window    int
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker that keeps a press alive for window ticks.
func NewHeldKeys(window int) *HeldKeys {
	if window < 1 {
		window = 1
	}
	return &HeldKeys{
		window:    window,
		remaining: make(map[core.Action]int),
	}
}

// Press marks a direction as held. Pressing a direction releases its
// opposite immediately.
func (h *HeldKeys) Press(a core.Action) {
	if opp := opposite(a); opp != core.ActionNone {
		delete(h.remaining, opp)
	}
	h.remaining[a] = h.window
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}

// Frame returns the directions held for the next tick and ages every
// press by one tick.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
