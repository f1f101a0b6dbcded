package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bricktoy/internal/core"
)

// Keys held for as long as they are down.
var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyArrowRight: core.ActionRight,
}

// Keys that fire once per press.
var pressedKeys = map[ebiten.Key]core.Action{
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyQ:      core.ActionQuit,
	ebiten.KeyEscape: core.ActionQuit,
}

// readFrame builds the input frame for one tick. isDown reports held keys
// and justPressed reports keys pressed this tick.
func readFrame(isDown, justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for k, a := range heldKeys {
		if isDown(k) {
			in.Set(a)
		}
	}
	for k, a := range pressedKeys {
		if justPressed(k) {
			in.Set(a)
		}
	}
	return in
}
