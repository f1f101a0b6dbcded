package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bricktoy/internal/core"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestReadFrame(t *testing.T) {
	none := keySet()

	tests := []struct {
		name        string
		down        func(ebiten.Key) bool
		justPressed func(ebiten.Key) bool
		want        []core.Action
	}{
		{"idle", none, none, nil},
		{"wasd", keySet(ebiten.KeyW, ebiten.KeyD), none, []core.Action{core.ActionUp, core.ActionRight}},
		{"arrows", keySet(ebiten.KeyArrowDown, ebiten.KeyArrowLeft), none, []core.Action{core.ActionDown, core.ActionLeft}},
		{"opposites both held", keySet(ebiten.KeyA, ebiten.KeyArrowRight), none, []core.Action{core.ActionLeft, core.ActionRight}},
		{"pause edge", none, keySet(ebiten.KeyP), []core.Action{core.ActionPause}},
		{"pause held only", keySet(ebiten.KeyP), none, nil},
		{"escape", none, keySet(ebiten.KeyEscape), []core.Action{core.ActionQuit}},
		{"restart", none, keySet(ebiten.KeyR), []core.Action{core.ActionRestart}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := readFrame(tt.down, tt.justPressed)
			if len(in.Actions) != len(tt.want) {
				t.Fatalf("got %v, want %v", in.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !in.Has(a) {
					t.Errorf("expected %v in frame %v", a, in.Actions)
				}
			}
		})
	}
}

func TestViewMapping(t *testing.T) {
	v := newView(core.V2(-455, -305), core.V2(455, 305), 0.5)

	if v.width != 455 || v.height != 305 {
		t.Fatalf("view size = %dx%d, want 455x305", v.width, v.height)
	}

	x, y := v.point(core.V2(-455, 305))
	if x != 0 || y != 0 {
		t.Errorf("top-left corner maps to (%v, %v), want (0, 0)", x, y)
	}
	x, y = v.point(core.V2(455, -305))
	if x != 455 || y != 305 {
		t.Errorf("bottom-right corner maps to (%v, %v), want (455, 305)", x, y)
	}

	// Higher world Y is nearer the top of the window.
	_, top := v.point(core.V2(0, 100))
	_, bottom := v.point(core.V2(0, -100))
	if top >= bottom {
		t.Errorf("world Y not flipped: y(100)=%v, y(-100)=%v", top, bottom)
	}
}

func TestViewRect(t *testing.T) {
	v := newView(core.V2(0, 0), core.V2(100, 100), 2)

	x, y, w, h := v.rect(core.V2(50, 50), core.V2(10, 5))
	if x != 80 || y != 90 || w != 40 || h != 20 {
		t.Errorf("rect = (%v, %v, %v, %v), want (80, 90, 40, 20)", x, y, w, h)
	}
}
