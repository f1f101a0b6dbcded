package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/bricktoy/internal/core"
)

func box(cx, cy, hw, hh float64) core.Box {
	return core.Box{Center: core.V2(cx, cy), Half: core.V2(hw, hh)}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.Box
		wantHit  bool
		wantSide Side
	}{
		{
			name: "separated on x",
			a:    box(0, 0, 1, 1),
			b:    box(3, 0, 1, 1),
		},
		{
			name: "separated on y",
			a:    box(0, 0, 1, 1),
			b:    box(0, -3, 1, 1),
		},
		{
			name: "touching edges do not overlap",
			a:    box(0, 0, 1, 1),
			b:    box(2, 0, 1, 1),
		},
		{
			name:     "brick entering a right-hand wall hits its left face",
			a:        box(0, 0, 50, 15),
			b:        box(53, 0, 5, 150),
			wantHit:  true,
			wantSide: SideLeft,
		},
		{
			name:     "brick entering a left-hand wall hits its right face",
			a:        box(0, 0, 50, 15),
			b:        box(-53, 0, 5, 150),
			wantHit:  true,
			wantSide: SideRight,
		},
		{
			name:     "brick landing on a floor hits its top face",
			a:        box(0, 0, 50, 15),
			b:        box(0, -18, 500, 5),
			wantHit:  true,
			wantSide: SideTop,
		},
		{
			name:     "brick rising into a ceiling hits its bottom face",
			a:        box(0, 0, 50, 15),
			b:        box(0, 18, 500, 5),
			wantHit:  true,
			wantSide: SideBottom,
		},
		{
			name:     "corner contact picks the shallower axis",
			a:        box(0, 0, 10, 10),
			b:        box(18, 19, 10, 10),
			wantHit:  true,
			wantSide: SideBottom,
		},
		{
			name:     "small box inside large box",
			a:        box(0, 0, 1, 1),
			b:        box(0, 0, 10, 10),
			wantHit:  true,
			wantSide: SideInside,
		},
		{
			name:     "large box covering small box",
			a:        box(0, 0, 10, 10),
			b:        box(1, 1, 1, 1),
			wantHit:  true,
			wantSide: SideInside,
		},
		{
			name:     "negative coordinates",
			a:        box(-100, -100, 5, 5),
			b:        box(-92, -100, 5, 5),
			wantHit:  true,
			wantSide: SideLeft,
		},
		{
			name:     "zero-area box strictly inside",
			a:        box(0, 0, 0, 0),
			b:        box(0, 0, 1, 1),
			wantHit:  true,
			wantSide: SideInside,
		},
		{
			name: "zero-area box on an edge",
			a:    box(1, 0, 0, 0),
			b:    box(0, 0, 1, 1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, hit := Detect(tc.a, tc.b)
			assert.Equal(t, tc.wantHit, hit)
			if tc.wantHit {
				assert.Equal(t, tc.wantSide, side, "got %s", side)
			}
		})
	}
}

func TestDetectIsMirroredWhenSwapped(t *testing.T) {
	brick := box(0, 0, 50, 15)
	wall := box(53, 0, 5, 150)

	side, hit := Detect(brick, wall)
	assert.True(t, hit)
	assert.Equal(t, SideLeft, side)

	side, hit = Detect(wall, brick)
	assert.True(t, hit)
	assert.Equal(t, SideRight, side)
}

func TestDetectIsDeterministic(t *testing.T) {
	a := box(12.5, -7.25, 50, 15)
	b := box(60, 0, 5, 150)

	side1, hit1 := Detect(a, b)
	for range 100 {
		side, hit := Detect(a, b)
		assert.Equal(t, side1, side)
		assert.Equal(t, hit1, hit)
	}
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "left", SideLeft.String())
	assert.Equal(t, "inside", SideInside.String())
	assert.Equal(t, "unknown", Side(99).String())
}
