package sim

import (
	"github.com/vovakirdan/bricktoy/internal/config"
	"github.com/vovakirdan/bricktoy/internal/core"
	"github.com/vovakirdan/bricktoy/internal/world"
)

// WallLocation names one of the four arena walls.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// Walls lists the walls in spawn order.
var Walls = []WallLocation{WallLeft, WallRight, WallBottom, WallTop}

// Position returns the wall's center.
func (l WallLocation) Position(a config.ArenaConfig) core.Vec2 {
	switch l {
	case WallLeft:
		return core.V2(a.Left, 0)
	case WallRight:
		return core.V2(a.Right, 0)
	case WallBottom:
		return core.V2(0, a.Bottom)
	default:
		return core.V2(0, a.Top)
	}
}

// Size returns the wall's full size. Walls overhang by one thickness so the
// corners are closed.
func (l WallLocation) Size(a config.ArenaConfig) core.Vec2 {
	switch l {
	case WallLeft, WallRight:
		return core.V2(a.WallThickness, a.Height()+a.WallThickness)
	default:
		return core.V2(a.Width()+a.WallThickness, a.WallThickness)
	}
}

// Draw order and colors.
const (
	zWall  = 0
	zBrick = 0
	zBall  = 1
)

var (
	wallLook  = world.Appearance{Color: core.ColorDarkGray, Shape: world.ShapeRect}
	ballLook  = world.Appearance{Color: core.ColorPeriwinkle, Shape: world.ShapeRound}
	brickLook = world.Appearance{Color: core.ColorPeriwinkle, Shape: world.ShapeRect}
)

// Setup validates cfg and spawns the four walls, the controlled ball and the
// kinetic brick, in that order.
func Setup(cfg config.ToyConfig) (*world.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := world.New()

	for _, loc := range Walls {
		pos := loc.Position(cfg.Arena)
		size := loc.Size(cfg.Arena)
		if _, err := w.Spawn(
			world.Position{X: pos.X, Y: pos.Y, Z: zWall},
			world.ExtentFromSize(size.X, size.Y),
			wallLook,
			world.Collidable{},
		); err != nil {
			return nil, err
		}
	}

	if _, err := w.Spawn(
		world.Position{X: cfg.Ball.StartX, Y: cfg.Ball.StartY, Z: zBall},
		world.ExtentFromSize(cfg.Ball.Size, cfg.Ball.Size),
		ballLook,
		world.Controlled{},
	); err != nil {
		return nil, err
	}

	vel := core.V2(cfg.Brick.DirX, cfg.Brick.DirY).Normalize().Scale(cfg.Brick.Speed)
	if _, err := w.Spawn(
		world.Position{X: cfg.Brick.StartX, Y: cfg.Brick.StartY, Z: zBrick},
		world.ExtentFromSize(cfg.Brick.Width, cfg.Brick.Height),
		world.Velocity{X: vel.X, Y: vel.Y},
		brickLook,
		world.Collidable{},
		world.Kinetic{},
	); err != nil {
		return nil, err
	}

	return w, nil
}
