package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// TankSize is the edge length of a tank's bounding box.
const TankSize = 32

// animationStride is the number of moving frames per animation phase.
const animationStride = 20

// EntityID identifies an entity for the lifetime of a World.
type EntityID uint32

// EntityKind distinguishes what an entity is for event consumers.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindProjectile
)

// String returns the lower-case name of the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Tank is the shared shape of the player and enemy tanks.
// X/Y is the top-left corner of a TankSize square.
type Tank struct {
	ID            EntityID
	Kind          EntityKind
	X, Y          float64
	Facing        Direction
	Speed         float64
	Life          int // Meaningful for the player only
	LastShotFrame int

	animCounter int
}

// Box returns the tank's bounding box.
func (t *Tank) Box() core.Box {
	return core.NewBox(t.X, t.Y, TankSize, TankSize)
}

// Alive reports whether the tank still has lives left.
func (t *Tank) Alive() bool {
	return t.Life > 0
}

// AnimationPhase returns the cosmetic sprite frame (0 or 1).
func (t *Tank) AnimationPhase() int {
	return (t.animCounter / animationStride) % 2
}

// Move advances the tank by its speed in dir. If any of the three leading-edge
// samples lands on a wall the step is undone. Facing always becomes dir.
// Returns whether the tank actually moved.
func (t *Tank) Move(dir Direction, tiles *TileMap) bool {
	t.Facing = dir

	dx, dy := dir.Delta()
	t.X += dx * t.Speed
	t.Y += dy * t.Speed

	if tankBlocked(tiles, t.X, t.Y, dir) {
		t.X -= dx * t.Speed
		t.Y -= dy * t.Speed
		return false
	}
	return true
}

// muzzle returns where a projectile fired by this tank starts.
func (t *Tank) muzzle(offsetX, offsetY float64) (float64, float64) {
	return t.X + offsetX, t.Y + offsetY
}
