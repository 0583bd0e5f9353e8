package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// Owner tags which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns the lower-case name of the owner.
func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Projectile is a bullet travelling in a straight line.
type Projectile struct {
	ID    EntityID
	Owner Owner
	X, Y  float64
	Dir   Direction
	Speed float64
	W, H  float64
	spent bool
}

// Advance moves the projectile one frame along its direction.
func (p *Projectile) Advance() {
	dx, dy := p.Dir.Delta()
	p.X += dx * p.Speed
	p.Y += dy * p.Speed
}

// Box returns the projectile's bounding box.
func (p *Projectile) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}
