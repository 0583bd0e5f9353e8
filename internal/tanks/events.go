package tanks

// Event is something the presentation layer may want to react to.
// Events are buffered during a tick and handed over by DrainEvents.
type Event interface {
	tankEvent()
}

// ExplosionSize distinguishes wall impacts from tank hits.
type ExplosionSize int

const (
	ExplosionSmall ExplosionSize = iota // Projectile hit a wall
	ExplosionLarge                      // Projectile hit a tank
)

// String returns the lower-case name of the size.
func (s ExplosionSize) String() string {
	if s == ExplosionSmall {
		return "small"
	}
	return "large"
}

// EntityCreated is emitted when a tank or projectile enters the world.
type EntityCreated struct {
	ID     EntityID
	Kind   EntityKind
	X, Y   float64
	Facing Direction
}

func (EntityCreated) tankEvent() {}

// EntityMoved is emitted when an entity's position or facing changed.
type EntityMoved struct {
	ID     EntityID
	X, Y   float64
	Facing Direction
}

func (EntityMoved) tankEvent() {}

// EntityDestroyed is emitted when an entity leaves the world.
type EntityDestroyed struct {
	ID   EntityID
	Kind EntityKind
}

func (EntityDestroyed) tankEvent() {}

// Explosion is emitted at the projectile's position on impact.
type Explosion struct {
	Size ExplosionSize
	X, Y float64
}

func (Explosion) tankEvent() {}

// ScoreChanged carries the new score after a kill.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) tankEvent() {}

// LifeChanged carries the player's remaining lives after a hit.
type LifeChanged struct {
	Life int
}

func (LifeChanged) tankEvent() {}

// SessionStateChanged is emitted by the Session on every transition.
type SessionStateChanged struct {
	From, To SessionState
}

func (SessionStateChanged) tankEvent() {}
