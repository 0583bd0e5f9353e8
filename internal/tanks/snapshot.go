package tanks

import "math"

// Snapshot captures the session state for determinism testing and replay checks.
type Snapshot struct {
	Frame   int
	Score   int
	Life    int
	State   SessionState
	PlayerX float64
	PlayerY float64
	Facing  Direction

	EnemyCount      int
	ProjectileCount int

	// EnemyData holds x, y and facing for each enemy in spawn order.
	EnemyData []float64
	// ProjectileData holds x, y, direction and owner for each projectile.
	ProjectileData []float64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Frame:           w.frame,
		Score:           w.score,
		Life:            w.player.Life,
		State:           s.state,
		PlayerX:         w.player.X,
		PlayerY:         w.player.Y,
		Facing:          w.player.Facing,
		EnemyCount:      len(w.enemies),
		ProjectileCount: len(w.projectiles),
	}

	for _, e := range w.enemies {
		snap.EnemyData = append(snap.EnemyData, e.tank.X, e.tank.Y, float64(e.tank.Facing))
	}
	for _, p := range w.projectiles {
		snap.ProjectileData = append(snap.ProjectileData, p.X, p.Y, float64(p.Dir), float64(p.Owner))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Life)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.Facing)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
