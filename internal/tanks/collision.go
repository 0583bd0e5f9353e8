package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// tileRef addresses one grid cell.
type tileRef struct {
	Row, Col int
}

// leadingEdge returns the three cells touched by the leading edge of a tank
// at (x, y) moving in dir, sampled at offsets 0, +16 and +32 across the box.
// The upward edge is sampled one unit above the box.
func leadingEdge(x, y float64, dir Direction, tileSize float64) [3]tileRef {
	cell := func(v float64) int { return core.CellIndex(v, tileSize) }
	const half = TankSize / 2

	switch dir {
	case DirUp:
		row := cell(y - 1)
		return [3]tileRef{{row, cell(x)}, {row, cell(x + half)}, {row, cell(x + TankSize)}}
	case DirDown:
		row := cell(y + TankSize)
		return [3]tileRef{{row, cell(x)}, {row, cell(x + half)}, {row, cell(x + TankSize)}}
	case DirLeft:
		col := cell(x)
		return [3]tileRef{{cell(y), col}, {cell(y + half), col}, {cell(y + TankSize), col}}
	default:
		col := cell(x + TankSize)
		return [3]tileRef{{cell(y), col}, {cell(y + half), col}, {cell(y + TankSize), col}}
	}
}

// tankBlocked reports whether any leading-edge sample is a wall.
func tankBlocked(tiles *TileMap, x, y float64, dir Direction) bool {
	for _, ref := range leadingEdge(x, y, dir, tiles.TileSize()) {
		if tiles.IsWall(ref.Row, ref.Col) {
			return true
		}
	}
	return false
}

// resolveCollisions runs the once-per-tick pass over all live projectiles,
// then removes destroyed enemies and wall-spent projectiles.
//
// Enemy projectiles that hit the player are not removed, and a player
// projectile keeps testing remaining enemies after a kill.
func (w *World) resolveCollisions() {
	for _, p := range w.projectiles {
		if w.tiles.WallAt(p.X, p.Y) {
			p.spent = true
			w.emit(Explosion{Size: ExplosionSmall, X: p.X, Y: p.Y})
			continue
		}

		switch p.Owner {
		case OwnerEnemy:
			if p.Box().Overlaps(w.player.Box()) {
				w.hitPlayer(p)
			}
		case OwnerPlayer:
			for _, e := range w.enemies {
				if e.destroyed || !p.Box().Overlaps(e.tank.Box()) {
					continue
				}
				e.destroyed = true
				w.emit(Explosion{Size: ExplosionLarge, X: p.X, Y: p.Y})
				w.addScore(w.cfg.Scoring.PerKill)
			}
		}
	}

	w.sweep()
}

// hitPlayer applies an enemy projectile hit: one life lost and a respawn.
func (w *World) hitPlayer(p *Projectile) {
	w.player.Life--
	w.player.X = w.cfg.Player.StartX
	w.player.Y = w.cfg.Player.StartY
	w.emit(LifeChanged{Life: w.player.Life})
	w.emit(Explosion{Size: ExplosionLarge, X: p.X, Y: p.Y})
	w.emit(EntityMoved{ID: w.player.ID, X: w.player.X, Y: w.player.Y, Facing: w.player.Facing})
}

// sweep drops destroyed enemies and spent projectiles, preserving order.
func (w *World) sweep() {
	enemies := w.enemies[:0]
	for _, e := range w.enemies {
		if e.destroyed {
			w.emit(EntityDestroyed{ID: e.tank.ID, Kind: KindEnemy})
			continue
		}
		enemies = append(enemies, e)
	}
	clear(w.enemies[len(enemies):])
	w.enemies = enemies

	projectiles := w.projectiles[:0]
	for _, p := range w.projectiles {
		if p.spent {
			w.emit(EntityDestroyed{ID: p.ID, Kind: KindProjectile})
			continue
		}
		projectiles = append(projectiles, p)
	}
	clear(w.projectiles[len(projectiles):])
	w.projectiles = projectiles
}
