package tanks

import (
	"github.com/vovakirdan/tui-tanks/internal/config"
)

// enemy pairs an enemy tank with its controller.
type enemy struct {
	tank      *Tank
	ai        *EnemyController
	destroyed bool
}

// World owns every entity of one run and advances them once per Update.
// It is not safe for concurrent use; readers must not overlap with Update.
type World struct {
	cfg        config.TanksConfig
	tiles      *TileMap
	rng        Source
	difficulty *config.DifficultyManager

	player      *Tank
	playerAI    *PlayerController
	enemies     []*enemy
	projectiles []*Projectile

	frame  int
	score  int
	nextID EntityID
	events []Event
}

// NewWorld creates a fresh world: frame 0, score 0, full lives, no enemies
// or projectiles, player at the start position.
func NewWorld(cfg config.TanksConfig, rng Source) *World {
	w := &World{
		cfg:        cfg,
		tiles:      NewTileMap(cfg.Map),
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		playerAI:   NewPlayerController(cfg.Player),
	}

	w.player = &Tank{
		ID:            w.allocID(),
		Kind:          KindPlayer,
		X:             cfg.Player.StartX,
		Y:             cfg.Player.StartY,
		Facing:        DirRight,
		Speed:         cfg.Player.Speed,
		Life:          cfg.Player.Lives,
		LastShotFrame: cfg.Player.InitialShotAt,
	}
	w.emit(EntityCreated{ID: w.player.ID, Kind: KindPlayer, X: w.player.X, Y: w.player.Y, Facing: w.player.Facing})

	return w
}

// Update advances the world by one tick. The frame counter always
// increments; nothing else happens once the player is out of lives.
func (w *World) Update(in InputQuery) {
	if w.player.Alive() {
		w.maybeSpawnEnemy()
		w.updateEnemies()
		w.updatePlayer(in)
		w.updateProjectiles()
		w.resolveCollisions()
	}
	w.frame++
}

// maybeSpawnEnemy rolls the per-frame spawn chance.
func (w *World) maybeSpawnEnemy() {
	odds := w.difficulty.SpawnOdds(w.cfg.Enemy.SpawnOdds, w.score, w.frame)
	if w.rng.Intn(odds) != 0 {
		return
	}
	ec := w.cfg.Enemy
	x := ec.SpawnMinX + ec.SpawnWidth*w.rng.Float64()
	y := ec.SpawnMinY + ec.SpawnHeight*w.rng.Float64()
	w.SpawnEnemy(x, y, NewSource(w.rng.Int63()))
}

// SpawnEnemy adds an enemy tank at (x, y) facing right, driven by rng.
func (w *World) SpawnEnemy(x, y float64, rng Source) EntityID {
	t := &Tank{
		ID:     w.allocID(),
		Kind:   KindEnemy,
		X:      x,
		Y:      y,
		Facing: DirRight,
		Speed:  w.cfg.Enemy.Speed,
	}
	w.enemies = append(w.enemies, &enemy{tank: t, ai: NewEnemyController(w.cfg.Enemy, rng)})
	w.emit(EntityCreated{ID: t.ID, Kind: KindEnemy, X: t.X, Y: t.Y, Facing: t.Facing})
	return t.ID
}

func (w *World) updateEnemies() {
	for _, e := range w.enemies {
		x, y, facing := e.tank.X, e.tank.Y, e.tank.Facing
		fire := e.ai.Think(e.tank, w.frame, w.tiles)
		w.emitMoved(e.tank, x, y, facing)
		if fire {
			w.fire(OwnerEnemy, e.tank)
		}
	}
}

func (w *World) updatePlayer(in InputQuery) {
	x, y, facing := w.player.X, w.player.Y, w.player.Facing
	fire := w.playerAI.Think(w.player, w.frame, w.tiles, in)
	w.emitMoved(w.player, x, y, facing)
	if fire {
		w.fire(OwnerPlayer, w.player)
	}
}

func (w *World) updateProjectiles() {
	for _, p := range w.projectiles {
		p.Advance()
		w.emit(EntityMoved{ID: p.ID, X: p.X, Y: p.Y, Facing: p.Dir})
	}
}

// fire spawns a projectile at the tank's muzzle in its current facing.
func (w *World) fire(owner Owner, t *Tank) {
	pc := w.cfg.Projectile
	x, y := t.muzzle(pc.OffsetX, pc.OffsetY)
	p := &Projectile{
		ID:    w.allocID(),
		Owner: owner,
		X:     x,
		Y:     y,
		Dir:   t.Facing,
		Speed: pc.Speed,
		W:     pc.Width,
		H:     pc.Height,
	}
	w.projectiles = append(w.projectiles, p)
	w.emit(EntityCreated{ID: p.ID, Kind: KindProjectile, X: p.X, Y: p.Y, Facing: p.Dir})
}

func (w *World) addScore(points int) {
	if points <= 0 {
		return
	}
	w.score += points
	w.emit(ScoreChanged{Score: w.score})
}

func (w *World) emitMoved(t *Tank, oldX, oldY float64, oldFacing Direction) {
	if t.X == oldX && t.Y == oldY && t.Facing == oldFacing {
		return
	}
	w.emit(EntityMoved{ID: t.ID, X: t.X, Y: t.Y, Facing: t.Facing})
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

func (w *World) allocID() EntityID {
	w.nextID++
	return w.nextID
}

// DrainEvents returns the events buffered since the last call.
func (w *World) DrainEvents() []Event {
	events := w.events
	w.events = nil
	return events
}

// Frame returns the number of completed updates.
func (w *World) Frame() int { return w.frame }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Tiles returns the read-only tile map.
func (w *World) Tiles() *TileMap { return w.tiles }

// Player returns a copy of the player tank.
func (w *World) Player() Tank { return *w.player }

// Enemies returns copies of the live enemy tanks in spawn order.
func (w *World) Enemies() []Tank {
	out := make([]Tank, len(w.enemies))
	for i, e := range w.enemies {
		out[i] = *e.tank
	}
	return out
}

// Projectiles returns copies of the live projectiles in creation order.
func (w *World) Projectiles() []Projectile {
	out := make([]Projectile, len(w.projectiles))
	for i, p := range w.projectiles {
		out[i] = *p
	}
	return out
}
