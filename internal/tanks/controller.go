package tanks

import (
	"math/rand"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Source is the randomness the simulation draws from.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Source interface {
	Intn(n int) int
	Float64() float64
	Int63() int64
}

// NewSource returns the default seeded source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// InputQuery answers whether an action is currently held.
// core.InputFrame implements it.
type InputQuery interface {
	Held(a core.Action) bool
}

// headings is the order random re-rolls index into.
var headings = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// EnemyController drives one enemy tank with a random walk and random fire.
type EnemyController struct {
	cfg config.EnemyConfig
	rng Source
}

// NewEnemyController creates a controller with its own random stream.
func NewEnemyController(cfg config.EnemyConfig, rng Source) *EnemyController {
	return &EnemyController{cfg: cfg, rng: rng}
}

// Think runs one frame for the tank: maybe re-roll heading, move, maybe fire.
// It returns true when a shot should be spawned this frame.
func (c *EnemyController) Think(t *Tank, frame int, tiles *TileMap) bool {
	if frame%c.cfg.TurnEvery == 0 {
		t.Facing = headings[c.rng.Intn(len(headings))]
	}

	t.Move(t.Facing, tiles)

	// The draw only happens once the cooldown has elapsed.
	if frame-t.LastShotFrame >= c.cfg.FireCooldown && c.rng.Intn(c.cfg.FireOdds) == 0 {
		t.LastShotFrame = frame
		return true
	}
	return false
}

// PlayerController drives the player tank from held actions.
type PlayerController struct {
	cfg config.PlayerConfig
}

// NewPlayerController creates the player controller.
func NewPlayerController(cfg config.PlayerConfig) *PlayerController {
	return &PlayerController{cfg: cfg}
}

// moveActions is the priority order when several directions are held.
var moveActions = [4]struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

// Think moves the player along at most one axis and reports whether to fire.
func (c *PlayerController) Think(t *Tank, frame int, tiles *TileMap, in InputQuery) bool {
	moving := false
	for _, m := range moveActions {
		if in.Held(m.action) {
			t.Move(m.dir, tiles)
			moving = true
			break
		}
	}

	if moving {
		t.animCounter++
	} else {
		t.animCounter = 0
	}

	if in.Held(core.ActionFire) && frame-t.LastShotFrame >= c.cfg.FireCooldown {
		t.LastShotFrame = frame
		return true
	}
	return false
}
