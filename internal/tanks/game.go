package tanks

import (
	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

const (
	smallBlastTicks = 12
	largeBlastTicks = 30
)

// Blast is a transient explosion effect kept for rendering only.
// It never feeds back into the simulation.
type Blast struct {
	Size ExplosionSize
	X, Y float64
	TTL  int
}

// Game adapts a Session to the platform's fixed-tick game loop.
type Game struct {
	cfg     config.TanksConfig
	session *Session

	lastEvents []Event
	blasts     []Blast
}

// New creates a Tank Battle game. Reset must be called before Step.
func New(cfg config.TanksConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tanks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tank Battle"
}

// Reset starts a fresh session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(g.cfg, cfg.Seed)
	g.lastEvents = g.session.DrainEvents()
	g.blasts = g.blasts[:0]
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.session.World()
	g.session.Step(in)
	if g.session.World() != before {
		// Restarted; effects from the old world are stale.
		g.blasts = g.blasts[:0]
	}

	g.ageBlasts()
	g.lastEvents = g.session.DrainEvents()
	for _, ev := range g.lastEvents {
		if ex, ok := ev.(Explosion); ok {
			ttl := smallBlastTicks
			if ex.Size == ExplosionLarge {
				ttl = largeBlastTicks
			}
			g.blasts = append(g.blasts, Blast{Size: ex.Size, X: ex.X, Y: ex.Y, TTL: ttl})
		}
	}

	return core.StepResult{State: g.State()}
}

// ageBlasts decrements effect lifetimes while the session is running.
func (g *Game) ageBlasts() {
	if g.session.State() != StateRunning {
		return
	}
	kept := g.blasts[:0]
	for _, b := range g.blasts {
		b.TTL--
		if b.TTL > 0 {
			kept = append(kept, b)
		}
	}
	g.blasts = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	w := g.session.World()
	return core.GameState{
		Score:    w.Score(),
		Life:     w.Player().Life,
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.session.State() == StatePaused,
		Quit:     g.session.QuitRequested(),
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session { return g.session }

// LastEvents returns the events produced by the most recent Step.
func (g *Game) LastEvents() []Event { return g.lastEvents }

// Blasts returns the active explosion effects.
func (g *Game) Blasts() []Blast { return g.blasts }

// Frames returns the current world's frame counter.
func (g *Game) Frames() int {
	if g.session == nil {
		return 0
	}
	return g.session.World().Frame()
}
