// Package window runs the tank game in a desktop window using ebiten.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/tanks"
)

// Window size matches the classic 1080x720 frame.
const (
	DefaultWidth  = 1080
	DefaultHeight = 720
)

// App adapts a tanks.Game to ebiten.Game.
type App struct {
	game   *tanks.Game
	logger *log.Logger
	input  func() core.InputFrame
	state  tanks.SessionState
}

// NewApp creates an App and starts a fresh run. A nil logger discards.
func NewApp(game *tanks.Game, cfg core.RuntimeConfig, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)
	return &App{
		game:   game,
		logger: logger,
		input: func() core.InputFrame {
			return frameFrom(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
		},
	}
}

// Update advances the game one tick. It returns ebiten.Termination once the
// player quits from the pause screen.
func (a *App) Update() error {
	res := a.game.Step(a.input())

	if s := a.game.Session().State(); s != a.state {
		a.logger.Debug("state changed", "from", a.state, "to", s, "score", res.State.Score)
		a.state = s
	}
	if res.State.Quit {
		a.logger.Info("player quit", "score", res.State.Score)
		return ebiten.Termination
	}
	return nil
}

// Draw renders the world, HUD and any overlay.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	w := a.game.Session().World()
	drawTiles(screen, w.Tiles())
	for _, e := range w.Enemies() {
		drawTank(screen, e, colEnemy)
	}
	if p := w.Player(); p.Alive() {
		body := colPlayer
		if p.AnimationPhase() == 1 {
			body = colPlayerAlt
		}
		drawTank(screen, p, body)
	}
	for _, p := range w.Projectiles() {
		drawProjectile(screen, p)
	}
	for _, b := range a.game.Blasts() {
		drawBlast(screen, b)
	}
	drawHUD(screen, w)

	switch a.game.Session().State() {
	case tanks.StatePaused:
		drawPanel(screen, "Game Paused", "Restart? (R)", "P resume   ESC quit")
	case tanks.StateGameOver:
		drawPanel(screen, "GAME OVER", "Press R to Restart", fmt.Sprintf("Your Score is %d", w.Score()))
	}
}

// Layout fixes the logical screen to the map size.
func (a *App) Layout(_, _ int) (int, int) {
	tiles := a.game.Session().World().Tiles()
	return int(tiles.Width()), int(tiles.Height())
}

// Run opens the window and blocks until it closes.
func Run(game *tanks.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	app := NewApp(game, cfg, logger)

	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
