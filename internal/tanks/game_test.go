package tanks

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

func newTestGame() *Game {
	g := New(config.DefaultTanksConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345})
	return g
}

func TestGameMetadata(t *testing.T) {
	g := New(config.DefaultTanksConfig())
	if g.ID() != "tanks" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() != "Tank Battle" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestGameStepReportsState(t *testing.T) {
	g := newTestGame()

	res := g.Step(core.NewInputFrame())
	if res.State.Life != 3 || res.State.Score != 0 || res.State.GameOver || res.State.Paused {
		t.Errorf("state = %+v", res.State)
	}

	res = g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Error("expected paused state")
	}
	res = g.Step(press(core.ActionQuit))
	if !res.State.Quit {
		t.Error("expected quit from pause")
	}
}

func TestGameTracksBlasts(t *testing.T) {
	g := newTestGame()
	w := g.Session().World()
	w.projectiles = append(w.projectiles, &Projectile{ID: 99, Owner: OwnerPlayer, X: 18, Y: 300, Dir: DirLeft, Speed: 4, W: 13, H: 10})

	g.Step(core.NewInputFrame())
	if len(g.Blasts()) != 1 || g.Blasts()[0].Size != ExplosionSmall {
		t.Fatalf("blasts = %+v, want one small", g.Blasts())
	}
	if countExplosions(g.LastEvents(), ExplosionSmall) != 1 {
		t.Error("LastEvents should carry the explosion")
	}

	for i := 0; i < smallBlastTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.Blasts()) != 0 {
		t.Errorf("blasts = %d, want expired", len(g.Blasts()))
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Lives: 3") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), '▶') {
		t.Error("player facing glyph not drawn")
	}
	if !strings.ContainsRune(screen.String(), '█') {
		t.Error("walls not drawn")
	}

	g.Step(press(core.ActionPause))
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Game Paused") || !strings.Contains(out, "Restart? (R)") {
		t.Errorf("pause overlay missing:\n%s", out)
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame()
	w := g.Session().World()
	w.player.Life = 1
	w.score = 300
	w.projectiles = append(w.projectiles, &Projectile{ID: 99, Owner: OwnerEnemy, X: 545, Y: 605, Dir: DirUp, Speed: 4, W: 13, H: 10})
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "Press R to Restart", "Your Score is 300"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over overlay missing %q", want)
		}
	}
}

func TestViewportCentresSmallMap(t *testing.T) {
	if off := axisOffset(10, 30, 5); off != 10 {
		t.Errorf("offset = %d, want 10", off)
	}
	if off := axisOffset(134, 80, 0); off != 0 {
		t.Errorf("offset at left edge = %d, want 0", off)
	}
	if off := axisOffset(134, 80, 133); off != -54 {
		t.Errorf("offset at right edge = %d, want -54", off)
	}
	if off := axisOffset(134, 80, 70); off != -30 {
		t.Errorf("offset centred = %d, want -30", off)
	}
}
