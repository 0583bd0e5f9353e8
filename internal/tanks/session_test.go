package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

func newTestSession() *Session {
	return NewSession(config.DefaultTanksConfig(), 42)
}

func press(a core.Action) core.InputFrame {
	return core.FrameOf(a)
}

func TestSessionPauseToggle(t *testing.T) {
	s := newTestSession()
	s.Step(idle())
	if s.World().Frame() != 1 {
		t.Fatalf("frame = %d, want 1", s.World().Frame())
	}

	if got := s.Step(press(core.ActionPause)); got != StatePaused {
		t.Fatalf("state = %v, want paused", got)
	}
	for i := 0; i < 10; i++ {
		s.Step(idle())
	}
	if s.World().Frame() != 1 {
		t.Errorf("frame advanced to %d while paused", s.World().Frame())
	}

	if got := s.Step(press(core.ActionPause)); got != StateRunning {
		t.Fatalf("state = %v, want running", got)
	}
	if s.World().Frame() != 1 {
		t.Error("the resume tick should not also update")
	}
	s.Step(idle())
	if s.World().Frame() != 2 {
		t.Errorf("frame = %d, want 2", s.World().Frame())
	}
}

func TestSessionQuitOnlyWhilePaused(t *testing.T) {
	s := newTestSession()
	s.Step(press(core.ActionQuit))
	if s.QuitRequested() {
		t.Fatal("quit must be ignored while running")
	}
	if s.World().Frame() != 1 {
		t.Error("ignored quit should still update the world")
	}

	s.Step(press(core.ActionPause))
	s.Step(press(core.ActionQuit))
	if !s.QuitRequested() {
		t.Error("quit from the pause screen should be requested")
	}
}

func TestSessionRestartIgnoredWhileRunning(t *testing.T) {
	s := newTestSession()
	w := s.World()
	s.Step(press(core.ActionRestart))
	if s.World() != w {
		t.Error("restart must be ignored while running")
	}
	if w.Frame() != 1 {
		t.Errorf("frame = %d, want 1", w.Frame())
	}
}

func assertFreshWorld(t *testing.T, s *Session) {
	t.Helper()
	w := s.World()
	p := w.Player()
	if s.State() != StateRunning {
		t.Errorf("state = %v, want running", s.State())
	}
	if w.Frame() != 0 || w.Score() != 0 || p.Life != 3 {
		t.Errorf("frame %d score %d life %d, want 0 0 3", w.Frame(), w.Score(), p.Life)
	}
	if len(w.Enemies()) != 0 || len(w.Projectiles()) != 0 {
		t.Errorf("enemies %d projectiles %d, want none", len(w.Enemies()), len(w.Projectiles()))
	}
	if p.X != 540 || p.Y != 600 {
		t.Errorf("player at (%v, %v), want (540, 600)", p.X, p.Y)
	}
}

func TestSessionRestartFromPaused(t *testing.T) {
	s := newTestSession()
	in := core.FrameOf(core.ActionFire)
	for i := 0; i < 100; i++ {
		s.Step(in)
	}
	if len(s.World().Projectiles()) == 0 {
		t.Fatal("expected projectiles before restart")
	}

	s.Step(press(core.ActionPause))
	s.Step(press(core.ActionRestart))
	assertFreshWorld(t, s)
}

func TestSessionGameOverAndRestart(t *testing.T) {
	s := newTestSession()
	w := s.World()
	w.player.Life = 1
	w.projectiles = append(w.projectiles, &Projectile{ID: 99, Owner: OwnerEnemy, X: 545, Y: 605, Dir: DirUp, Speed: 4, W: 13, H: 10})
	s.DrainEvents()

	if got := s.Step(idle()); got != StateGameOver {
		t.Fatalf("state = %v, want gameover", got)
	}
	var changed *SessionStateChanged
	for _, ev := range s.DrainEvents() {
		if sc, ok := ev.(SessionStateChanged); ok {
			changed = &sc
		}
	}
	if changed == nil || changed.From != StateRunning || changed.To != StateGameOver {
		t.Errorf("state change event = %+v, want running -> gameover", changed)
	}

	frame := w.Frame()
	s.Step(press(core.ActionPause))
	s.Step(idle())
	if s.State() != StateGameOver || w.Frame() != frame {
		t.Error("game over must ignore pause and freeze the world")
	}

	s.Step(press(core.ActionRestart))
	assertFreshWorld(t, s)
	if s.World() == w {
		t.Error("restart should build a new world")
	}
}

func TestSessionStateString(t *testing.T) {
	tests := map[SessionState]string{
		StateRunning:     "running",
		StatePaused:      "paused",
		StateGameOver:    "gameover",
		SessionState(99): "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
