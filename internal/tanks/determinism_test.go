package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

// scriptedInput cycles through movement while holding fire.
func scriptedInput(tick int) core.InputFrame {
	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	return core.FrameOf(moves[(tick/45)%len(moves)], core.ActionFire)
}

func runSession(seed int64, ticks int) Snapshot {
	s := NewSession(config.DefaultTanksConfig(), seed)
	for i := 0; i < ticks; i++ {
		s.Step(scriptedInput(i))
		if s.State() == StateGameOver {
			break
		}
	}
	return s.Snapshot()
}

func TestDeterminism(t *testing.T) {
	snap1 := runSession(12345, 3000)
	snap2 := runSession(12345, 3000)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Frame != snap2.Frame || snap1.Score != snap2.Score || snap1.Life != snap2.Life {
		t.Errorf("snapshot mismatch: %+v vs %+v", snap1, snap2)
	}
	if snap1.EnemyCount != snap2.EnemyCount || snap1.ProjectileCount != snap2.ProjectileCount {
		t.Errorf("roster mismatch: %d/%d vs %d/%d",
			snap1.EnemyCount, snap1.ProjectileCount, snap2.EnemyCount, snap2.ProjectileCount)
	}
}

func TestDeterminismAcrossRestart(t *testing.T) {
	s1 := NewSession(config.DefaultTanksConfig(), 7)
	s2 := NewSession(config.DefaultTanksConfig(), 7)

	steps := []core.InputFrame{}
	for i := 0; i < 500; i++ {
		steps = append(steps, scriptedInput(i))
	}
	steps = append(steps, press(core.ActionPause), press(core.ActionRestart))
	for i := 0; i < 500; i++ {
		steps = append(steps, scriptedInput(i))
	}

	for _, in := range steps {
		s1.Step(in)
		s2.Step(in)
	}

	a, b := s1.Snapshot(), s2.Snapshot()
	if a.Hash() != b.Hash() {
		t.Errorf("hash mismatch after restart: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestSnapshotHashSensitive(t *testing.T) {
	s := NewSession(config.DefaultTanksConfig(), 1)
	a := s.Snapshot()
	s.Step(idle())
	b := s.Snapshot()
	if a.Hash() == b.Hash() {
		t.Error("hash should change when the frame advances")
	}
}
