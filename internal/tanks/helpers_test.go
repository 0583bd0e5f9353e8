package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

// scriptedSource replays fixed draws. Once the script runs out Intn returns
// n-1, which never spawns and never fires.
type scriptedSource struct {
	ints  []int
	calls int
}

func (s *scriptedSource) Intn(n int) int {
	defer func() { s.calls++ }()
	if s.calls < len(s.ints) {
		return s.ints[s.calls] % n
	}
	return n - 1
}

func (s *scriptedSource) Float64() float64 { return 0.5 }

func (s *scriptedSource) Int63() int64 { return 7 }

// newQuietWorld returns a world that never spawns enemies on its own.
func newQuietWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.DefaultTanksConfig(), &scriptedSource{})
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func countExplosions(events []Event, size ExplosionSize) int {
	n := 0
	for _, ev := range events {
		if ex, ok := ev.(Explosion); ok && ex.Size == size {
			n++
		}
	}
	return n
}
