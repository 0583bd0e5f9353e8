package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/config"
)

func newTank(x, y float64) *Tank {
	return &Tank{Kind: KindEnemy, X: x, Y: y, Facing: DirRight, Speed: 2}
}

func TestTankMove(t *testing.T) {
	tiles := NewTileMap(config.DefaultTanksConfig().Map)

	tests := []struct {
		name      string
		x, y      float64
		dir       Direction
		wantX     float64
		wantY     float64
		wantMoved bool
	}{
		{"free up", 540, 600, DirUp, 540, 598, true},
		{"free right", 540, 600, DirRight, 542, 600, true},
		{"left border", 16, 100, DirLeft, 16, 100, false},
		{"top border samples above box", 100, 16, DirUp, 100, 16, false},
		{"inner wall from below", 200, 256, DirUp, 200, 256, false},
		{"inner wall from above", 200, 446, DirDown, 200, 446, false},
		{"clear of inner wall", 200, 444, DirDown, 200, 446, true},
		{"right border", 1024, 100, DirRight, 1024, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tank := newTank(tt.x, tt.y)
			moved := tank.Move(tt.dir, tiles)
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
			if tank.X != tt.wantX || tank.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", tank.X, tank.Y, tt.wantX, tt.wantY)
			}
			if tank.Facing != tt.dir {
				t.Errorf("facing = %v, want %v even when blocked", tank.Facing, tt.dir)
			}
		})
	}
}

func TestLeadingEdgeSamples(t *testing.T) {
	got := leadingEdge(100, 200, DirRight, 16)
	want := [3]tileRef{{12, 8}, {13, 8}, {14, 8}}
	if got != want {
		t.Errorf("leadingEdge right = %v, want %v", got, want)
	}

	got = leadingEdge(100, 200, DirUp, 16)
	want = [3]tileRef{{12, 6}, {12, 7}, {12, 8}}
	if got != want {
		t.Errorf("leadingEdge up = %v, want %v", got, want)
	}
}

func TestAnimationPhase(t *testing.T) {
	tank := newTank(0, 0)
	if tank.AnimationPhase() != 0 {
		t.Fatal("fresh tank should be in phase 0")
	}
	tank.animCounter = animationStride
	if tank.AnimationPhase() != 1 {
		t.Errorf("phase after one stride = %d, want 1", tank.AnimationPhase())
	}
	tank.animCounter = 2 * animationStride
	if tank.AnimationPhase() != 0 {
		t.Errorf("phase after two strides = %d, want 0", tank.AnimationPhase())
	}
}
