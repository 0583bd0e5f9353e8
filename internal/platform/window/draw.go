package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tanks/internal/tanks"
)

var (
	colBackground = color.RGBA{R: 10, G: 12, B: 10, A: 255}
	colWall       = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	colWallEdge   = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	colPlayer     = color.RGBA{R: 230, G: 200, B: 40, A: 255}
	colPlayerAlt  = color.RGBA{R: 200, G: 170, B: 30, A: 255}
	colEnemy      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colBarrel     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colShotPlayer = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colShotEnemy  = color.RGBA{R: 230, G: 60, B: 50, A: 255}
	colBlast      = color.RGBA{R: 255, G: 140, B: 0, A: 220}
	colBlastCore  = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	colOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	colAccent     = color.RGBA{R: 230, G: 200, B: 40, A: 255}
)

func drawTiles(screen *ebiten.Image, tiles *tanks.TileMap) {
	size := float32(tiles.TileSize())
	for row := 0; row < tiles.Rows(); row++ {
		for col := 0; col < tiles.Cols(); col++ {
			if !tiles.IsWall(row, col) {
				continue
			}
			x, y := float32(col)*size, float32(row)*size
			vector.FillRect(screen, x, y, size, size, colWall, false)
			vector.StrokeRect(screen, x, y, size, size, 1, colWallEdge, false)
		}
	}
}

// drawTank draws the hull with a barrel pointing along the facing.
func drawTank(screen *ebiten.Image, t tanks.Tank, body color.Color) {
	x, y := float32(t.X), float32(t.Y)
	const size = float32(tanks.TankSize)
	vector.FillRect(screen, x, y, size, size, body, false)
	vector.StrokeRect(screen, x, y, size, size, 1, colBarrel, false)

	const barrel, thick = size / 2, float32(6)
	cx, cy := x+size/2, y+size/2
	switch t.Facing {
	case tanks.DirUp:
		vector.FillRect(screen, cx-thick/2, y-2, thick, barrel+2, colBarrel, false)
	case tanks.DirDown:
		vector.FillRect(screen, cx-thick/2, cy, thick, barrel+2, colBarrel, false)
	case tanks.DirLeft:
		vector.FillRect(screen, x-2, cy-thick/2, barrel+2, thick, colBarrel, false)
	case tanks.DirRight:
		vector.FillRect(screen, cx, cy-thick/2, barrel+2, thick, colBarrel, false)
	}
}

func drawProjectile(screen *ebiten.Image, p tanks.Projectile) {
	c := colShotPlayer
	if p.Owner == tanks.OwnerEnemy {
		c = colShotEnemy
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), c, false)
}

func drawBlast(screen *ebiten.Image, b tanks.Blast) {
	r := float32(6)
	if b.Size == tanks.ExplosionLarge {
		r = 10 + float32(b.TTL)/2
	}
	x, y := float32(b.X), float32(b.Y)
	vector.FillCircle(screen, x, y, r, colBlast, true)
	vector.FillCircle(screen, x, y, r/2, colBlastCore, true)
}

func drawHUD(screen *ebiten.Image, w *tanks.World) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %d   Lives: %d   Enemies: %d", w.Score(), w.Player().Life, len(w.Enemies())),
		24, 20)
}

// drawPanel draws a centred box with one line of text per entry.
func drawPanel(screen *ebiten.Image, lines ...string) {
	const lineH, padX, padY, charW = 16, 16, 12, 6
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	bw := float32(maxLen*charW + 2*padX)
	bh := float32(len(lines)*lineH + 2*padY)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	sx := (float32(sw) - bw) / 2
	sy := (float32(sh) - bh) / 2

	vector.FillRect(screen, sx, sy, bw, bh, colOverlay, false)
	vector.StrokeRect(screen, sx, sy, bw, bh, 2, colAccent, false)
	for i, l := range lines {
		lx := (sw - len(l)*charW) / 2
		ebitenutil.DebugPrintAt(screen, l, lx, int(sy)+padY+i*lineH)
	}
}
