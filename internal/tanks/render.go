package tanks

import (
	"fmt"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Terminal projection: one map tile is two columns wide and one row tall.
const (
	hudRows     = 2
	colsPerTile = 2
)

var facingGlyph = map[Direction]rune{
	DirUp:    '▲',
	DirDown:  '▼',
	DirLeft:  '◀',
	DirRight: '▶',
}

// viewport maps world pixels onto screen cells below the HUD.
type viewport struct {
	pxPerCol float64
	pxPerRow float64
	offX     int // screen column of map column 0
	offY     int // screen row of map row 0
	width    int
	height   int
}

// newViewport centres the camera on the player, clamped to the map edges.
// A map narrower than the screen is centred instead.
func newViewport(dst *core.Screen, tiles *TileMap, player Tank) viewport {
	v := viewport{
		pxPerCol: tiles.TileSize() / colsPerTile,
		pxPerRow: tiles.TileSize(),
		width:    dst.Width(),
		height:   dst.Height() - hudRows,
	}
	mapW := tiles.Cols() * colsPerTile
	mapH := tiles.Rows()

	v.offX = axisOffset(mapW, v.width, core.CellIndex(player.X+TankSize/2, v.pxPerCol))
	v.offY = hudRows + axisOffset(mapH, v.height, core.CellIndex(player.Y+TankSize/2, v.pxPerRow))
	return v
}

func axisOffset(mapSize, viewSize, focus int) int {
	if mapSize <= viewSize {
		return (viewSize - mapSize) / 2
	}
	cam := core.Clamp(focus-viewSize/2, 0, mapSize-viewSize)
	return -cam
}

func (v viewport) project(x, y float64) (int, int) {
	return v.offX + core.CellIndex(x, v.pxPerCol), v.offY + core.CellIndex(y, v.pxPerRow)
}

func (v viewport) set(dst *core.Screen, sx, sy int, r rune, c core.Color) {
	if sy < hudRows || sy >= hudRows+v.height || sx < 0 || sx >= v.width {
		return
	}
	dst.SetColored(sx, sy, r, c)
}

// Render draws the HUD, the map around the player and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	w := g.session.World()

	g.renderHUD(dst, w)
	if dst.Height() <= hudRows {
		return
	}

	v := newViewport(dst, w.Tiles(), w.Player())
	renderTiles(dst, v, w.Tiles())
	for _, e := range w.Enemies() {
		renderTank(dst, v, e, core.ColorWhite)
	}
	if p := w.Player(); p.Alive() {
		renderTank(dst, v, p, core.ColorBrightYellow)
	}
	for _, p := range w.Projectiles() {
		c := core.ColorBrightWhite
		if p.Owner == OwnerEnemy {
			c = core.ColorRed
		}
		sx, sy := v.project(p.X+p.W/2, p.Y+p.H/2)
		v.set(dst, sx, sy, '•', c)
	}
	for _, b := range g.blasts {
		renderBlast(dst, v, b)
	}

	switch g.session.State() {
	case StatePaused:
		renderOverlay(dst, core.ColorBrightWhite, "Game Paused", "Restart? (R)")
	case StateGameOver:
		renderOverlay(dst, core.ColorBrightRed, "GAME OVER", "Press R to Restart", fmt.Sprintf("Your Score is %d", w.Score()))
	}
}

func (g *Game) renderHUD(dst *core.Screen, w *World) {
	p := w.Player()
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", w.Score()), core.ColorBrightWhite)
	dst.DrawTextColored(16, 0, fmt.Sprintf("Lives: %d", p.Life), core.ColorYellow)
	dst.DrawTextColored(29, 0, fmt.Sprintf("Enemies: %d", len(w.Enemies())), core.ColorWhite)
	status := "[P]ause"
	if g.session.State() == StatePaused {
		status = "[P]resume [R]estart [Esc]quit"
	}
	dst.DrawTextColored(dst.Width()-len(status)-1, 0, status, core.ColorGray)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func renderTiles(dst *core.Screen, v viewport, tiles *TileMap) {
	for row := 0; row < tiles.Rows(); row++ {
		for col := 0; col < tiles.Cols(); col++ {
			if !tiles.IsWall(row, col) {
				continue
			}
			sx := v.offX + col*colsPerTile
			sy := v.offY + row
			for i := 0; i < colsPerTile; i++ {
				v.set(dst, sx+i, sy, '█', core.ColorGray)
			}
		}
	}
}

// renderTank draws the tank's footprint with a facing glyph in the middle.
func renderTank(dst *core.Screen, v viewport, t Tank, c core.Color) {
	body := '▓'
	if t.AnimationPhase() == 1 {
		body = '▒'
	}
	sx, sy := v.project(t.X, t.Y)
	w := core.CellIndex(TankSize, v.pxPerCol)
	h := core.CellIndex(TankSize, v.pxPerRow)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			v.set(dst, sx+dx, sy+dy, body, c)
		}
	}
	v.set(dst, sx+w/2, sy+h/2, facingGlyph[t.Facing], c)
}

func renderBlast(dst *core.Screen, v viewport, b Blast) {
	sx, sy := v.project(b.X, b.Y)
	if b.Size == ExplosionSmall {
		v.set(dst, sx, sy, '*', core.ColorOrange)
		return
	}
	r := '#'
	c := core.ColorBrightRed
	if b.TTL%8 < 4 {
		r = '%'
		c = core.ColorOrange
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -2; dx <= 2; dx++ {
			v.set(dst, sx+dx, sy+dy, r, c)
		}
	}
}

// renderOverlay draws a centred box holding the given lines.
func renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxLen {
			maxLen = n
		}
	}
	boxW := maxLen + 6
	boxH := len(lines)*2 + 3
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i*2, l, c)
	}
}
