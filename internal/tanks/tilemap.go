package tanks

import (
	"fmt"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
)

// Tile is the content of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
)

// TileMap is the static wall grid. It is immutable after construction.
type TileMap struct {
	rows     int
	cols     int
	tileSize float64
	tiles    []Tile
}

// NewTileMap builds the fixed level: a wall border plus the configured
// horizontal inner walls.
func NewTileMap(cfg config.MapConfig) *TileMap {
	m := &TileMap{
		rows:     cfg.Rows,
		cols:     cfg.Cols,
		tileSize: cfg.TileSize,
		tiles:    make([]Tile, cfg.Rows*cfg.Cols),
	}

	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if row == 0 || row == m.rows-1 || col == 0 || col == m.cols-1 {
				m.tiles[row*m.cols+col] = TileWall
			}
		}
	}

	for _, w := range cfg.InnerWalls {
		for col := w.FromCol; col < w.ToCol; col++ {
			m.tiles[w.Row*m.cols+col] = TileWall
		}
	}

	return m
}

// Rows returns the number of tile rows.
func (m *TileMap) Rows() int { return m.rows }

// Cols returns the number of tile columns.
func (m *TileMap) Cols() int { return m.cols }

// TileSize returns the edge length of a tile in world units.
func (m *TileMap) TileSize() float64 { return m.tileSize }

// Width returns the map width in world units.
func (m *TileMap) Width() float64 { return float64(m.cols) * m.tileSize }

// Height returns the map height in world units.
func (m *TileMap) Height() float64 { return float64(m.rows) * m.tileSize }

// IsWall reports whether the cell at (row, col) is a wall.
// Callers must pass in-range indices; see checkIndex for what happens otherwise.
func (m *TileMap) IsWall(row, col int) bool {
	row, col = m.checkIndex(row, col)
	return m.tiles[row*m.cols+col] == TileWall
}

// CellAt converts a world position into (row, col) by floor division.
func (m *TileMap) CellAt(x, y float64) (row, col int) {
	return core.CellIndex(y, m.tileSize), core.CellIndex(x, m.tileSize)
}

// WallAt reports whether the world position lies inside a wall tile.
func (m *TileMap) WallAt(x, y float64) bool {
	row, col := m.CellAt(x, y)
	return m.IsWall(row, col)
}

// checkIndex enforces the in-range contract of IsWall. Builds tagged
// tanksdebug panic on violation; other builds clamp into the grid.
func (m *TileMap) checkIndex(row, col int) (int, int) {
	if row >= 0 && row < m.rows && col >= 0 && col < m.cols {
		return row, col
	}
	if strictContracts {
		panic(fmt.Sprintf("tanks: tile index (%d, %d) outside %dx%d map", row, col, m.rows, m.cols))
	}
	return core.Clamp(row, 0, m.rows-1), core.Clamp(col, 0, m.cols-1)
}
