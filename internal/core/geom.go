// Package core provides fundamental types and utilities shared by the simulation
// and its front ends. It has no external dependencies so the game logic stays
// pure and testable.
package core

import (
	"cmp"
	"math"
)

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with top-left (x, y) and size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Box is an axis-aligned bounding box in world units.
// Positions are continuous; X/Y is the top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box at (x, y) with the given size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

func (b Box) right() float64  { return b.X + b.W }
func (b Box) bottom() float64 { return b.Y + b.H }

// Overlaps reports whether the two boxes share a non-empty intersection area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.right() && other.X < b.right() &&
		b.Y < other.bottom() && other.Y < b.bottom()
}

// CellIndex converts a continuous coordinate into a grid index for the given cell size.
func CellIndex(v, size float64) int {
	return int(math.Floor(v / size))
}

// Clamp restricts v to [lo, hi]. When hi < lo the result is lo.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
