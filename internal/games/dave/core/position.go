// Package core provides the simulation core for Dangerous Dave.
// It is UI-agnostic and deterministic: given the current world state, a level
// and one input snapshot, a tick always produces the same next state.
package core

import "golang.org/x/exp/constraints"

// Grid and view dimensions, in cells unless noted.
const (
	TileSize    = 16 // pixels per cell edge
	LevelWidth  = 100
	LevelHeight = 10
	ViewWidth   = 20
	MaxViewX    = LevelWidth - ViewWidth
)

// Position is a 2D coordinate. Grid cells use int8, pixels use int16 so that
// transient off-map values during movement stay representable.
type Position[T constraints.Integer] struct {
	X, Y T
}

// Cell is a position in grid space.
type Cell = Position[int8]

// Pixel is a position in pixel space.
type Pixel = Position[int16]

// Pos builds a Position.
func Pos[T constraints.Integer](x, y T) Position[T] {
	return Position[T]{X: x, Y: y}
}

// Add returns the position offset by (dx, dy).
func (p Position[T]) Add(dx, dy T) Position[T] {
	return Position[T]{X: p.X + dx, Y: p.Y + dy}
}

// IsZero reports whether both components are zero.
func (p Position[T]) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// CellOf converts a pixel position to the cell containing it.
// Division floors, so pixels left of or above the map land in negative cells.
func CellOf(p Pixel) Cell {
	return Cell{X: int8(floorDiv(p.X, TileSize)), Y: int8(floorDiv(p.Y, TileSize))}
}

// PixelOf returns the top-left pixel of a cell.
func PixelOf(c Cell) Pixel {
	return Pixel{X: int16(c.X) * TileSize, Y: int16(c.Y) * TileSize}
}

func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
