package model

import (
	"cmp"
	"fmt"
	"slices"
)

// Cell is a coordinate on the unbounded plane. Coordinates near the int
// limits overflow when neighbors are computed; that range is not supported.
type Cell struct {
	X int
	Y int
}

// String returns the cell as "(x,y)"
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c translated by (dx, dy)
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Compare orders cells by x, then by y
func (c Cell) Compare(other Cell) int {
	if r := cmp.Compare(c.X, other.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, other.Y)
}

// Less reports whether c sorts before other
func (c Cell) Less(other Cell) bool {
	return c.Compare(other) < 0
}

// SortCells sorts cells in place by Compare
func SortCells(cells []Cell) {
	slices.SortFunc(cells, Cell.Compare)
}

// neighborOffsets lists the Moore neighborhood row by row: NW, N, NE, W, E, SW, S, SE.
var neighborOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the 8 cells at Chebyshev distance 1 from c
func Neighbors(c Cell) [8]Cell {
	var out [8]Cell
	for i, off := range neighborOffsets {
		out[i] = c.Add(off.X, off.Y)
	}
	return out
}
