// Package core provides fundamental types and utilities for the autosnake
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep the decision core pure and testable.
package core

// Cell identifies one discrete grid square by integer column/row indices.
// Cells compare and hash by value, which makes them safe map keys for
// occupancy and visited-set lookups.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors returns the four orthogonal neighbors in a fixed order:
// +x, -x, +y, -y. Equal-priority frontier entries in the path search are
// discovered in this order, so changing it changes which of several equally
// short paths is returned.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
	}
}

// Manhattan returns the L1 distance between two cells. Used as the A*
// heuristic: admissible and consistent on a 4-connected uniform-cost grid.
func Manhattan(a, b Cell) int {
	return Abs(b.X-a.X) + Abs(b.Y-a.Y)
}

// Bounds describes the grid extent in cells.
type Bounds struct {
	W, H int
}

// Contains returns true iff the cell lies within [0, W) x [0, H).
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Cells returns the total number of cells on the grid.
func (b Bounds) Cells() int {
	return b.W * b.H
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
