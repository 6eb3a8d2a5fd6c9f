package game

import (
	"github.com/vandriyan/autosnake/internal/core"
)

// CellSet is the set of cells currently covered by the agent's body. It
// gives the planner and the collision check O(1) membership tests instead
// of a linear scan over the segments.
type CellSet map[core.Cell]struct{}

// NewCellSet returns an empty set.
func NewCellSet() CellSet {
	return make(CellSet)
}

// Contains reports whether the cell is occupied.
func (s CellSet) Contains(c core.Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of occupied cells.
func (s CellSet) Len() int {
	return len(s)
}

// Rebuild replaces the set contents to exactly match the given segment
// sequence. Called after every agent mutation so the next planner run sees
// correct obstacles; no stale or partial state is observable between ticks.
func (s CellSet) Rebuild(segments []core.Cell) {
	clear(s)
	for _, seg := range segments {
		s[seg] = struct{}{}
	}
}
