package planner

import (
	"github.com/vandriyan/autosnake/internal/core"
)

// Greedy is a single-step Manhattan-descent planner: it moves toward the
// target along the axis with the larger remaining delta and falls back to
// any free neighbor when the preferred moves are blocked. It returns only
// the immediate step, never a full route, and it can trap itself. It exists
// as a substitution hook for the planner contract, not as a serious
// alternative to A*.
type Greedy struct{}

func init() {
	Register("greedy", "single-step Manhattan descent, no lookahead", func() Planner {
		return &Greedy{}
	})
}

// ID returns the planner identifier.
func (p *Greedy) ID() string {
	return "greedy"
}

// FindPath returns [start] when already at the target, [start, next] when a
// legal step exists, and nil when every neighbor is blocked.
func (p *Greedy) FindPath(start, end core.Cell, b core.Bounds, occ Occupancy) []core.Cell {
	if start == end {
		return []core.Cell{start}
	}

	free := func(c core.Cell) bool {
		if !b.Contains(c) {
			return false
		}
		return c == end || !occ.Contains(c)
	}

	dx := end.X - start.X
	dy := end.Y - start.Y

	primary := core.Cell{X: start.X + sign(dx), Y: start.Y}
	secondary := core.Cell{X: start.X, Y: start.Y + sign(dy)}
	if core.Abs(dy) > core.Abs(dx) {
		primary, secondary = secondary, primary
	}

	for _, c := range []core.Cell{primary, secondary} {
		if c != start && free(c) {
			return []core.Cell{start, c}
		}
	}

	// Preferred moves blocked: take any free neighbor in the fixed order.
	for _, c := range start.Neighbors() {
		if free(c) {
			return []core.Cell{start, c}
		}
	}

	return nil
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
