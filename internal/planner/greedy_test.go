package planner

import (
	"testing"

	"github.com/vandriyan/autosnake/internal/core"
)

func TestGreedyStepsTowardTarget(t *testing.T) {
	p := &Greedy{}
	b := core.Bounds{W: 32, H: 24}

	start := core.Cell{X: 5, Y: 5}
	end := core.Cell{X: 5, Y: 8}

	path := p.FindPath(start, end, b, occupy())
	if len(path) != 2 {
		t.Fatalf("expected [start, next], got %v", path)
	}
	if path[1] != (core.Cell{X: 5, Y: 6}) {
		t.Errorf("next step = %v, expected (5,6)", path[1])
	}

	// The step must reduce the Manhattan distance.
	if core.Manhattan(path[1], end) >= core.Manhattan(start, end) {
		t.Error("greedy step should move closer to the target")
	}
}

func TestGreedyPrefersLargerAxis(t *testing.T) {
	p := &Greedy{}
	b := core.Bounds{W: 32, H: 24}

	// dx=2, dy=7: the vertical axis dominates.
	path := p.FindPath(core.Cell{X: 5, Y: 5}, core.Cell{X: 7, Y: 12}, b, occupy())
	if len(path) != 2 || path[1] != (core.Cell{X: 5, Y: 6}) {
		t.Errorf("expected step to (5,6), got %v", path)
	}
}

func TestGreedySidestepsBlockedCell(t *testing.T) {
	p := &Greedy{}
	b := core.Bounds{W: 32, H: 24}

	start := core.Cell{X: 5, Y: 5}
	end := core.Cell{X: 5, Y: 8}
	occ := occupy(core.Cell{X: 5, Y: 6}) // preferred step blocked

	path := p.FindPath(start, end, b, occ)
	if len(path) != 2 {
		t.Fatalf("expected a sidestep, got %v", path)
	}
	if occ.Contains(path[1]) {
		t.Errorf("greedy stepped into occupied cell %v", path[1])
	}
	if !b.Contains(path[1]) {
		t.Errorf("greedy stepped out of bounds to %v", path[1])
	}
}

func TestGreedyTrapped(t *testing.T) {
	p := &Greedy{}
	b := core.Bounds{W: 32, H: 24}

	start := core.Cell{X: 5, Y: 5}
	occ := occupy(
		core.Cell{X: 6, Y: 5}, core.Cell{X: 4, Y: 5},
		core.Cell{X: 5, Y: 6}, core.Cell{X: 5, Y: 4},
	)

	if path := p.FindPath(start, core.Cell{X: 20, Y: 20}, b, occ); path != nil {
		t.Errorf("fully surrounded head should yield nil, got %v", path)
	}
}

func TestGreedyStartEqualsEnd(t *testing.T) {
	p := &Greedy{}
	b := core.Bounds{W: 8, H: 8}

	path := p.FindPath(core.Cell{X: 3, Y: 3}, core.Cell{X: 3, Y: 3}, b, occupy())
	if len(path) != 1 {
		t.Errorf("start==end should yield single-element path, got %v", path)
	}
}
