package planner

import (
	"testing"

	"github.com/vandriyan/autosnake/internal/core"
)

// checkPathValid verifies the structural path invariants: endpoints match,
// consecutive cells are orthogonal neighbors, interior cells are free.
func checkPathValid(t *testing.T, path []core.Cell, start, end core.Cell, occ Occupancy) {
	t.Helper()

	if len(path) == 0 {
		t.Fatal("path is empty")
	}
	if path[0] != start {
		t.Errorf("path starts at %v, expected %v", path[0], start)
	}
	if path[len(path)-1] != end {
		t.Errorf("path ends at %v, expected %v", path[len(path)-1], end)
	}

	for i := 1; i < len(path); i++ {
		if core.Manhattan(path[i-1], path[i]) != 1 {
			t.Errorf("cells %v and %v are not orthogonal neighbors", path[i-1], path[i])
		}
	}
	for i := 1; i < len(path)-1; i++ {
		if occ.Contains(path[i]) {
			t.Errorf("interior cell %v is occupied", path[i])
		}
	}
}

func TestAStarStraightColumn(t *testing.T) {
	// 32x24 grid, head at (5,5), target at (5,8), no obstacles.
	// With the fixed +x,-x,+y,-y neighbor order and insertion-order
	// tie-breaking the result is exactly the straight column.
	p := &AStar{}
	b := core.Bounds{W: 32, H: 24}

	path := p.FindPath(core.Cell{X: 5, Y: 5}, core.Cell{X: 5, Y: 8}, b, occupy())

	want := []core.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}, {X: 5, Y: 8}}
	if len(path) != len(want) {
		t.Fatalf("path length = %d, expected %d (%v)", len(path), len(want), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, expected %v", i, path[i], want[i])
		}
	}
}

func TestAStarOptimalOnEmptyGrid(t *testing.T) {
	p := &AStar{}
	b := core.Bounds{W: 32, H: 24}

	tests := []struct {
		name       string
		start, end core.Cell
	}{
		{"straight line", core.Cell{X: 0, Y: 0}, core.Cell{X: 0, Y: 10}},
		{"diagonal", core.Cell{X: 2, Y: 3}, core.Cell{X: 12, Y: 9}},
		{"corner to corner", core.Cell{X: 0, Y: 0}, core.Cell{X: 31, Y: 23}},
		{"adjacent", core.Cell{X: 5, Y: 5}, core.Cell{X: 6, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := p.FindPath(tc.start, tc.end, b, occupy())
			if path == nil {
				t.Fatal("expected a path on an empty grid")
			}
			checkPathValid(t, path, tc.start, tc.end, occupy())

			edges := len(path) - 1
			if edges != core.Manhattan(tc.start, tc.end) {
				t.Errorf("path has %d edges, expected Manhattan distance %d",
					edges, core.Manhattan(tc.start, tc.end))
			}
		})
	}
}

func TestAStarStartEqualsEnd(t *testing.T) {
	p := &AStar{}
	b := core.Bounds{W: 8, H: 8}

	path := p.FindPath(core.Cell{X: 3, Y: 3}, core.Cell{X: 3, Y: 3}, b, occupy())
	if len(path) != 1 || path[0] != (core.Cell{X: 3, Y: 3}) {
		t.Errorf("start==end should yield single-element path, got %v", path)
	}
}

func TestAStarRoutesAroundBody(t *testing.T) {
	p := &AStar{}
	b := core.Bounds{W: 10, H: 10}

	// Vertical wall at x=5 spanning y=1..8 with gaps only at the edges.
	var wall []core.Cell
	for y := 1; y <= 8; y++ {
		wall = append(wall, core.Cell{X: 5, Y: y})
	}
	occ := occupy(wall...)

	start := core.Cell{X: 2, Y: 4}
	end := core.Cell{X: 8, Y: 4}
	path := p.FindPath(start, end, b, occ)
	if path == nil {
		t.Fatal("expected a detour path around the wall")
	}
	checkPathValid(t, path, start, end, occ)

	// The detour must be strictly longer than the straight-line distance.
	if len(path)-1 <= core.Manhattan(start, end) {
		t.Errorf("detour has %d edges, expected more than %d",
			len(path)-1, core.Manhattan(start, end))
	}
}

func TestAStarNoPath(t *testing.T) {
	p := &AStar{}
	b := core.Bounds{W: 10, H: 10}

	// Fully enclose the target at (5,5).
	occ := occupy(
		core.Cell{X: 4, Y: 4}, core.Cell{X: 5, Y: 4}, core.Cell{X: 6, Y: 4},
		core.Cell{X: 4, Y: 5}, core.Cell{X: 6, Y: 5},
		core.Cell{X: 4, Y: 6}, core.Cell{X: 5, Y: 6}, core.Cell{X: 6, Y: 6},
	)

	path := p.FindPath(core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 5}, b, occ)
	if path != nil {
		t.Errorf("expected nil path for enclosed target, got %v", path)
	}
}

func TestAStarEndCellOccupancyExempt(t *testing.T) {
	p := &AStar{}
	b := core.Bounds{W: 10, H: 10}

	// Even if the end cell itself is (incorrectly) marked occupied, the
	// search must still reach it: the exemption keeps the contract total
	// under the construction guarantee that targets are never body.
	end := core.Cell{X: 5, Y: 5}
	occ := occupy(end)

	path := p.FindPath(core.Cell{X: 5, Y: 2}, end, b, occ)
	if path == nil {
		t.Fatal("end cell must be eligible regardless of occupancy")
	}
	if path[len(path)-1] != end {
		t.Errorf("path ends at %v, expected %v", path[len(path)-1], end)
	}
}

func TestAStarStaysInBounds(t *testing.T) {
	p := &AStar{}
	b := core.Bounds{W: 6, H: 6}

	// Route along the border: no cell may leave the grid.
	path := p.FindPath(core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 5}, b, occupy())
	for _, c := range path {
		if !b.Contains(c) {
			t.Errorf("path cell %v is out of bounds", c)
		}
	}
}
