package core

import "testing"

func TestBoundsContains(t *testing.T) {
	b := Bounds{W: 32, H: 24}

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"inside", Cell{X: 5, Y: 5}, true},
		{"origin", Cell{X: 0, Y: 0}, true},
		{"max corner (exclusive)", Cell{X: 32, Y: 24}, false},
		{"last valid cell", Cell{X: 31, Y: 23}, true},
		{"negative x", Cell{X: -1, Y: 5}, false},
		{"negative y", Cell{X: 5, Y: -1}, false},
		{"x at width", Cell{X: 32, Y: 5}, false},
		{"y at height", Cell{X: 5, Y: 24}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.cell); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestBoundsCells(t *testing.T) {
	b := Bounds{W: 32, H: 24}
	if b.Cells() != 768 {
		t.Errorf("Cells() = %d, expected 768", b.Cells())
	}
}

func TestNeighborsOrder(t *testing.T) {
	// The +x, -x, +y, -y order is part of the search's tie-breaking
	// contract and must not change.
	c := Cell{X: 3, Y: 7}
	want := [4]Cell{
		{X: 4, Y: 7},
		{X: 2, Y: 7},
		{X: 3, Y: 8},
		{X: 3, Y: 6},
	}

	got := c.Neighbors()
	if got != want {
		t.Errorf("Neighbors() = %v, expected %v", got, want)
	}
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Cell
		expected int
	}{
		{"same cell", Cell{5, 5}, Cell{5, 5}, 0},
		{"vertical", Cell{5, 5}, Cell{5, 8}, 3},
		{"horizontal", Cell{2, 5}, Cell{9, 5}, 7},
		{"diagonal", Cell{0, 0}, Cell{3, 4}, 7},
		{"symmetric", Cell{3, 4}, Cell{0, 0}, 7},
		{"negative coords", Cell{-2, -3}, Cell{1, 1}, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Manhattan(tc.a, tc.b); got != tc.expected {
				t.Errorf("Manhattan(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 5, Y: 5}
	if got := c.Add(1, -2); got != (Cell{X: 6, Y: 3}) {
		t.Errorf("Add(1, -2) = %v, expected (6, 3)", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
