package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorGreen)

	cell := s.GetCell(3, 2)
	if cell.Rune != '@' {
		t.Errorf("GetCell(3, 2).Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 2).Color = %d, expected ColorGreen", cell.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes must be silently ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	// Out-of-bounds reads return a space
	if s.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if s.Get(100, 100) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorRed)

	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear should reset cells to space")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking clips without panicking
	s.Resize(3, 3)
	if s.Get(2, 2) != 'A' {
		t.Error("content inside the new bounds should survive shrinking")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", ColorYellow)

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText produced row %q", s.Row(1))
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "long text", ColorDefault)
	if s.Get(9, 1) != 'o' {
		t.Errorf("clipped DrawText: got %q at (9,1)", s.Get(9, 1))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain exactly one newline for 2 rows")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 0, 'x')

	if s.Row(0) != " x  " {
		t.Errorf("Row(0) = %q, expected \" x  \"", s.Row(0))
	}
	if s.Row(5) != "    " {
		t.Errorf("out-of-bounds Row should return blank row, got %q", s.Row(5))
	}
}
