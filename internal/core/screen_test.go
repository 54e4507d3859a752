package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || !c.Color.IsDefault() {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(0, 0, 10, 10, 'X', ColorGreen)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "♥♥x", ColorRed)

	if s.Get(2, 1) != '♥' || s.Get(3, 1) != '♥' || s.Get(4, 1) != 'x' {
		t.Errorf("DrawText should place one rune per cell, row = %q", s.Row(1))
	}
	if s.GetCell(3, 1).Color != ColorRed {
		t.Error("DrawTextColored should color every cell")
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorGray)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawTextColored(0, 2, "CCCCC", ColorBlue)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row)
	}

	s.Resize(15, 8)
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row)
	}
	if len(s.Row(7)) != 15 {
		t.Errorf("New rows should be full width, got %d", len(s.Row(7)))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
