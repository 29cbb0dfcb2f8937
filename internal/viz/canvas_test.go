package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %x", c.Grid[0][0])
	}

	c.Set(1, 0)
	if c.Grid[0][0] != 0x2809 {
		t.Errorf("expected dots 1 and 4 set, got %x", c.Grid[0][0])
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	// Out-of-range sets must not panic or light anything.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)

	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				t.Errorf("cell (%d,%d) modified by out-of-range set", i, j)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)
	c.Clear()

	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				t.Fatalf("cell (%d,%d) not cleared", i, j)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(5, 5)
	c.DrawLine(0, 0, 9, 0)

	lit := 0
	for j := 0; j < 5; j++ {
		if c.Grid[0][j] != 0x2800 {
			lit++
		}
	}
	if lit != 5 {
		t.Errorf("expected all 5 cells of the top row lit, got %d", lit)
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}
