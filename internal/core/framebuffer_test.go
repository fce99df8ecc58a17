package core

import (
	"bytes"
	"math"
	"testing"
)

func TestNewFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(80, 24)

	if fb.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", fb.Width())
	}
	if fb.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", fb.Height())
	}

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Get(x, y) != ' ' {
				t.Fatalf("New buffer should be filled with spaces, got %q at (%d, %d)", fb.Get(x, y), x, y)
			}
			if !math.IsInf(fb.Depth(x, y), 1) {
				t.Fatalf("New buffer depth should be +Inf, got %v at (%d, %d)", fb.Depth(x, y), x, y)
			}
		}
	}
}

func TestFrameBufferPlotDepthTest(t *testing.T) {
	fb := NewFrameBuffer(10, 10)

	if !fb.Plot(3, 4, 5.0, 'a') {
		t.Fatal("Plot on empty cell should write")
	}
	if fb.Plot(3, 4, 6.0, 'b') {
		t.Error("Plot with farther depth should not write")
	}
	if fb.Plot(3, 4, 5.0, 'c') {
		t.Error("Plot with equal depth should not write")
	}
	if fb.Get(3, 4) != 'a' {
		t.Errorf("Get(3, 4) = %q, expected 'a'", fb.Get(3, 4))
	}
	if !fb.Plot(3, 4, 4.5, 'd') {
		t.Error("Plot with nearer depth should write")
	}
	if fb.Get(3, 4) != 'd' || fb.Depth(3, 4) != 4.5 {
		t.Errorf("cell = (%q, %v), expected ('d', 4.5)", fb.Get(3, 4), fb.Depth(3, 4))
	}
}

func TestFrameBufferOutOfBounds(t *testing.T) {
	fb := NewFrameBuffer(10, 10)

	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		if fb.Plot(p[0], p[1], 1.0, 'X') {
			t.Errorf("Plot(%d, %d) should be ignored", p[0], p[1])
		}
		if fb.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) out of bounds should return space", p[0], p[1])
		}
		if !math.IsInf(fb.Depth(p[0], p[1]), 1) {
			t.Errorf("Depth(%d, %d) out of bounds should return +Inf", p[0], p[1])
		}
	}
}

func TestFrameBufferReset(t *testing.T) {
	fb := NewFrameBuffer(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			fb.Plot(x, y, 1.0, '#')
		}
	}

	fb.Reset()

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if fb.Get(x, y) != ' ' {
				t.Errorf("After Reset, expected space at (%d, %d), got %q", x, y, fb.Get(x, y))
			}
			if !math.IsInf(fb.Depth(x, y), 1) {
				t.Errorf("After Reset, expected +Inf depth at (%d, %d)", x, y)
			}
		}
	}
}

func TestFrameBufferString(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.Plot(0, 0, 1, 'a')
	fb.Plot(2, 1, 1, 'b')

	expected := "a  \n  b"
	if fb.String() != expected {
		t.Errorf("String() = %q, expected %q", fb.String(), expected)
	}
	if fb.Row(1) != "  b" {
		t.Errorf("Row(1) = %q, expected %q", fb.Row(1), "  b")
	}
	if fb.Row(5) != "   " {
		t.Errorf("Row(5) = %q, expected blank row", fb.Row(5))
	}
}

func TestFrameBufferWriteRows(t *testing.T) {
	fb := NewFrameBuffer(2, 3)
	fb.Plot(1, 2, 1, '@')

	var buf bytes.Buffer
	if err := fb.WriteRows(&buf, "\r\n"); err != nil {
		t.Fatalf("WriteRows() failed: %v", err)
	}

	expected := "  \r\n  \r\n @"
	if buf.String() != expected {
		t.Errorf("WriteRows() = %q, expected %q", buf.String(), expected)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 13, 5},
		{-3, 0, 13, 0},
		{16, 0, 13, 13},
		{13, 0, 13, 13},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "Escape" {
		t.Errorf("KeyEscape.String() = %q, expected %q", KeyEscape.String(), "Escape")
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99).String() = %q, expected %q", Key(99).String(), "Unknown")
	}
}
