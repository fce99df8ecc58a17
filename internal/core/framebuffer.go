package core

import (
	"io"
	"math"
	"strings"
)

// FrameBuffer is a fixed-size character grid with a parallel depth grid.
// Storage is allocated once and reused; Reset restores both grids to their
// empty state before every rasterization pass.
type FrameBuffer struct {
	width  int
	height int
	cells  []byte
	depth  []float64
}

// NewFrameBuffer creates a cleared frame buffer with the given dimensions.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Reset()
	return fb
}

// Width returns the buffer width in characters.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the buffer height in characters.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Reset fills the character grid with spaces and the depth grid with +Inf.
func (fb *FrameBuffer) Reset() {
	inf := math.Inf(1)
	for i := range fb.cells {
		fb.cells[i] = ' '
		fb.depth[i] = inf
	}
}

// Plot writes ch at (x, y) if depth is strictly nearer than what the cell
// already holds. Out-of-bounds coordinates are ignored.
// Returns true if the cell was written.
func (fb *FrameBuffer) Plot(x, y int, depth float64, ch byte) bool {
	if !InBounds(x, y, fb.width, fb.height) {
		return false
	}
	i := x + fb.width*y
	if depth >= fb.depth[i] {
		return false
	}
	fb.depth[i] = depth
	fb.cells[i] = ch
	return true
}

// Get returns the character at (x, y), or a space when out of bounds.
func (fb *FrameBuffer) Get(x, y int) byte {
	if !InBounds(x, y, fb.width, fb.height) {
		return ' '
	}
	return fb.cells[x+fb.width*y]
}

// Depth returns the stored depth at (x, y), or +Inf when out of bounds.
func (fb *FrameBuffer) Depth(x, y int) float64 {
	if !InBounds(x, y, fb.width, fb.height) {
		return math.Inf(1)
	}
	return fb.depth[x+fb.width*y]
}

// Row returns a copy of the specified row as a string.
func (fb *FrameBuffer) Row(y int) string {
	if y < 0 || y >= fb.height {
		return strings.Repeat(" ", fb.width)
	}
	return string(fb.cells[y*fb.width : (y+1)*fb.width])
}

// String converts the character grid to text with rows joined by newlines.
func (fb *FrameBuffer) String() string {
	var sb strings.Builder
	sb.Grow(fb.width*fb.height + fb.height)
	fb.writeRows(&sb, "\n")
	return sb.String()
}

// WriteRows emits the grid in row-major order, writing lineBreak after every
// width characters except the last row.
func (fb *FrameBuffer) WriteRows(w io.Writer, lineBreak string) error {
	sw, ok := w.(io.StringWriter)
	if !ok {
		sw = &stringWriter{w}
	}
	return fb.writeRows(sw, lineBreak)
}

func (fb *FrameBuffer) writeRows(w io.StringWriter, lineBreak string) error {
	for y := 0; y < fb.height; y++ {
		if y > 0 {
			if _, err := w.WriteString(lineBreak); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(fb.Row(y)); err != nil {
			return err
		}
	}
	return nil
}

type stringWriter struct {
	w io.Writer
}

func (s *stringWriter) WriteString(str string) (int, error) {
	return s.w.Write([]byte(str))
}
