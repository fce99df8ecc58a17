package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/termdonut/internal/core"
)

// cursorHome moves the cursor to the top-left cell before each redraw.
const cursorHome = termenv.CSI + "H"

// rawLineBreak ends a row in raw terminal mode, where output
// post-processing no longer turns "\n" into a carriage return.
const rawLineBreak = "\r\n"

// Renderer owns the frame buffer and turns rotation angles into frames.
type Renderer struct {
	geom Geometry
	fb   *core.FrameBuffer
	out  *bufio.Writer
}

// NewRenderer creates a renderer for a width x height frame that redraws
// onto out. The frame size is fixed for the renderer's lifetime.
func NewRenderer(width, height int, out io.Writer) *Renderer {
	return &Renderer{
		geom: NewGeometry(width, height),
		fb:   core.NewFrameBuffer(width, height),
		out:  bufio.NewWriterSize(out, width*height+len(rawLineBreak)*height+len(cursorHome)),
	}
}

// Geometry returns the projection parameters in use.
func (r *Renderer) Geometry() Geometry {
	return r.geom
}

// Buffer exposes the frame buffer for inspection after Rasterize.
func (r *Renderer) Buffer() *core.FrameBuffer {
	return r.fb
}

// Rasterize clears the frame buffer and draws the torus rotated by (a, b).
// Only front-facing samples (positive luminance) take part in the depth test.
// Returns the number of cell writes that passed the depth test.
func (r *Renderer) Rasterize(a, b float64) int {
	r.fb.Reset()
	rot := NewRotation(a, b)

	written := 0
	for s := range Samples() {
		p, ok := r.geom.Project(s, rot)
		if !ok || p.Luminance <= 0 {
			continue
		}
		if r.fb.Plot(p.X, p.Y, p.Depth, Shade(p.Luminance)) {
			written++
		}
	}
	return written
}

// Flush redraws the whole screen from the frame buffer: cursor home, then
// every row, then an immediate flush of the underlying writer.
func (r *Renderer) Flush() error {
	if _, err := r.out.WriteString(cursorHome); err != nil {
		return fmt.Errorf("render: flush frame: %w", err)
	}
	if err := r.fb.WriteRows(r.out, rawLineBreak); err != nil {
		return fmt.Errorf("render: flush frame: %w", err)
	}
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("render: flush frame: %w", err)
	}
	return nil
}

// Render rasterizes the frame for (a, b) and flushes it to the display.
func (r *Renderer) Render(a, b float64) error {
	r.Rasterize(a, b)
	return r.Flush()
}
