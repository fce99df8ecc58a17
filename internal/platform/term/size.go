// Package term owns the raw terminal session used by the donut animation:
// sizing, raw mode and the alternate screen.
package term

import (
	"fmt"

	"golang.org/x/term"
)

// Size reports the terminal size of fd. When the size cannot be determined
// the fallback size is returned together with the reason.
func Size(fd int, fallbackW, fallbackH int) (width, height int, err error) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fallbackW, fallbackH, fmt.Errorf("term: get size: %w", err)
	}
	if w <= 0 || h <= 0 {
		return fallbackW, fallbackH, fmt.Errorf("term: unusable size %dx%d", w, h)
	}
	return w, h, nil
}
