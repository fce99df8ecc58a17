// Package core provides fundamental types and utilities for the donut renderer.
// It contains no external dependencies (especially no terminal or Bubble Tea code)
// to keep rendering and animation logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// InBounds reports whether (x, y) lies inside a width x height grid.
func InBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}
