package render

import (
	"math"

	"github.com/vovakirdan/termdonut/internal/core"
)

// ramp orders characters from faintest to brightest.
const ramp = ".,-~:;=!*#$@%&"

// RampLen is the number of brightness levels.
const RampLen = len(ramp)

// ShadeIndex quantizes luminance into a ramp index in [0, RampLen-1].
func ShadeIndex(l float64) int {
	return core.Clamp(int(math.Floor(l*12)), 0, RampLen-1)
}

// Shade returns the ramp character for luminance l.
func Shade(l float64) byte {
	return ramp[ShadeIndex(l)]
}
