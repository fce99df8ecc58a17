package render

import (
	"math"

	"github.com/vovakirdan/termdonut/internal/core"
)

// Torus and camera constants.
const (
	R1 = 1.0 // Tube radius
	R2 = 2.0 // Distance from torus center to tube center
	K2 = 5.0 // Distance from viewer to torus center
)

// Geometry holds the fixed projection parameters for one frame size.
type Geometry struct {
	Width  int
	Height int
	K1     float64 // Screen scale, derived from Width
}

// NewGeometry derives the projection scale for a width x height frame.
// K1 places the torus's widest extent 3/8 of the screen width from center.
func NewGeometry(width, height int) Geometry {
	return Geometry{
		Width:  width,
		Height: height,
		K1:     float64(width) * K2 * 3 / (8 * (R1 + R2)),
	}
}

// Rotation caches the sines and cosines of the tilt (a) and spin (b) angles.
type Rotation struct {
	sinA, cosA float64
	sinB, cosB float64
}

// NewRotation precomputes the trigonometry of angles a and b.
func NewRotation(a, b float64) Rotation {
	return Rotation{
		sinA: math.Sin(a),
		cosA: math.Cos(a),
		sinB: math.Sin(b),
		cosB: math.Cos(b),
	}
}

// Point is a projected sample.
type Point struct {
	X, Y      int
	Depth     float64 // z distance from the viewer
	Luminance float64 // Surface normal dotted with the light direction, in [-√2, √2]
}

// Project rotates s by r, applies perspective and maps it onto the screen.
// ok is false when the point lands outside the frame.
func (g Geometry) Project(s Sample, r Rotation) (p Point, ok bool) {
	// Point on the tube cross-section before revolving.
	circleX := R2 + R1*s.CosTheta
	circleY := R1 * s.SinTheta

	x := circleX*(r.cosB*s.CosPhi+r.sinA*r.sinB*s.SinPhi) - circleY*r.cosA*r.sinB
	y := circleX*(r.sinB*s.CosPhi-r.sinA*r.cosB*s.SinPhi) + circleY*r.cosA*r.cosB
	z := K2 + r.cosA*circleX*s.SinPhi + circleY*r.sinA
	ooz := g.K1 / z

	// y is negated: it grows up in 3D space but down on the screen.
	p.X = int(float64(g.Width)/2 + x*ooz)
	p.Y = int(float64(g.Height)/2 - y*ooz)
	p.Depth = z
	p.Luminance = s.CosPhi*s.CosTheta*r.sinB - r.cosA*s.CosTheta*s.SinPhi - r.sinA*s.SinTheta +
		r.cosB*(r.cosA*s.SinTheta-s.CosTheta*r.sinA*s.SinPhi)

	if !core.InBounds(p.X, p.Y, g.Width, g.Height) {
		return p, false
	}
	return p, true
}
