// Package render rasterizes a rotating torus into a character frame buffer.
// It samples the surface, projects every sample with perspective, resolves
// occlusion with a depth buffer and maps illumination to an ASCII ramp.
package render

import (
	"iter"
	"math"
)

// Sampling steps around the tube cross-section (theta) and around the
// torus center of revolution (phi).
const (
	ThetaStep = 0.07
	PhiStep   = 0.02
)

// Sample is one point on the torus surface, identified by its two angles.
// Sines and cosines are carried along so the projector does not recompute them.
type Sample struct {
	Theta, Phi         float64
	SinTheta, CosTheta float64
	SinPhi, CosPhi     float64
}

// stepCount returns how many multiples of step fall in [0, 2π).
func stepCount(step float64) int {
	return int(math.Ceil(2 * math.Pi / step))
}

// Samples returns the surface samples in theta-major, phi-minor order.
// The sequence is finite and identical on every call.
func Samples() iter.Seq[Sample] {
	thetas := stepCount(ThetaStep)
	phis := stepCount(PhiStep)

	return func(yield func(Sample) bool) {
		for i := 0; i < thetas; i++ {
			theta := float64(i) * ThetaStep
			sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

			for j := 0; j < phis; j++ {
				phi := float64(j) * PhiStep
				s := Sample{
					Theta:    theta,
					Phi:      phi,
					SinTheta: sinTheta,
					CosTheta: cosTheta,
					SinPhi:   math.Sin(phi),
					CosPhi:   math.Cos(phi),
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}
