package core

import "time"

// Default animation parameters.
const (
	DefaultTiltSpeed     = 0.04
	DefaultSpinSpeed     = 0.08
	DefaultSpeedStep     = 0.01
	DefaultFrameInterval = 50 * time.Millisecond // 20 frames per second
	DefaultPollTimeout   = 100 * time.Millisecond
	DefaultFallbackW     = 240
	DefaultFallbackH     = 80
)

// Speeds holds the per-tick angle increments for both rotation axes.
type Speeds struct {
	Tilt float64 // Added to angle a every tick
	Spin float64 // Added to angle b every tick
}

// RuntimeConfig contains configuration passed to the renderer, controller and
// input poller at startup. It is not re-read while the animation runs.
type RuntimeConfig struct {
	ScreenW       int           // Frame width in characters
	ScreenH       int           // Frame height in characters
	FrameInterval time.Duration // Target duration of one tick
	PollTimeout   time.Duration // Upper bound of a single input wait
	Speeds        Speeds        // Initial speeds, also restored by r/s
	SpeedStep     float64       // Delta applied per arrow key press
}

// DefaultConfig returns a RuntimeConfig with the stock animation settings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		FrameInterval: DefaultFrameInterval,
		PollTimeout:   DefaultPollTimeout,
		Speeds:        Speeds{Tilt: DefaultTiltSpeed, Spin: DefaultSpinSpeed},
		SpeedStep:     DefaultSpeedStep,
	}
}
