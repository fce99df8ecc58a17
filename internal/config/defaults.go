package config

import (
	_ "embed"

	"github.com/vovakirdan/termdonut/internal/core"
)

//go:embed defaults/donut.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			FrameInterval: core.DefaultFrameInterval,
			TiltSpeed:     core.DefaultTiltSpeed,
			SpinSpeed:     core.DefaultSpinSpeed,
			SpeedStep:     core.DefaultSpeedStep,
		},
		Input: InputConfig{
			PollTimeout: core.DefaultPollTimeout,
		},
		Display: DisplayConfig{
			FallbackWidth:  core.DefaultFallbackW,
			FallbackHeight: core.DefaultFallbackH,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
