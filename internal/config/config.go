// Package config provides YAML-based configuration loading for the donut
// animation: frame pacing, rotation speeds, input polling and display fallbacks.
// Torus geometry and shading are fixed and intentionally not configurable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/termdonut/internal/core"
)

// Config is the top-level configuration document.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Display   DisplayConfig   `yaml:"display"`
}

// AnimationConfig defines frame pacing and rotation speeds.
type AnimationConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	TiltSpeed     float64       `yaml:"tilt_speed"` // Angle a increment per frame
	SpinSpeed     float64       `yaml:"spin_speed"` // Angle b increment per frame
	SpeedStep     float64       `yaml:"speed_step"` // Change per arrow key press
}

// InputConfig defines keyboard polling parameters.
type InputConfig struct {
	PollTimeout time.Duration `yaml:"poll_timeout"`
}

// DisplayConfig defines the frame size used when the terminal size is unknown.
type DisplayConfig struct {
	FallbackWidth  int `yaml:"fallback_width"`
	FallbackHeight int `yaml:"fallback_height"`
}

// Validate reports every setting that cannot drive the animation.
func (c Config) Validate() error {
	var errs []error
	if c.Animation.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("animation.frame_interval must be positive, got %v", c.Animation.FrameInterval))
	}
	if c.Animation.SpeedStep <= 0 {
		errs = append(errs, fmt.Errorf("animation.speed_step must be positive, got %v", c.Animation.SpeedStep))
	}
	if c.Input.PollTimeout <= 0 {
		errs = append(errs, fmt.Errorf("input.poll_timeout must be positive, got %v", c.Input.PollTimeout))
	}
	if c.Display.FallbackWidth <= 0 || c.Display.FallbackHeight <= 0 {
		errs = append(errs, fmt.Errorf("display fallback size must be positive, got %dx%d",
			c.Display.FallbackWidth, c.Display.FallbackHeight))
	}
	return errors.Join(errs...)
}

// SetFPS overrides the frame interval with a frames-per-second rate.
// Non-positive rates leave the interval unchanged.
func (c *Config) SetFPS(fps int) {
	if fps > 0 {
		c.Animation.FrameInterval = time.Second / time.Duration(fps)
	}
}

// Runtime converts the configuration into the runtime settings for a
// width x height frame.
func (c Config) Runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:       width,
		ScreenH:       height,
		FrameInterval: c.Animation.FrameInterval,
		PollTimeout:   c.Input.PollTimeout,
		Speeds: core.Speeds{
			Tilt: c.Animation.TiltSpeed,
			Spin: c.Animation.SpinSpeed,
		},
		SpeedStep: c.Animation.SpeedStep,
	}
}
