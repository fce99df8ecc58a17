// Package anim drives the torus animation: it owns the rotation angles and
// their speeds, applies queued keyboard commands, renders a frame per tick
// and paces ticks to a fixed interval.
package anim

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termdonut/internal/core"
	"github.com/vovakirdan/termdonut/internal/input"
)

// State is the controller's lifecycle state.
type State int

const (
	Running State = iota
	Stopped       // Terminal; no more frames are rendered
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// FrameRenderer draws one frame for the rotation angles (a, b).
type FrameRenderer interface {
	Render(a, b float64) error
}

// Controller is the animation state machine. It is the only writer of the
// angles and speeds and the only consumer of the key queue.
type Controller struct {
	a, b     float64
	speeds   core.Speeds
	defaults core.Speeds
	step     float64
	interval time.Duration
	state    State
	frames   uint64

	queue    *input.Queue[core.Key]
	renderer FrameRenderer
	logger   *log.Logger
	clock    clock
}

// NewController creates a running controller at angles (0, 0) with the
// configured default speeds.
func NewController(cfg core.RuntimeConfig, queue *input.Queue[core.Key], renderer FrameRenderer, logger *log.Logger) *Controller {
	return &Controller{
		speeds:   cfg.Speeds,
		defaults: cfg.Speeds,
		step:     cfg.SpeedStep,
		interval: cfg.FrameInterval,
		state:    Running,
		queue:    queue,
		renderer: renderer,
		logger:   logger,
		clock:    realClock{},
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Angles returns the current tilt (a) and spin (b) angles.
func (c *Controller) Angles() (a, b float64) {
	return c.a, c.b
}

// Speeds returns the current per-tick angle increments.
func (c *Controller) Speeds() core.Speeds {
	return c.speeds
}

// Frames returns how many frames have been rendered.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// Paused reports whether both speeds are zero.
func (c *Controller) Paused() bool {
	return c.speeds.Tilt == 0 && c.speeds.Spin == 0
}

// Apply executes one keyboard command. Unknown keys are ignored.
func (c *Controller) Apply(k core.Key) {
	switch k {
	case core.KeyUp:
		c.speeds.Tilt += c.step
	case core.KeyDown:
		c.speeds.Tilt -= c.step
	case core.KeyRight:
		c.speeds.Spin += c.step
	case core.KeyLeft:
		c.speeds.Spin -= c.step
	case core.KeyReset, core.KeyStart:
		c.speeds = c.defaults
	case core.KeyPause:
		c.speeds = core.Speeds{}
	case core.KeyEscape:
		c.stop("escape")
		return
	default:
		return
	}
	c.logger.Debug("speeds changed", "key", k, "tilt", c.speeds.Tilt, "spin", c.speeds.Spin)
}

// Drain applies every key already queued without waiting for more.
// Processing stops at the first key that stops the controller.
func (c *Controller) Drain() State {
	for c.state == Running {
		k, ok := c.queue.TryPop()
		if !ok {
			break
		}
		c.Apply(k)
	}
	return c.state
}

// Step renders the current frame and, on success, advances the angles.
// It does nothing once the controller has stopped.
func (c *Controller) Step() error {
	if c.state != Running {
		return nil
	}
	if err := c.renderer.Render(c.a, c.b); err != nil {
		return err
	}
	c.frames++
	c.a += c.speeds.Tilt
	c.b += c.speeds.Spin
	return nil
}

// Tick runs one animation tick: drain input, render and advance, then sleep
// out the rest of the frame interval.
func (c *Controller) Tick() error {
	start := c.clock.Now()

	if c.Drain() != Running {
		return nil
	}
	if err := c.Step(); err != nil {
		return err
	}

	elapsed := c.clock.Now().Sub(start)
	if elapsed > c.interval {
		c.logger.Debug("slow frame", "elapsed", elapsed, "interval", c.interval)
	}
	c.clock.Sleep(PaceDelay(c.interval, elapsed))
	return nil
}

// Run ticks until the controller stops or ctx is cancelled.
// A render failure ends the loop and is returned.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Info("animation started", "interval", c.interval, "tilt", c.speeds.Tilt, "spin", c.speeds.Spin)

	for c.state == Running {
		if ctx.Err() != nil {
			c.stop("context cancelled")
			break
		}
		if err := c.Tick(); err != nil {
			c.logger.Error("render failed", "frame", c.frames, "error", err)
			return err
		}
	}

	c.logger.Info("animation stopped", "frames", c.frames)
	return nil
}

// stop moves the controller to its terminal state and closes the key queue
// so the producer notices the consumer is gone.
func (c *Controller) stop(reason string) {
	if c.state == Stopped {
		return
	}
	c.state = Stopped
	c.queue.Close()
	c.logger.Debug("controller stopped", "reason", reason)
}
