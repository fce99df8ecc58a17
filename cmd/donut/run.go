package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termdonut/internal/anim"
	"github.com/vovakirdan/termdonut/internal/core"
	"github.com/vovakirdan/termdonut/internal/input"
	platformterm "github.com/vovakirdan/termdonut/internal/platform/term"
	"github.com/vovakirdan/termdonut/internal/render"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the animation on the raw terminal",
	Long: `Switch the terminal to raw mode and the alternate screen and draw the
torus until Esc is pressed. The terminal is restored on exit, including
when drawing fails.`,
	Args: cobra.NoArgs,
	Run:  runAnimation,
}

func runAnimation(_ *cobra.Command, _ []string) {
	if err := animate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// animate runs the raw terminal session. Every deferred cleanup has run by
// the time it returns, so the caller may exit immediately.
func animate() error {
	logger, closeLog, err := openSessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height, sizeErr := platformterm.Size(int(os.Stdout.Fd()), cfg.Display.FallbackWidth, cfg.Display.FallbackHeight)
	if sizeErr != nil {
		logger.Warn("using fallback size", "width", width, "height", height, "error", sizeErr)
	}
	rt := cfg.Runtime(width, height)

	session, err := platformterm.Open(os.Stdin, os.Stdout, logger)
	if err != nil {
		return err
	}
	// Restores the terminal on early returns; a no-op after runSession.
	defer session.Close()

	source, err := input.NewTerminalSource(os.Stdin)
	if err != nil {
		return err
	}
	defer source.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := input.NewQueue[core.Key]()
	poller := input.NewPoller(source, queue, rt.PollTimeout, logger)
	renderer := render.NewRenderer(rt.ScreenW, rt.ScreenH, os.Stdout)
	controller := anim.NewController(rt, queue, renderer, logger)

	return runSession(ctx, controller, poller, session.Close, logger)
}

// animation draws frames until it stops or ctx is cancelled.
type animation interface {
	Run(ctx context.Context) error
}

// runSession runs a while poller feeds it keys, then shuts down in order:
// once a has stopped the poller is cancelled and awaited, and only then does
// restore give the terminal back. restore runs even when a fails.
func runSession(ctx context.Context, a animation, poller *input.Poller, restore func() error, logger *log.Logger) error {
	pollCtx, cancelPoll := context.WithCancel(ctx)
	defer cancelPoll()
	pollDone := poller.Start(pollCtx)

	runErr := a.Run(ctx)

	cancelPoll()
	if err := <-pollDone; err != nil && !errors.Is(err, input.ErrQueueClosed) {
		logger.Warn("input poller failed", "error", err)
	}
	if err := restore(); err != nil {
		logger.Error("cannot restore terminal", "error", err)
	}
	return runErr
}
