package input

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termdonut/internal/core"
)

// Source yields classified keys from an input device.
type Source interface {
	// Poll waits up to timeout for the next key.
	// ok is false when the wait timed out without a key.
	Poll(ctx context.Context, timeout time.Duration) (key core.Key, ok bool, err error)
}

// Poller forwards keys from a Source into a Queue until its context is
// cancelled. It is the queue's only producer.
type Poller struct {
	src     Source
	queue   *Queue[core.Key]
	timeout time.Duration
	logger  *log.Logger
}

// NewPoller creates a poller that waits at most timeout per poll.
func NewPoller(src Source, queue *Queue[core.Key], timeout time.Duration, logger *log.Logger) *Poller {
	return &Poller{
		src:     src,
		queue:   queue,
		timeout: timeout,
		logger:  logger,
	}
}

// Run polls until ctx is cancelled or the source is closed, which both end
// the loop cleanly. Cancellation is checked before every poll, so Run
// returns within one poll timeout of ctx being cancelled.
// A push onto a closed queue means the consumer is gone and is returned as an error.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Debug("input poller started", "timeout", p.timeout)
	defer p.logger.Debug("input poller stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}

		key, ok, err := p.src.Poll(ctx, p.timeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrSourceClosed) {
				return nil
			}
			return fmt.Errorf("input: poll: %w", err)
		}
		if !ok {
			continue
		}

		if err := p.queue.Push(key); err != nil {
			return fmt.Errorf("input: forward %s: %w", key, err)
		}
		p.logger.Debug("key queued", "key", key)
	}
}

// Start runs the poller in its own goroutine. The returned channel receives
// Run's result and is then closed, so callers can wait for termination.
func (p *Poller) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- p.Run(ctx)
	}()
	return done
}
