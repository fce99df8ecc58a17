package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	xinput "github.com/charmbracelet/x/input"
	"github.com/muesli/cancelreader"

	"github.com/vovakirdan/termdonut/internal/core"
)

// ErrSourceClosed is returned by Poll after the source has been closed.
var ErrSourceClosed = errors.New("input: source closed")

// keyNames maps unmodified key presses to animation keys. Anything else,
// including the same keys with Alt, Ctrl or Shift held, is dropped.
var keyNames = map[string]core.Key{
	"up":    core.KeyUp,
	"down":  core.KeyDown,
	"left":  core.KeyLeft,
	"right": core.KeyRight,
	"r":     core.KeyReset,
	"s":     core.KeyStart,
	"p":     core.KeyPause,
	"esc":   core.KeyEscape,
}

// KeyFromEvent maps a terminal event to an animation key.
// Returns false for events that are not a bound key press.
func KeyFromEvent(ev xinput.Event) (core.Key, bool) {
	press, ok := ev.(xinput.KeyPressEvent)
	if !ok {
		return core.KeyUnknown, false
	}
	k, ok := keyNames[press.String()]
	return k, ok
}

// TerminalSource reads terminal events and turns key presses into keys.
// Reads happen on a background goroutine so Poll can honor its timeout;
// Close cancels a read that is still blocked.
type TerminalSource struct {
	reader  *xinput.Reader
	batches chan []core.Key
	done    chan struct{}
	readErr error // set before batches is closed
	pending []core.Key

	closeOnce sync.Once
}

// NewTerminalSource starts reading from r, typically os.Stdin in raw mode.
func NewTerminalSource(r io.Reader) (*TerminalSource, error) {
	rd, err := xinput.NewReader(r, "", 0)
	if err != nil {
		return nil, fmt.Errorf("input: open terminal reader: %w", err)
	}

	s := &TerminalSource{
		reader:  rd,
		batches: make(chan []core.Key),
		done:    make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

func (s *TerminalSource) readLoop() {
	defer close(s.batches)

	for {
		events, err := s.reader.ReadEvents()
		var keys []core.Key
		for _, ev := range events {
			if k, ok := KeyFromEvent(ev); ok {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			select {
			case s.batches <- keys:
			case <-s.done:
				return
			}
		}
		if err != nil {
			s.readErr = err
			return
		}
	}
}

// Poll returns the next key, waiting up to timeout for input.
// Keys from one read are handed out one per call.
func (s *TerminalSource) Poll(ctx context.Context, timeout time.Duration) (core.Key, bool, error) {
	if k, ok := s.next(); ok {
		return k, true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case keys, ok := <-s.batches:
		if !ok {
			return core.KeyUnknown, false, s.closedErr()
		}
		s.pending = append(s.pending, keys...)
		k, ok := s.next()
		return k, ok, nil
	case <-timer.C:
		return core.KeyUnknown, false, nil
	case <-ctx.Done():
		return core.KeyUnknown, false, ctx.Err()
	case <-s.done:
		return core.KeyUnknown, false, ErrSourceClosed
	}
}

func (s *TerminalSource) next() (core.Key, bool) {
	if len(s.pending) == 0 {
		return core.KeyUnknown, false
	}
	k := s.pending[0]
	s.pending = s.pending[1:]
	return k, true
}

func (s *TerminalSource) closedErr() error {
	if s.readErr == nil || errors.Is(s.readErr, cancelreader.ErrCanceled) {
		return ErrSourceClosed
	}
	return fmt.Errorf("input: read terminal: %w", s.readErr)
}

// Close stops the background reader, unblocking any pending read.
func (s *TerminalSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.reader.Cancel()
		err = s.reader.Close()
	})
	return err
}
