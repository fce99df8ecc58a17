package term

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when the input is not a terminal.
var ErrNotTerminal = errors.New("term: input is not a terminal")

// Session is a terminal switched to raw mode with the alternate screen
// active and the cursor hidden.
type Session struct {
	fd     int
	state  *term.State
	output *termenv.Output
	logger *log.Logger
	closed bool
}

// Open puts in into raw mode and prepares out for full-screen frames.
// Close must be called to give the terminal back.
func Open(in, out *os.File, logger *log.Logger) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: enable raw mode: %w", err)
	}

	output := termenv.NewOutput(out)
	output.AltScreen()
	output.HideCursor()
	output.ClearScreen()
	logger.Debug("terminal session opened", "fd", fd)

	return &Session{fd: fd, state: state, output: output, logger: logger}, nil
}

// Close restores the cursor, leaves the alternate screen and turns raw mode
// off. Calling Close more than once is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.output.ShowCursor()
	s.output.ExitAltScreen()
	if err := term.Restore(s.fd, s.state); err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	s.logger.Debug("terminal session restored")
	return nil
}
