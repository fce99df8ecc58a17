package term

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestSizeFallsBackOnNonTerminal(t *testing.T) {
	f := tempFile(t)

	w, h, err := Size(int(f.Fd()), 240, 80)
	if err == nil {
		t.Error("Size() on a regular file should report an error")
	}
	if w != 240 || h != 80 {
		t.Errorf("Size() = %dx%d, expected fallback 240x80", w, h)
	}
}

func TestOpenRefusesNonTerminal(t *testing.T) {
	f := tempFile(t)

	s, err := Open(f, f, log.New(io.Discard))
	if !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Open() error = %v, expected ErrNotTerminal", err)
	}
	if s != nil {
		t.Error("Open() returned a session for a non-terminal")
	}
}
