package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termdonut/internal/anim"
	"github.com/vovakirdan/termdonut/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapTranslate(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Key
		ok       bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{runeKey('r'), core.KeyReset, true},
		{runeKey('s'), core.KeyStart, true},
		{runeKey('p'), core.KeyPause, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyEscape, true},
		{runeKey('x'), core.KeyUnknown, false},
		{runeKey('R'), core.KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := km.Translate(tt.msg)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("Translate(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), got, ok, tt.expected, tt.ok)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(km.ShortHelp()))
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("FullHelp() has %d bindings, expected 7", total)
	}
}

func newTestModel() Model {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 40, 14
	return NewModel(cfg, log.New(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelFrameLeavesRoomForChrome(t *testing.T) {
	m := newTestModel()
	fb := m.frame.r.Buffer()
	if fb.Width() != 40 || fb.Height() != 12 {
		t.Errorf("frame = %dx%d, expected 40x12", fb.Width(), fb.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	fb = m.frame.r.Buffer()
	if fb.Width() != 60 || fb.Height() != 18 {
		t.Errorf("frame after resize = %dx%d, expected 60x18", fb.Width(), fb.Height())
	}
}

func TestModelKeysApplyOnTick(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if s := m.controller.Speeds(); s.Tilt != 0.04 {
		t.Errorf("keys applied before tick: %+v", s)
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if s := m.controller.Speeds(); s.Tilt != 0.04+0.01+0.01 {
		t.Errorf("Speeds() = %+v, expected tilt 0.06", s)
	}
	if m.controller.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", m.controller.Frames())
	}
	frame := m.frame.r.Buffer().String()
	if strings.TrimSpace(frame) == "" {
		t.Error("frame is blank after a tick")
	}
	if !strings.HasPrefix(m.View(), frame) {
		t.Error("View() does not start with the frame")
	}
}

func TestModelPauseShowsMarker(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})

	if !m.controller.Paused() {
		t.Fatal("controller should be paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() missing PAUSED marker")
	}
}

func TestModelEscapeQuits(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := update(t, m, TickMsg{})

	if m.controller.State() != anim.Stopped {
		t.Errorf("State() = %v, expected Stopped", m.controller.State())
	}
	if m.controller.Frames() != 0 {
		t.Errorf("Frames() = %d, expected 0", m.controller.Frames())
	}
	if cmd == nil {
		t.Fatal("Escape should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command after Escape is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}

	// Keys after shutdown are dropped silently.
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if cmd != nil || m.err != nil {
		t.Errorf("key after stop: cmd %v, err %v", cmd, m.err)
	}
}

func TestModelResizeKeepsAnimationState(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	a, b := m.controller.Angles()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})

	if na, nb := m.controller.Angles(); na != a || nb != b {
		t.Errorf("Angles() after resize = (%v, %v), expected (%v, %v)", na, nb, a, b)
	}
	m, _ = update(t, m, TickMsg{})
	fb := m.frame.r.Buffer()
	if fb.Width() != 30 || fb.Height() != 8 {
		t.Errorf("frame after resize = %dx%d, expected 30x8", fb.Width(), fb.Height())
	}
	if m.controller.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", m.controller.Frames())
	}
}
