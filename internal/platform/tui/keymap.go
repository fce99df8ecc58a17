package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termdonut/internal/core"
)

// KeyMap holds the key bindings of the Bubble Tea frontend.
// It implements help.KeyMap.
type KeyMap struct {
	TiltUp   key.Binding
	TiltDown key.Binding
	SpinDown key.Binding
	SpinUp   key.Binding
	Reset    key.Binding
	Pause    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the same controls as the raw terminal mode.
// Ctrl+C is accepted as an extra quit key since Bubble Tea owns the signal.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TiltUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "tilt"),
		),
		TiltDown: key.NewBinding(
			key.WithKeys("down"),
		),
		SpinDown: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "spin"),
		),
		SpinUp: key.NewBinding(
			key.WithKeys("right"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "s"),
			key.WithHelp("r/s", "reset"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TiltUp, k.SpinDown, k.Reset, k.Pause, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TiltUp, k.TiltDown, k.SpinDown, k.SpinUp},
		{k.Reset, k.Pause, k.Quit},
	}
}

// Translate maps a key message to an animation key.
// Returns false for keys without a binding.
func (k KeyMap) Translate(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.TiltUp):
		return core.KeyUp, true
	case key.Matches(msg, k.TiltDown):
		return core.KeyDown, true
	case key.Matches(msg, k.SpinDown):
		return core.KeyLeft, true
	case key.Matches(msg, k.SpinUp):
		return core.KeyRight, true
	case key.Matches(msg, k.Reset):
		if msg.String() == "s" {
			return core.KeyStart, true
		}
		return core.KeyReset, true
	case key.Matches(msg, k.Pause):
		return core.KeyPause, true
	case key.Matches(msg, k.Quit):
		return core.KeyEscape, true
	}
	return core.KeyUnknown, false
}
