package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termdonut/internal/anim"
	"github.com/vovakirdan/termdonut/internal/core"
	"github.com/vovakirdan/termdonut/internal/input"
	"github.com/vovakirdan/termdonut/internal/render"
)

// chromeLines is the number of rows below the frame (status and help).
const chromeLines = 2

// frame rasterizes into the renderer's buffer without writing it anywhere;
// Bubble Tea owns the screen and draws the buffer from View.
type frame struct {
	r *render.Renderer
}

func (f *frame) Render(a, b float64) error {
	f.r.Rasterize(a, b)
	return nil
}

func (f *frame) resize(width, height int) {
	f.r = render.NewRenderer(max(width, 1), max(height-chromeLines, 1), io.Discard)
}

// Model is the Bubble Tea model for the donut animation.
type Model struct {
	controller *anim.Controller
	queue      *input.Queue[core.Key]
	frame      *frame
	keys       KeyMap
	help       help.Model
	interval   time.Duration
	logger     *log.Logger
	quitting   bool
	err        error
}

// NewModel creates a model whose frame, together with the status and help
// lines, fills a cfg.ScreenW x cfg.ScreenH screen.
func NewModel(cfg core.RuntimeConfig, logger *log.Logger) Model {
	queue := input.NewQueue[core.Key]()
	f := &frame{}
	f.resize(cfg.ScreenW, cfg.ScreenH)

	return Model{
		controller: anim.NewController(cfg, queue, f, logger),
		queue:      queue,
		frame:      f,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		interval:   cfg.FrameInterval,
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.frame.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.logger.Debug("frame resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey forwards bound keys to the controller's queue. They take effect
// on the next tick, exactly like keys read by the terminal poller.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, ok := m.keys.Translate(msg)
	if !ok {
		return m, nil
	}
	if err := m.queue.Push(k); err != nil && !errors.Is(err, input.ErrQueueClosed) {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies queued keys and renders the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.controller.Drain() == anim.Stopped {
		m.quitting = true
		return m, tea.Quit
	}
	if err := m.controller.Step(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

// View renders the last frame with the status and help lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.frame.r.Buffer().String())
	sb.WriteByte('\n')
	sb.WriteString(m.statusLine())
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}

	a, b := m.controller.Angles()
	s := m.controller.Speeds()
	sep := separatorStyle.Render(" │ ")

	line := titleStyle.Render("donut") + sep +
		labelStyle.Render("a ") + valueStyle.Render(fmt.Sprintf("%.2f", a)) + sep +
		labelStyle.Render("b ") + valueStyle.Render(fmt.Sprintf("%.2f", b)) + sep +
		labelStyle.Render("tilt ") + valueStyle.Render(fmt.Sprintf("%+.2f", s.Tilt)) + sep +
		labelStyle.Render("spin ") + valueStyle.Render(fmt.Sprintf("%+.2f", s.Spin))
	if m.controller.Paused() {
		line += sep + pausedStyle.Render("PAUSED")
	}
	return line
}

// Run starts the Bubble Tea program and blocks until the animation stops.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
