// Package tui provides the Bubble Tea frontend: the emulated device panel in
// a terminal, locally or over SSH, plus the run history screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/device"
	"github.com/vovakirdan/pico-peloton/internal/entropy"
	"github.com/vovakirdan/pico-peloton/internal/registry"
)

// FrontendID is the registry ID of the local terminal frontend.
const FrontendID = "terminal"

func init() {
	registry.Register(registry.Frontend{
		ID:    FrontendID,
		Title: "Bubble Tea terminal",
		Run:   Run,
	})
}

// frameMsg carries a flushed frame from the firmware.
type frameMsg string

// firmwareExitMsg is sent when the firmware stops on its own.
type firmwareExitMsg struct{ err error }

// session is one emulated device driven by a Bubble Tea program. It is
// shared by all copies of the Model.
type session struct {
	ctx      context.Context
	cancel   context.CancelFunc
	board    *device.Board
	firmware *device.Firmware
	surface  *Surface
	env      registry.Env
	frontend string
	done     chan struct{}
	err      error
}

// Model is the Bubble Tea model for a ride.
type Model struct {
	s        *session
	keys     KeyMap
	help     help.Model
	frame    string
	best     int
	width    int
	height   int
	notice   string
	quitting bool
}

// NewModel creates a device for env and a model to display it. The device
// stops when parent ends or the user quits.
func NewModel(parent context.Context, env registry.Env, frontend string) Model {
	ctx, cancel := context.WithCancel(parent)

	board := device.NewBoard(entropy.NewOscillator(env.Seed))
	surface := NewSurface(ctx, env.Config.Display.FlushLatency, env.Config.Display.Invert)
	fw := device.New(board, surface, device.Options{
		Logger:   env.Logger,
		Seed:     env.Seed,
		MaxTicks: env.MaxTicks,
	})

	best := 0
	if env.Store != nil {
		if b, err := env.Store.BestScore(); err == nil {
			best = b
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		s: &session{
			ctx:      ctx,
			cancel:   cancel,
			board:    board,
			firmware: fw,
			surface:  surface,
			env:      env,
			frontend: frontend,
			done:     make(chan struct{}),
		},
		keys: NewKeyMap(env.Config.Keys),
		help: h,
		best: best,
	}
}

// Init starts the firmware and waits for its first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runFirmware, m.waitForFrame)
}

// runFirmware runs the device to completion and records the ride. It runs
// exactly once per session whatever ends it.
func (m Model) runFirmware() tea.Msg {
	defer close(m.s.done)

	err := m.s.firmware.Run(m.s.ctx)
	m.s.err = err
	m.s.env.Record(m.s.frontend, m.s.firmware.Stats())
	return firmwareExitMsg{err: err}
}

func (m Model) waitForFrame() tea.Msg {
	select {
	case frame := <-m.s.surface.Frames():
		return frameMsg(frame)
	case <-m.s.ctx.Done():
		return nil
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = string(msg)
		return m, m.waitForFrame

	case firmwareExitMsg:
		m.quitting = true
		m.s.cancel()
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.s.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.notice = "screenshot failed: " + err.Error()
		} else {
			m.notice = "saved " + path
		}
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.s.board.Press(b)
	}
	return m, nil
}

// saveScreenshot writes the last frame to ~/.peloton/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".peloton", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("ride_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(Screenshot(m.frame, m.s.firmware.Stats())), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 && (m.width < deviceCols || m.height < deviceRows) {
		return RenderTooSmall(m.width, m.height)
	}

	stats := m.s.firmware.Stats()
	best := max(m.best, stats.Score)
	view := RenderDevice(m.frame, m.s.board.Ready(), stats, best)

	footer := dimStyle.Render(m.help.View(m.keys))
	if m.notice != "" {
		footer = dimStyle.Render(m.notice)
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, footer)
}

// Stats returns the progress of the device.
func (m Model) Stats() core.RunStats {
	return m.s.firmware.Stats()
}

// Wait blocks until the firmware has stopped and the ride is recorded, or
// timeout passes. It returns the firmware's error.
func (m Model) Wait(timeout time.Duration) error {
	select {
	case <-m.s.done:
		return m.s.err
	case <-time.After(timeout):
		return fmt.Errorf("tui: firmware did not stop within %s", timeout)
	}
}

// Run hosts a device in the local terminal until the user quits.
func Run(ctx context.Context, env registry.Env) (core.RunStats, error) {
	model := NewModel(ctx, env, FrontendID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil // interrupted from outside
	}
	model.s.cancel()
	if waitErr := model.Wait(5 * time.Second); err == nil {
		err = waitErr
	}
	return model.Stats(), err
}
