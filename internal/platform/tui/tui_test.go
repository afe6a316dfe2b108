package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pico-peloton/internal/config"
	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/display"
	"github.com/vovakirdan/pico-peloton/internal/registry"
	"github.com/vovakirdan/pico-peloton/internal/storage"
)

func TestSurfaceDeliversFrames(t *testing.T) {
	s := NewSurface(context.Background(), 0, false)
	s.SetPixel(0, 0, true)

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	frame := <-s.Frames()
	lines := strings.Split(frame, "\n")
	if len(lines) != core.ScreenH/2 {
		t.Fatalf("Expected %d rows, got %d", core.ScreenH/2, len(lines))
	}
	if !strings.HasPrefix(lines[0], "▀") {
		t.Errorf("Expected upper half block at origin, got %q", lines[0][:4])
	}
}

func TestSurfaceClosedAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSurface(ctx, time.Hour, false)
	cancel()

	if err := s.Flush(); !errors.Is(err, display.ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestKeyMapButtons(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		msg  tea.KeyMsg
		want core.Button
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ButtonLeft},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ButtonCenter},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ButtonRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ButtonRight},
	}

	for _, tt := range tests {
		got, ok := km.Button(tt.msg)
		if !ok || got != tt.want {
			t.Errorf("Key %q: expected %v, got %v (ok=%v)", tt.msg.String(), tt.want, got, ok)
		}
	}

	if _, ok := km.Button(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); ok {
		t.Error("Unbound key should not map to a button")
	}
}

func TestRenderDevice(t *testing.T) {
	out := RenderDevice("", true, core.RunStats{Score: 240, Ticks: 80}, 300)

	for _, want := range []string{"000240", "000300", "tick 80"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in device view", want)
		}
	}
}

func TestScreenshotHeader(t *testing.T) {
	out := Screenshot("", core.RunStats{Score: 10, Ticks: 5, Seed: 7})
	if !strings.HasPrefix(out, "score 000010  tick 5  seed 7\n") {
		t.Errorf("Unexpected screenshot header: %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestModelRunsAndRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	env := registry.Env{
		Config:   config.Default(),
		Store:    store,
		Player:   "ana",
		Seed:     3,
		MaxTicks: 5,
	}
	env.Config.Display.FlushLatency = 0

	m := NewModel(context.Background(), env, FrontendID)

	// consume frames like the program would
	go func(ui Model) {
		for {
			msg := ui.waitForFrame()
			if msg == nil {
				return
			}
			next, _ := ui.Update(msg)
			ui = next.(Model)
		}
	}(m)

	msg := m.runFirmware()
	exit, ok := msg.(firmwareExitMsg)
	if !ok {
		t.Fatalf("Expected firmwareExitMsg, got %T", msg)
	}
	if exit.err != nil {
		t.Fatalf("Firmware failed: %v", exit.err)
	}
	if err := m.Wait(time.Second); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	next, cmd := m.Update(exit)
	if cmd == nil {
		t.Error("Firmware exit should quit the program")
	}
	if next.(Model).View() != "" {
		t.Error("Quitting model should render nothing")
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 1 {
		t.Fatalf("Expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Ticks != 5 || runs[0].Player != "ana" || runs[0].Frontend != FrontendID {
		t.Errorf("Unexpected run %+v", runs[0])
	}
}

func TestModelQuitKeyStopsDevice(t *testing.T) {
	env := registry.Env{Config: config.Default(), Seed: 1}
	m := NewModel(context.Background(), env, FrontendID)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Quit key should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("Quitting model should render nothing")
	}
	if m.s.ctx.Err() == nil {
		t.Error("Quit should cancel the device context")
	}
}

func TestModelTooSmall(t *testing.T) {
	m := NewModel(context.Background(), registry.Env{Config: config.Default()}, FrontendID)
	defer m.s.cancel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(next.(Model).View(), "too small") {
		t.Error("Expected too-small notice")
	}
}

func TestScoreboardSwitchesViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("ana", "terminal", core.RunStats{Score: 10, Ticks: 40})
	store.SaveRun("bo", "terminal", core.RunStats{Score: 20, Ticks: 40})

	m := NewScoreboardModel(store, "ana", 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("Expected 2 top runs, got %d", len(m.runs))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.runs) != 1 || m.runs[0].Player != "ana" {
		t.Errorf("Expected only ana's runs, got %+v", m.runs)
	}
	if !strings.Contains(m.View(), "MY RIDES") {
		t.Error("Expected MY RIDES title")
	}
}
