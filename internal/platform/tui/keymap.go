package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pico-peloton/internal/config"
	"github.com/vovakirdan/pico-peloton/internal/core"
)

// KeyMap defines the key bindings for a ride.
type KeyMap struct {
	Left       key.Binding
	Center     key.Binding
	Right      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Center, k.Right, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Center, k.Right},
		{k.Screenshot, k.Quit},
	}
}

// NewKeyMap builds the bindings from the configured keys.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(cfg.Left...),
			key.WithHelp(helpKeys(cfg.Left), "slower"),
		),
		Center: key.NewBinding(
			key.WithKeys(cfg.Center...),
			key.WithHelp(helpKeys(cfg.Center), "center"),
		),
		Right: key.NewBinding(
			key.WithKeys(cfg.Right...),
			key.WithHelp(helpKeys(cfg.Right), "faster"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys(cfg.Quit...),
			key.WithHelp(helpKeys(cfg.Quit), "quit"),
		),
	}
}

// Button translates a key message to a device button.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Center):
		return core.ButtonCenter, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	}
	return 0, false
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
