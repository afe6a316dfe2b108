package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/display"
)

// Device layout constants
const (
	panelCols = core.ScreenW
	panelRows = core.ScreenH / 2

	// bezel border plus padding
	deviceCols = panelCols + 4
	deviceRows = panelRows + 5
)

var (
	bezelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))
	ledOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
	ledOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// blankPanel is shown until the first frame arrives.
var blankPanel = strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", panelCols)+"\n", panelRows), "\n")

// RenderDevice draws the panel inside a bezel with the status LED and a
// status line underneath.
func RenderDevice(frame string, ledOn bool, stats core.RunStats, best int) string {
	if frame == "" {
		frame = blankPanel
	}

	led := ledOffStyle.Render("●")
	if ledOn {
		led = ledOnStyle.Render("●")
	}

	status := fmt.Sprintf("%s  score %06d  best %06d  tick %d", led, stats.Score, best, stats.Ticks)
	return lipgloss.JoinVertical(lipgloss.Left,
		bezelStyle.Render(panelStyle.Render(frame)),
		statusStyle.Render(status),
	)
}

// RenderTooSmall is shown when the terminal cannot fit the panel.
func RenderTooSmall(width, height int) string {
	return errorStyle.Render(fmt.Sprintf(
		"Terminal too small: %dx%d, need %dx%d", width, height, deviceCols, deviceRows,
	))
}

// Screenshot returns a plain-text capture of a frame.
func Screenshot(frame string, stats core.RunStats) string {
	if frame == "" {
		frame = display.NewFramebuffer().HalfBlocks(false)
	}
	return fmt.Sprintf("score %06d  tick %d  seed %d\n%s\n", stats.Score, stats.Ticks, stats.Seed, frame)
}
