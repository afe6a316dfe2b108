// Package console is a direct-draw frontend: the panel is painted straight
// onto the terminal with tcell, without a UI framework in between.
package console

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pico-peloton/internal/config"
	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/device"
	"github.com/vovakirdan/pico-peloton/internal/display"
	"github.com/vovakirdan/pico-peloton/internal/entropy"
	"github.com/vovakirdan/pico-peloton/internal/registry"
)

// FrontendID is the registry ID of the console frontend.
const FrontendID = "console"

func init() {
	registry.Register(registry.Frontend{
		ID:    FrontendID,
		Title: "tcell console",
		Run:   Run,
	})
}

// Surface paints the framebuffer onto a tcell screen. The screen is brought
// up by Init, which the firmware calls from the worker.
type Surface struct {
	*display.Framebuffer
	screen  tcell.Screen
	latency time.Duration
	invert  bool

	panel  tcell.Style
	footer tcell.Style

	// Footer returns the text shown under the panel.
	Footer func() string

	ready    chan struct{}
	initOnce sync.Once
	inited   bool
}

// NewSurface creates a surface on screen.
func NewSurface(screen tcell.Screen, latency time.Duration, invert bool) *Surface {
	return &Surface{
		Framebuffer: display.NewFramebuffer(),
		screen:      screen,
		latency:     latency,
		invert:      invert,
		panel:       tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue),
		footer:      tcell.StyleDefault.Foreground(tcell.ColorGray),
		ready:       make(chan struct{}),
	}
}

// Init brings up the terminal.
func (s *Surface) Init() error {
	var err error
	s.initOnce.Do(func() {
		if err = s.screen.Init(); err != nil {
			err = fmt.Errorf("console: init screen: %w", err)
			return
		}
		s.screen.Clear()
		s.inited = true
		close(s.ready)
	})
	return err
}

// Ready is closed once the screen is up.
func (s *Surface) Ready() <-chan struct{} {
	return s.ready
}

// Flush paints the panel and the footer.
func (s *Surface) Flush() error {
	if !s.inited {
		return display.ErrClosed
	}

	for row := range s.Rows() {
		for x := range s.Width() {
			s.screen.SetContent(x, row, s.Cell(x, row, s.invert), nil, s.panel)
		}
	}

	if s.Footer != nil {
		y := s.Rows()
		text := []rune(s.Footer())
		for x := range s.Width() {
			r := ' '
			if x < len(text) {
				r = text[x]
			}
			s.screen.SetContent(x, y, r, nil, s.footer)
		}
	}

	s.screen.Show()
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
	return nil
}

// Close restores the terminal if Init succeeded.
func (s *Surface) Close() {
	if s.inited {
		s.screen.Fini()
	}
}

// namedKeys maps binding names to tcell keys. Other names are single runes.
var namedKeys = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
}

// Matches reports whether ev is one of the named keys.
func Matches(ev *tcell.EventKey, names []string) bool {
	for _, name := range names {
		if k, ok := namedKeys[name]; ok {
			if ev.Key() == k {
				return true
			}
			continue
		}
		if ev.Key() == tcell.KeyRune && string(ev.Rune()) == name {
			return true
		}
	}
	return false
}

// Button translates a key event to a device button.
func Button(ev *tcell.EventKey, keys config.KeyConfig) (core.Button, bool) {
	switch {
	case Matches(ev, keys.Left):
		return core.ButtonLeft, true
	case Matches(ev, keys.Center):
		return core.ButtonCenter, true
	case Matches(ev, keys.Right):
		return core.ButtonRight, true
	}
	return 0, false
}

// Run hosts a device on the terminal until the user quits.
func Run(ctx context.Context, env registry.Env) (core.RunStats, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.RunStats{}, fmt.Errorf("console: %w", err)
	}
	return run(ctx, env, screen)
}

func run(ctx context.Context, env registry.Env, screen tcell.Screen) (core.RunStats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	board := device.NewBoard(entropy.NewOscillator(env.Seed))
	surface := NewSurface(screen, env.Config.Display.FlushLatency, env.Config.Display.Invert)
	fw := device.New(board, surface, device.Options{
		Logger:   env.Logger,
		Seed:     env.Seed,
		MaxTicks: env.MaxTicks,
	})
	surface.Footer = func() string {
		led := "○"
		if board.Ready() {
			led = "●"
		}
		st := fw.Stats()
		return fmt.Sprintf("%s tick %d  q quit", led, st.Ticks)
	}

	inputDone := make(chan struct{})
	go func() {
		defer close(inputDone)
		select {
		case <-surface.Ready():
		case <-ctx.Done():
			return
		}
		pollInput(screen, env.Config.Keys, board, cancel)
	}()

	err := fw.Run(ctx)
	cancel()
	surface.Close()
	<-inputDone

	stats := fw.Stats()
	env.Record(FrontendID, stats)
	return stats, err
}

// pollInput feeds key presses to the board until the screen is finalized or
// the user quits.
func pollInput(screen tcell.Screen, keys config.KeyConfig, board *device.Board, quit func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if Matches(ev, keys.Quit) {
				quit()
				return
			}
			if b, ok := Button(ev, keys); ok {
				board.Press(b)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
