package device

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/display"
	"github.com/vovakirdan/pico-peloton/internal/entropy"
	"github.com/vovakirdan/pico-peloton/internal/ride"
	"github.com/vovakirdan/pico-peloton/internal/scenery"
)

// EventSource is the consumer side of the event channel.
type EventSource interface {
	Dequeue() (core.Button, bool)
}

// Loop is the worker's fixed-step orchestration loop. Each Step is one tick;
// the tick rate is whatever Flush takes.
type Loop struct {
	events  EventSource
	game    *ride.Game
	scenery *scenery.Background
	src     entropy.Source
	surface display.Surface
	logger  *log.Logger

	ticks int64
}

// NewLoop creates a loop. A nil logger uses the default logger.
func NewLoop(events EventSource, game *ride.Game, bg *scenery.Background, src entropy.Source, surface display.Surface, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		events:  events,
		game:    game,
		scenery: bg,
		src:     src,
		surface: surface,
		logger:  logger,
	}
}

// Step drains pending input, advances the simulation and scenery by one tick
// and submits a frame.
func (l *Loop) Step() error {
	for {
		b, ok := l.events.Dequeue()
		if !ok {
			break
		}
		l.logger.Debug("button", "button", b, "tick", l.ticks)
		l.game.ProcessInput(b)
	}

	var bits [ride.FriendCount]bool
	entropy.Draw(l.src, bits[:])
	l.game.Tick(bits)
	l.scenery.Advance(-l.game.PlayerVelocity())

	l.surface.Clear()
	l.scenery.Draw(l.surface)
	l.game.Render(l.surface)
	if err := l.surface.Flush(); err != nil {
		return fmt.Errorf("device: flush frame %d: %w", l.ticks, err)
	}

	l.ticks++
	return nil
}

// Ticks returns the number of completed steps.
func (l *Loop) Ticks() int64 {
	return l.ticks
}

// Game returns the simulation driven by the loop.
func (l *Loop) Game() *ride.Game {
	return l.game
}
