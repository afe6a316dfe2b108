package device

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/display"
	"github.com/vovakirdan/pico-peloton/internal/event"
	"github.com/vovakirdan/pico-peloton/internal/hw"
	"github.com/vovakirdan/pico-peloton/internal/ride"
	"github.com/vovakirdan/pico-peloton/internal/scenery"
)

// ErrAlreadyRun is returned when Run is called on a firmware that has run before.
var ErrAlreadyRun = errors.New("device: firmware already ran")

// Options configures a firmware run.
type Options struct {
	Logger   *log.Logger
	Seed     int64 // reported in Stats only
	MaxTicks int64 // stop cleanly after this many ticks, 0 = until cancelled

	// Scenery overrides the embedded background tiles.
	Scenery func() (*scenery.Background, error)
}

// Firmware runs the two device contexts on a board.
type Firmware struct {
	board   *Board
	surface display.Surface
	opts    Options
	logger  *log.Logger

	started atomic.Bool
	score   atomic.Int64
	ticks   atomic.Int64
	state   atomic.Pointer[ride.State]
}

// New creates firmware for board that renders to surface.
func New(board *Board, surface display.Surface, opts Options) *Firmware {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Scenery == nil {
		opts.Scenery = scenery.New
	}
	return &Firmware{
		board:   board,
		surface: surface,
		opts:    opts,
		logger:  logger,
	}
}

// Run starts the bootstrap context, which starts the worker, and blocks until
// the worker stops. Cancelling ctx is a clean shutdown; initialization and
// flush failures are returned.
func (f *Firmware) Run(ctx context.Context) error {
	if !f.started.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return f.bootstrap(ctx, g) })

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// Stats returns the progress published by the worker.
func (f *Firmware) Stats() core.RunStats {
	return core.RunStats{
		Score: int(f.score.Load()),
		Ticks: f.ticks.Load(),
		Seed:  f.opts.Seed,
	}
}

// State returns the simulation snapshot published after the last tick, or
// false before the first tick.
func (f *Firmware) State() (ride.State, bool) {
	st := f.state.Load()
	if st == nil {
		return ride.State{}, false
	}
	return *st, true
}

// Board returns the board the firmware runs on.
func (f *Firmware) Board() *Board {
	return f.board
}

func (f *Firmware) bootstrap(ctx context.Context, g *errgroup.Group) error {
	f.logger.Info("inited core0")

	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return f.worker(ctx)
	})

	select {
	case <-ctx.Done():
	case <-done:
	}
	return nil
}

func (f *Firmware) worker(ctx context.Context) error {
	if panel, ok := f.surface.(display.Initializer); ok {
		if err := panel.Init(); err != nil {
			return fmt.Errorf("device: display init: %w", err)
		}
	}

	bg, err := f.opts.Scenery()
	if err != nil {
		return fmt.Errorf("device: load background: %w", err)
	}

	buttons := f.board.Buttons()
	for _, pin := range []*hw.SimPin{f.board.Left, f.board.Center, f.board.Right} {
		pin.SetInterruptEnabled(hw.EdgeLow, true)
	}

	slot := hw.NewSlot[hw.Buttons](f.board.IRQ)
	if err := slot.Deposit(buttons); err != nil {
		return fmt.Errorf("device: hand over buttons: %w", err)
	}

	queue := event.NewQueue()
	game := ride.New()
	bridge := hw.NewBridge(slot, queue)

	// pins must be in the slot before the handler can run
	f.board.IRQ.Attach(bridge.Handle)
	f.board.IRQ.Unmask()

	f.board.LED.SetHigh()
	f.logger.Info("inited core1")

	loop := NewLoop(queue, game, bg, f.board.Entropy, f.surface, f.logger)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.opts.MaxTicks > 0 && loop.Ticks() >= f.opts.MaxTicks {
			f.logger.Debug("tick limit reached", "ticks", loop.Ticks())
			return nil
		}
		if err := loop.Step(); err != nil {
			if ctx.Err() != nil {
				// the surface went away during shutdown
				return ctx.Err()
			}
			return err
		}
		st := game.State()
		f.state.Store(&st)
		f.score.Store(int64(st.Score))
		f.ticks.Store(loop.Ticks())
	}
}
