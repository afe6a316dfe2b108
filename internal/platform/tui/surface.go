package tui

import (
	"context"
	"time"

	"github.com/vovakirdan/pico-peloton/internal/display"
)

// Surface is a framebuffer whose Flush hands the frame, rendered as
// half-block text, to the Bubble Tea program. A slow terminal slows the
// firmware down, as a slow bus would.
type Surface struct {
	*display.Framebuffer
	ctx     context.Context
	frames  chan string
	latency time.Duration
	invert  bool
}

// NewSurface creates a surface that stops accepting frames once ctx ends.
func NewSurface(ctx context.Context, latency time.Duration, invert bool) *Surface {
	return &Surface{
		Framebuffer: display.NewFramebuffer(),
		ctx:         ctx,
		frames:      make(chan string, 1),
		latency:     latency,
		invert:      invert,
	}
}

// Frames returns the channel flushed frames are delivered on.
func (s *Surface) Frames() <-chan string {
	return s.frames
}

// Flush renders the framebuffer and delivers it.
func (s *Surface) Flush() error {
	frame := s.HalfBlocks(s.invert)

	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		select {
		case <-t.C:
		case <-s.ctx.Done():
			t.Stop()
			return display.ErrClosed
		}
	}

	select {
	case s.frames <- frame:
		return nil
	case <-s.ctx.Done():
		return display.ErrClosed
	}
}
