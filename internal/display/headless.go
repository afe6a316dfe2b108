package display

import (
	"sync/atomic"
	"time"
)

// Headless is a surface with no panel attached. Flush only emulates the bus
// transfer time, which is what paces the firmware loop.
type Headless struct {
	*Framebuffer
	latency time.Duration
	frames  atomic.Int64
}

// NewHeadless creates a headless surface. A zero latency makes Flush return
// immediately.
func NewHeadless(latency time.Duration) *Headless {
	return &Headless{
		Framebuffer: NewFramebuffer(),
		latency:     latency,
	}
}

// Flush counts the frame and waits for the emulated transfer.
func (h *Headless) Flush() error {
	if h.latency > 0 {
		time.Sleep(h.latency)
	}
	h.frames.Add(1)
	return nil
}

// Frames returns the number of flushed frames.
func (h *Headless) Frames() int64 {
	return h.frames.Load()
}
