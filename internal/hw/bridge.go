package hw

import "github.com/vovakirdan/pico-peloton/internal/core"

// EventSink accepts button events without blocking.
type EventSink interface {
	Enqueue(b core.Button) bool
}

// Bridge is the GPIO bank edge-low interrupt handler. On its first run it
// takes the button pins out of the shared slot and keeps them; later runs do
// not touch the critical section.
type Bridge struct {
	slot *Slot[Buttons]
	sink EventSink

	pins  Buttons
	owned bool
}

// NewBridge creates a handler that will claim its pins from slot and publish
// events into sink.
func NewBridge(slot *Slot[Buttons], sink EventSink) *Bridge {
	return &Bridge{slot: slot, sink: sink}
}

// claimed reports whether the handler has taken the pins. Only valid from the
// interrupt context.
func (b *Bridge) claimed() bool {
	return b.owned
}

// Handle services one interrupt. Only the first asserted button in the order
// Left, Center, Right is handled per call; the line re-pends for the rest.
func (b *Bridge) Handle() {
	if !b.owned {
		b.pins, b.owned = b.slot.Take()
		if !b.owned {
			return
		}
	}

	switch {
	case b.pins.Left.InterruptStatus(EdgeLow):
		b.sink.Enqueue(core.ButtonLeft)
		b.pins.Left.ClearInterrupt(EdgeLow)
	case b.pins.Center.InterruptStatus(EdgeLow):
		b.sink.Enqueue(core.ButtonCenter)
		b.pins.Center.ClearInterrupt(EdgeLow)
	case b.pins.Right.InterruptStatus(EdgeLow):
		b.sink.Enqueue(core.ButtonRight)
		b.pins.Right.ClearInterrupt(EdgeLow)
	}
}
