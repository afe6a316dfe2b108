// Package hw models the board's input hardware: GPIO pins with interrupt
// status flags, a single-line interrupt controller, the one-time ownership
// handoff of the button pins and the edge interrupt handler that turns pin
// flags into button events.
package hw

import "sync/atomic"

// Interrupt selects one of the GPIO interrupt sources of a pin.
type Interrupt uint8

const (
	LevelLow Interrupt = iota
	LevelHigh
	EdgeLow
	EdgeHigh

	interruptKinds
)

// InputPin is the capability the interrupt handler needs from a button pin.
type InputPin interface {
	// InterruptStatus reports whether the given interrupt is asserted.
	InterruptStatus(kind Interrupt) bool

	// ClearInterrupt acknowledges a latched edge interrupt.
	ClearInterrupt(kind Interrupt)

	// IsLow reports the current input level.
	IsLow() bool
}

// Buttons is the set of pin resources handed from setup code to the
// interrupt handler.
type Buttons struct {
	Left   InputPin
	Center InputPin
	Right  InputPin
}

// SimPin emulates a pulled-up GPIO pin. Buttons pull it low when pressed.
// It doubles as a push-pull output for the status LED.
type SimPin struct {
	id      int
	low     atomic.Bool
	enabled [interruptKinds]atomic.Bool
	latched [interruptKinds]atomic.Bool
	irq     *Controller
}

// NewSimPin creates a pulled-up input pin wired to the given interrupt
// controller (may be nil).
func NewSimPin(id int, irq *Controller) *SimPin {
	return &SimPin{id: id, irq: irq}
}

// NewOutputPin creates a push-pull output. It comes out of reset driven low.
func NewOutputPin(id int) *SimPin {
	p := &SimPin{id: id}
	p.low.Store(true)
	return p
}

// ID returns the GPIO number.
func (p *SimPin) ID() int {
	return p.id
}

// SetInterruptEnabled enables or disables one interrupt source.
func (p *SimPin) SetInterruptEnabled(kind Interrupt, on bool) {
	p.enabled[kind].Store(on)
	if !on {
		p.latched[kind].Store(false)
	}
}

// InterruptStatus reports whether the given interrupt is asserted.
// Level interrupts follow the pin; edge interrupts stay latched until cleared.
func (p *SimPin) InterruptStatus(kind Interrupt) bool {
	if !p.enabled[kind].Load() {
		return false
	}
	switch kind {
	case LevelLow:
		return p.low.Load()
	case LevelHigh:
		return !p.low.Load()
	default:
		return p.latched[kind].Load()
	}
}

// ClearInterrupt acknowledges a latched edge interrupt. Level sources cannot
// be cleared and are ignored.
func (p *SimPin) ClearInterrupt(kind Interrupt) {
	if kind == EdgeLow || kind == EdgeHigh {
		p.latched[kind].Store(false)
	}
}

// IsLow reports the current pin level.
func (p *SimPin) IsLow() bool {
	return p.low.Load()
}

// Drive sets the pin level as an external circuit would, latching edge
// interrupts and raising the interrupt line when an enabled source fires.
func (p *SimPin) Drive(low bool) {
	if p.low.Swap(low) == low {
		return // no transition
	}

	edge := EdgeHigh
	if low {
		edge = EdgeLow
	}
	fired := false
	if p.enabled[edge].Load() {
		p.latched[edge].Store(true)
		fired = true
	}
	if (low && p.enabled[LevelLow].Load()) || (!low && p.enabled[LevelHigh].Load()) {
		fired = true
	}

	if fired && p.irq != nil {
		p.irq.Raise()
	}
}

// Asserted reports whether any enabled interrupt source is asserted.
func (p *SimPin) Asserted() bool {
	for k := Interrupt(0); k < interruptKinds; k++ {
		if p.InterruptStatus(k) {
			return true
		}
	}
	return false
}

// SetHigh drives the pin high when used as an output.
func (p *SimPin) SetHigh() {
	p.low.Store(false)
}

// SetLow drives the pin low when used as an output.
func (p *SimPin) SetLow() {
	p.low.Store(true)
}

// IsHigh reports the output level.
func (p *SimPin) IsHigh() bool {
	return !p.low.Load()
}
