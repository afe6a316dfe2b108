// Package device assembles the emulated board and runs the firmware on it:
// a bootstrap context, a worker context with the interrupt bridge, and the
// fixed-step loop that ties input, simulation and rendering together.
package device

import (
	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/entropy"
	"github.com/vovakirdan/pico-peloton/internal/hw"
)

// GPIO numbers of the board wiring.
const (
	PinLeft   = 16
	PinCenter = 17
	PinRight  = 18
	PinLED    = 25
)

// Board is the emulated hardware: three active-low buttons sharing one bank
// interrupt line, the status LED and the entropy source.
type Board struct {
	IRQ     *hw.Controller
	Left    *hw.SimPin
	Center  *hw.SimPin
	Right   *hw.SimPin
	LED     *hw.SimPin
	Entropy entropy.Source
}

// NewBoard wires up a board around src. The interrupt line starts masked.
func NewBoard(src entropy.Source) *Board {
	irq := hw.NewController()
	b := &Board{
		IRQ:     irq,
		Left:    hw.NewSimPin(PinLeft, irq),
		Center:  hw.NewSimPin(PinCenter, irq),
		Right:   hw.NewSimPin(PinRight, irq),
		LED:     hw.NewOutputPin(PinLED),
		Entropy: src,
	}
	irq.SetLevel(b.asserted)
	return b
}

// Buttons returns the button pins as the bridge sees them.
func (b *Board) Buttons() hw.Buttons {
	return hw.Buttons{Left: b.Left, Center: b.Center, Right: b.Right}
}

// Pin returns the pin wired to btn.
func (b *Board) Pin(btn core.Button) *hw.SimPin {
	switch btn {
	case core.ButtonLeft:
		return b.Left
	case core.ButtonCenter:
		return b.Center
	default:
		return b.Right
	}
}

// Press pushes and releases a button. With the line unmasked the interrupt is
// serviced before Press returns; otherwise it stays latched until unmask.
func (b *Board) Press(btn core.Button) {
	pin := b.Pin(btn)
	pin.Drive(true)
	pin.Drive(false)
}

// Ready reports whether the firmware has lit the status LED.
func (b *Board) Ready() bool {
	return b.LED.IsHigh()
}

func (b *Board) asserted() bool {
	return b.Left.Asserted() || b.Center.Asserted() || b.Right.Asserted()
}
