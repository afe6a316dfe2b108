package hw

import "testing"

func TestSimPinEdgeLatch(t *testing.T) {
	p := NewSimPin(16, nil)
	p.SetInterruptEnabled(EdgeLow, true)

	if p.InterruptStatus(EdgeLow) {
		t.Fatal("Fresh pin should not report an edge")
	}

	p.Drive(true)  // press
	p.Drive(false) // release
	if !p.InterruptStatus(EdgeLow) {
		t.Fatal("Falling edge should stay latched after release")
	}
	if p.InterruptStatus(EdgeHigh) {
		t.Error("EdgeHigh is not enabled and must not report")
	}

	p.ClearInterrupt(EdgeLow)
	if p.InterruptStatus(EdgeLow) {
		t.Error("ClearInterrupt should drop the latched edge")
	}
}

func TestSimPinDisabledSourceIgnored(t *testing.T) {
	p := NewSimPin(17, nil)
	p.Drive(true)
	if p.InterruptStatus(EdgeLow) || p.Asserted() {
		t.Error("Disabled interrupt must not latch")
	}
	if !p.IsLow() {
		t.Error("Pin level should follow Drive")
	}
}

func TestSimPinRaisesController(t *testing.T) {
	irq := NewController()
	calls := 0
	irq.Attach(func() { calls++ })
	irq.Unmask()

	p := NewSimPin(18, irq)
	p.SetInterruptEnabled(EdgeLow, true)

	p.Drive(true)
	p.Drive(true) // no transition, no interrupt
	p.Drive(false)

	if calls != 1 {
		t.Errorf("Expected 1 interrupt for one falling edge, got %d", calls)
	}
}

func TestSimPinOutput(t *testing.T) {
	led := NewOutputPin(25)
	if led.IsHigh() {
		t.Fatal("Output pin should start low")
	}
	led.SetHigh()
	if !led.IsHigh() {
		t.Error("SetHigh should drive the pin high")
	}
	led.SetLow()
	if led.IsHigh() {
		t.Error("SetLow should drive the pin low")
	}
}
