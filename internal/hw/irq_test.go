package hw

import "testing"

func TestControllerMaskedRaiseStaysPending(t *testing.T) {
	irq := NewController()
	calls := 0
	irq.Attach(func() { calls++ })

	irq.Raise()
	if calls != 0 {
		t.Fatalf("Handler ran while masked (%d calls)", calls)
	}
	if !irq.Pending() {
		t.Fatal("Raise while masked should leave the line pending")
	}

	irq.Unmask()
	if calls != 1 {
		t.Errorf("Expected 1 call after unmask, got %d", calls)
	}
	if irq.Pending() {
		t.Error("Line should not be pending after delivery")
	}
}

func TestControllerRependsWhileLevelAsserted(t *testing.T) {
	irq := NewController()
	remaining := 3
	calls := 0
	irq.Attach(func() {
		calls++
		remaining--
	})
	irq.SetLevel(func() bool { return remaining > 0 })
	irq.Unmask()

	irq.Raise()
	if calls != 3 {
		t.Errorf("Expected handler to run until level dropped (3 calls), got %d", calls)
	}
}

func TestControllerNotReentered(t *testing.T) {
	irq := NewController()
	depth, maxDepth, calls := 0, 0, 0
	irq.Attach(func() {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		calls++
		if calls == 1 {
			irq.Raise() // nested raise must be deferred, not re-entered
		}
		depth--
	})
	irq.Unmask()
	irq.Raise()

	if maxDepth != 1 {
		t.Errorf("Handler re-entered, max depth %d", maxDepth)
	}
	if calls != 2 {
		t.Errorf("Expected nested raise to be serviced afterwards (2 calls), got %d", calls)
	}
}

func TestControllerCriticalSectionFromHandler(t *testing.T) {
	irq := NewController()
	ran := false
	irq.Attach(func() {
		irq.With(func() { ran = true })
	})
	irq.Unmask()
	irq.Raise()

	if !ran {
		t.Error("Critical section inside handler did not run")
	}
}

func TestControllerCriticalSectionHoldsOffDelivery(t *testing.T) {
	irq := NewController()
	calls := 0
	irq.Attach(func() { calls++ })
	irq.Unmask()

	irq.With(func() {
		irq.Raise()
		if calls != 0 {
			t.Errorf("Handler ran inside the critical section (%d calls)", calls)
		}
		if !irq.Pending() {
			t.Error("Raise inside the critical section should stay pending")
		}
	})

	if calls != 1 {
		t.Errorf("Expected pending interrupt delivered on exit (1 call), got %d", calls)
	}
}
