package hw

import (
	"errors"
	"testing"
)

func TestSlotTakeOnce(t *testing.T) {
	irq := NewController()
	slot := NewSlot[int](irq)

	if _, ok := slot.Take(); ok {
		t.Error("Take() on empty slot should return false")
	}

	if err := slot.Deposit(42); err != nil {
		t.Fatalf("Deposit() failed: %v", err)
	}

	v, ok := slot.Take()
	if !ok || v != 42 {
		t.Fatalf("Expected first Take() to return 42, got %d (ok=%v)", v, ok)
	}

	// Second take is a no-op, not an error
	v, ok = slot.Take()
	if ok {
		t.Errorf("Second Take() should return false, got %d", v)
	}
}

func TestSlotDepositTwice(t *testing.T) {
	slot := NewSlot[string](NewController())

	if err := slot.Deposit("pins"); err != nil {
		t.Fatalf("Deposit() failed: %v", err)
	}
	if err := slot.Deposit("again"); !errors.Is(err, ErrSlotUsed) {
		t.Errorf("Expected ErrSlotUsed, got %v", err)
	}

	// Redepositing after a take is also refused
	slot.Take()
	if err := slot.Deposit("late"); !errors.Is(err, ErrSlotUsed) {
		t.Errorf("Expected ErrSlotUsed after take, got %v", err)
	}
	if _, ok := slot.Take(); ok {
		t.Error("Slot should stay empty after the handoff")
	}
}
