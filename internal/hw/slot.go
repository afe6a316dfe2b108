package hw

import "errors"

// ErrSlotUsed is returned when a slot is deposited into a second time.
var ErrSlotUsed = errors.New("hw: slot already deposited")

// Slot holds a resource that is deposited once by setup code and taken at
// most once by its final owner. Both operations run inside a critical
// section so they cannot race with the interrupt handler.
type Slot[T any] struct {
	cs        CriticalSection
	value     T
	full      bool
	deposited bool
}

// NewSlot creates an empty slot guarded by cs.
func NewSlot[T any](cs CriticalSection) *Slot[T] {
	return &Slot[T]{cs: cs}
}

// Deposit stores v. It must happen before the consumer's interrupt is
// unmasked and may only be called once.
func (s *Slot[T]) Deposit(v T) error {
	var err error
	s.cs.With(func() {
		if s.deposited {
			err = ErrSlotUsed
			return
		}
		s.value = v
		s.full = true
		s.deposited = true
	})
	return err
}

// Take moves the resource out of the slot. Every call after the first
// successful one returns false.
func (s *Slot[T]) Take() (T, bool) {
	var (
		v  T
		ok bool
	)
	s.cs.With(func() {
		if !s.full {
			return
		}
		v, ok = s.value, true
		var zero T
		s.value = zero
		s.full = false
	})
	return v, ok
}
