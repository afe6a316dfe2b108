package hw

import "sync"

// CriticalSection runs a function with interrupts masked.
type CriticalSection interface {
	With(fn func())
}

// Controller emulates a single interrupt line (one NVIC vector) on the worker
// core. The line has a pending bit and a mask; the attached handler is never
// re-entered. A raise dispatches the handler in the raising goroutine, which
// models the handler preempting whatever was running.
type Controller struct {
	mu          sync.Mutex
	masked      bool
	pending     bool
	dispatching bool
	held        int // nesting depth of With
	handler     func()
	level       func() bool

	cs sync.Mutex
}

// NewController creates a masked interrupt line with no handler.
func NewController() *Controller {
	return &Controller{masked: true}
}

// Attach installs the interrupt handler.
func (c *Controller) Attach(handler func()) {
	c.mu.Lock()
	c.handler = handler
	c.mu.Unlock()
}

// SetLevel installs a callback reporting whether the peripheral still asserts
// the line. After each handler run the line re-pends while it returns true.
func (c *Controller) SetLevel(level func() bool) {
	c.mu.Lock()
	c.level = level
	c.mu.Unlock()
}

// Mask disables delivery. Raises while masked stay pending.
func (c *Controller) Mask() {
	c.mu.Lock()
	c.masked = true
	c.mu.Unlock()
}

// Unmask enables delivery and services anything that became pending while
// the line was masked.
func (c *Controller) Unmask() {
	c.mu.Lock()
	c.masked = false
	c.mu.Unlock()
	c.dispatch()
}

// Masked reports whether delivery is disabled.
func (c *Controller) Masked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.masked
}

// Raise sets the pending bit and delivers it if the line is unmasked.
func (c *Controller) Raise() {
	c.mu.Lock()
	c.pending = true
	c.mu.Unlock()
	c.dispatch()
}

// Pending reports whether an interrupt is waiting for delivery.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// With runs fn inside the critical section. Delivery is held off for its
// duration; a raise inside fn stays pending until fn returns.
func (c *Controller) With(fn func()) {
	c.cs.Lock()
	c.mu.Lock()
	c.held++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.held--
		c.mu.Unlock()
		c.cs.Unlock()
		c.dispatch()
	}()
	fn()
}

func (c *Controller) dispatch() {
	c.mu.Lock()
	if c.dispatching {
		// the running dispatcher picks the pending bit up
		c.mu.Unlock()
		return
	}
	c.dispatching = true
	for !c.masked && c.held == 0 && c.pending && c.handler != nil {
		c.pending = false
		handler, level := c.handler, c.level
		c.mu.Unlock()

		handler()

		c.mu.Lock()
		if level != nil && level() {
			c.pending = true
		}
	}
	c.dispatching = false
	c.mu.Unlock()
}
