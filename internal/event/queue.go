// Package event provides the bounded channel that carries button events from
// the interrupt context to the worker loop.
package event

import (
	"sync/atomic"

	"github.com/vovakirdan/pico-peloton/internal/core"
)

// Capacity is the fixed number of events the queue can hold.
const Capacity = 100

// Queue is a lock-free SPSC ring buffer of button events.
// Thread-Safety:
//   - Enqueue: single producer (interrupt handler)
//   - Dequeue: single consumer (worker loop)
//
// Overflow: new events are dropped when full, queued events are kept.
// Neither side blocks or allocates.
type Queue struct {
	events [Capacity]core.Button
	head   atomic.Uint64 // Read index, written only by the consumer
	tail   atomic.Uint64 // Write index, written only by the producer
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an event. Returns false if the queue is full; the event is
// then discarded.
func (q *Queue) Enqueue(b core.Button) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() >= Capacity {
		return false
	}
	q.events[tail%Capacity] = b
	q.tail.Store(tail + 1) // publishes the slot write
	return true
}

// Dequeue removes the oldest event. Returns false immediately if the queue
// is empty.
func (q *Queue) Dequeue() (core.Button, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return 0, false
	}
	b := q.events[head%Capacity]
	q.head.Store(head + 1) // releases the slot to the producer
	return b, true
}

// Len returns the number of queued events. It is exact only when called from
// the producer or consumer side while the other side is idle.
func (q *Queue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return Capacity
}
