package event

import (
	"sync"
	"testing"

	"github.com/vovakirdan/pico-peloton/internal/core"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	in := []core.Button{core.ButtonLeft, core.ButtonCenter, core.ButtonRight}
	for _, b := range in {
		if !q.Enqueue(b) {
			t.Fatalf("Enqueue(%v) failed on non-full queue", b)
		}
	}

	for i, want := range in {
		got, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue() #%d returned nothing", i)
		}
		if got != want {
			t.Errorf("Dequeue() #%d = %v, expected %v", i, got, want)
		}
	}

	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue() on drained queue should return false")
	}
}

func TestQueueOverflowDrops(t *testing.T) {
	q := NewQueue()

	for i := 0; i < Capacity; i++ {
		if !q.Enqueue(core.ButtonRight) {
			t.Fatalf("Enqueue #%d failed before capacity was reached", i)
		}
	}

	if q.Enqueue(core.ButtonLeft) {
		t.Error("Enqueue beyond capacity should return false")
	}
	if q.Len() != Capacity {
		t.Errorf("Expected Len() %d, got %d", Capacity, q.Len())
	}

	// The dropped Left must never appear
	count := 0
	for {
		b, ok := q.Dequeue()
		if !ok {
			break
		}
		if b != core.ButtonRight {
			t.Fatalf("Unexpected event %v after overflow", b)
		}
		count++
	}
	if count != Capacity {
		t.Errorf("Expected %d drained events, got %d", Capacity, count)
	}
}

func TestQueueWrapsAround(t *testing.T) {
	q := NewQueue()

	// Push the indices well past the buffer length
	for round := 0; round < 5; round++ {
		for i := 0; i < Capacity-1; i++ {
			q.Enqueue(core.Button(i % core.ButtonCount))
		}
		for i := 0; i < Capacity-1; i++ {
			b, ok := q.Dequeue()
			if !ok || b != core.Button(i%core.ButtonCount) {
				t.Fatalf("Round %d item %d: got %v (ok=%v)", round, i, b, ok)
			}
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got Len() %d", q.Len())
	}
}

func TestQueueConcurrentProducerConsumer(t *testing.T) {
	q := NewQueue()
	const total = 10000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; {
			if q.Enqueue(core.Button(i % core.ButtonCount)) {
				i++
			}
		}
	}()

	for i := 0; i < total; {
		b, ok := q.Dequeue()
		if !ok {
			continue
		}
		if b != core.Button(i%core.ButtonCount) {
			t.Fatalf("Item %d out of order: got %v", i, b)
		}
		i++
	}
	wg.Wait()
}
