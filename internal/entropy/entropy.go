// Package entropy provides single random bits for the simulation.
// On the board the bits come from the ring oscillator; on the host they come
// from a seeded generator so runs can be replayed.
package entropy

import (
	"math/rand"
	"sync"
)

// Source produces one random bit per call. Calls have no side effects
// visible to the simulation beyond the returned bit.
type Source interface {
	NextBit() bool
}

// Draw fills bits from src, one call per element.
func Draw(src Source, bits []bool) {
	for i := range bits {
		bits[i] = src.NextBit()
	}
}

// Oscillator stands in for the ring oscillator's random bit output.
type Oscillator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewOscillator creates a bit source seeded with seed.
func NewOscillator(seed int64) *Oscillator {
	return &Oscillator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the oscillator was created with.
func (o *Oscillator) Seed() int64 {
	return o.seed
}

// NextBit returns one random bit.
func (o *Oscillator) NextBit() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rng.Int63()&1 == 1
}

// Sequence replays a fixed bit pattern, cycling when exhausted.
// An empty sequence always returns false.
type Sequence struct {
	bits []bool
	pos  int
}

// NewSequence creates a replaying source.
func NewSequence(bits ...bool) *Sequence {
	return &Sequence{bits: bits}
}

// NextBit returns the next bit of the pattern.
func (s *Sequence) NextBit() bool {
	if len(s.bits) == 0 {
		return false
	}
	b := s.bits[s.pos]
	s.pos = (s.pos + 1) % len(s.bits)
	return b
}

// Constant always returns the same bit.
type Constant bool

// NextBit returns the constant.
func (c Constant) NextBit() bool {
	return bool(c)
}
