package entropy

import "testing"

func TestOscillatorDeterminism(t *testing.T) {
	a := NewOscillator(12345)
	b := NewOscillator(12345)

	for i := 0; i < 500; i++ {
		if a.NextBit() != b.NextBit() {
			t.Fatalf("Same seed diverged at bit %d", i)
		}
	}
}

func TestOscillatorProducesBothValues(t *testing.T) {
	o := NewOscillator(7)
	ones := 0
	const n = 1000
	for i := 0; i < n; i++ {
		if o.NextBit() {
			ones++
		}
	}
	if ones == 0 || ones == n {
		t.Errorf("Expected a mix of bits, got %d ones out of %d", ones, n)
	}
}

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(true, false, false)
	want := []bool{true, false, false, true, false, false, true}
	for i, w := range want {
		if got := s.NextBit(); got != w {
			t.Errorf("Bit %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestEmptySequence(t *testing.T) {
	s := NewSequence()
	if s.NextBit() {
		t.Error("Empty sequence should return false")
	}
}

func TestDraw(t *testing.T) {
	var bits [3]bool
	Draw(NewSequence(true, false, true), bits[:])
	if bits != [3]bool{true, false, true} {
		t.Errorf("Draw() = %v, expected [true false true]", bits)
	}

	Draw(Constant(true), bits[:])
	if bits != [3]bool{true, true, true} {
		t.Errorf("Draw(Constant) = %v", bits)
	}
}
