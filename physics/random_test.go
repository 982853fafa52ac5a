// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestRandomIsReproducibleForAGivenSeed(t *testing.T) {
	a := NewRandom(1234)
	b := NewRandom(1234)

	for i := 0; i < 20; i++ {
		if x, y := a.Bits(), b.Bits(); x != y {
			t.Fatalf("iteration %d: expected identical streams for the same seed, got %v and %v", i, x, y)
		}
	}
}

func TestRandomDifferentSeedsDiverge(t *testing.T) {
	a := NewRandom(1)
	b := NewRandom(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Bits() != b.Bits() {
			same = false
			break
		}
	}
	if same {
		t.Errorf("expected different seeds to produce different streams")
	}
}

func TestRandomRealIsWithinUnitRange(t *testing.T) {
	r := NewRandom(42)
	for i := 0; i < 1000; i++ {
		v := r.Real()
		if v < 0 || v > 1 {
			t.Fatalf("iteration %d: Real() out of range: %v", i, v)
		}
	}
}

func TestRandomRealRangeRespectsBounds(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 1000; i++ {
		v := r.RealRange(-5, 5)
		if v < -5 || v > 5 {
			t.Fatalf("iteration %d: RealRange out of bounds: %v", i, v)
		}
	}
}

func TestRandomIntRespectsMax(t *testing.T) {
	r := NewRandom(99)
	for i := 0; i < 1000; i++ {
		v := r.Int(10)
		if v >= 10 {
			t.Fatalf("iteration %d: Int(10) returned %v", i, v)
		}
	}
}

func TestRandomQuaternionIsUnit(t *testing.T) {
	r := NewRandom(55)
	for i := 0; i < 100; i++ {
		q := r.Quaternion()
		if l := q.Len(); l < 1-lin.Epsilon*100 || l > 1+lin.Epsilon*100 {
			t.Fatalf("iteration %d: expected a unit quaternion, got length %v", i, l)
		}
	}
}

func TestRandomXZVectorHasZeroYComponent(t *testing.T) {
	r := NewRandom(3)
	for i := 0; i < 100; i++ {
		v := r.XZVector(10)
		if v.Y != 0 {
			t.Fatalf("iteration %d: expected a zero Y component, got %+v", i, v)
		}
	}
}
