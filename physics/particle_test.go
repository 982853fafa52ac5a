// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

// A particle under gravity alone should fall along a parabolic path and
// never develop horizontal velocity.
func TestParticleFallingUnderGravity(t *testing.T) {
	p := NewParticle()
	p.SetMass(1)
	p.Damping = 1 // isolate integration from damping for this check.
	p.Acceleration = lin.NewV3S(0, -9.81, 0)

	const dt = 1.0 / 60.0
	for i := 0; i < 600; i++ { // 10 seconds
		p.Integrate(dt)
	}

	if p.Velocity.X != 0 || p.Velocity.Z != 0 {
		t.Errorf("expected no horizontal velocity, got %+v", p.Velocity)
	}
	if p.Velocity.Y >= 0 {
		t.Errorf("expected downward velocity, got %v", p.Velocity.Y)
	}
	if p.Position.Y >= 0 {
		t.Errorf("expected particle to have fallen, got y=%v", p.Position.Y)
	}
}

func TestParticleInfiniteMassIsUnaffectedByForce(t *testing.T) {
	p := NewParticle()
	p.SetInverseMass(0)
	p.AddForce(lin.NewV3S(0, -100, 0))
	p.Integrate(1.0 / 60.0)

	if !p.Velocity.Aeq(lin.NewV3()) {
		t.Errorf("expected zero velocity, got %+v", p.Velocity)
	}
}

func TestParticleSetMassPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected SetMass(0) to panic")
		}
	}()
	NewParticle().SetMass(0)
}

func TestParticleIntegrateIgnoresNonPositiveDuration(t *testing.T) {
	p := NewParticle()
	p.SetMass(1)
	p.Velocity.SetS(1, 2, 3)
	p.Integrate(0)

	if !p.Velocity.Eq(lin.NewV3S(1, 2, 3)) {
		t.Errorf("expected velocity unchanged, got %+v", p.Velocity)
	}
}

func TestParticleClearAccumulatorResetsForce(t *testing.T) {
	p := NewParticle()
	p.AddForce(lin.NewV3S(5, 5, 5))
	p.ClearAccumulator()
	p.SetMass(1)
	p.Integrate(1)

	if !p.Velocity.Aeq(lin.NewV3()) {
		t.Errorf("expected accumulator to have been cleared, got velocity %+v", p.Velocity)
	}
}
