// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestParticleGravitySkipsInfiniteMass(t *testing.T) {
	p := NewParticle()
	p.SetInverseMass(0)
	g := NewParticleGravity(lin.NewV3S(0, -9.81, 0))
	g.UpdateForce(p, 1.0/60.0)
	p.Integrate(1.0 / 60.0)

	if !p.Velocity.Aeq(lin.NewV3()) {
		t.Errorf("expected an infinite-mass particle to ignore gravity, got %+v", p.Velocity)
	}
}

func TestParticleBungeeOnlyPullsWhenStretchedPastRestLength(t *testing.T) {
	anchor := NewParticle()
	anchor.SetInverseMass(0)
	anchor.Position.SetS(0, 0, 0)

	p := NewParticle()
	p.SetMass(1)
	p.Damping = 1
	p.Position.SetS(1, 0, 0) // shorter than rest length: bungee is slack.

	bungee := NewParticleBungee(anchor, 10, 2)
	bungee.UpdateForce(p, 1.0/60.0)
	p.Integrate(1.0 / 60.0)
	if !p.Velocity.Aeq(lin.NewV3()) {
		t.Errorf("expected a slack bungee to apply no force, got %+v", p.Velocity)
	}

	p.Position.SetS(5, 0, 0) // stretched past rest length.
	bungee.UpdateForce(p, 1.0/60.0)
	p.Integrate(1.0 / 60.0)
	if p.Velocity.X >= 0 {
		t.Errorf("expected a stretched bungee to pull the particle back towards the anchor")
	}
}

func TestParticleFakeSpringSkipsOverdampedSystems(t *testing.T) {
	p := NewParticle()
	p.SetMass(1)
	p.Position.SetS(1, 0, 0)

	// damping^2 >= 4*springConst makes gamma negative: no closed form
	// solution is computed, matching the original's guard.
	s := NewParticleFakeSpring(lin.NewV3(), 1, 10)
	before := lin.NewV3().Set(p.Velocity)
	s.UpdateForce(p, 1.0/60.0)
	p.Integrate(1.0 / 60.0)

	if !p.Velocity.Eq(before) {
		t.Errorf("expected an overdamped fake spring to apply no force, got %+v", p.Velocity)
	}
}

func TestParticleFakeSpringPullsTowardsAnchor(t *testing.T) {
	p := NewParticle()
	p.SetMass(1)
	p.Position.SetS(2, 0, 0)

	s := NewParticleFakeSpring(lin.NewV3(), 50, 1)
	for i := 0; i < 10; i++ {
		s.UpdateForce(p, 1.0/60.0)
		p.Integrate(1.0 / 60.0)
	}

	if p.Position.X >= 2 {
		t.Errorf("expected the stiff spring to pull the particle towards its anchor, got %+v", p.Position)
	}
}

func TestParticleDragOpposesMotion(t *testing.T) {
	p := NewParticle()
	p.SetMass(1)
	p.Damping = 1
	p.Velocity.SetS(10, 0, 0)

	d := NewParticleDrag(0.1, 0.1)
	d.UpdateForce(p, 1.0/60.0)
	p.Integrate(1.0 / 60.0)

	if p.Velocity.X >= 10 {
		t.Errorf("expected drag to slow the particle, got %+v", p.Velocity)
	}
}
