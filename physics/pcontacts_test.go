// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestParticleContactSeparatingVelocityIgnoresApproachingWhenPositive(t *testing.T) {
	a, b := NewParticle(), NewParticle()
	a.SetMass(1)
	b.SetMass(1)
	a.Velocity.SetS(-1, 0, 0) // moving apart.
	b.Velocity.SetS(1, 0, 0)

	c := ParticleContact{Restitution: 1, ContactNormal: lin.NewV3S(1, 0, 0)}
	c.Particles[0], c.Particles[1] = a, b

	before := lin.NewV3().Set(a.Velocity)
	c.resolveVelocity(1.0 / 60.0)
	if !a.Velocity.Eq(before) {
		t.Errorf("expected no resolution for separating particles, got %+v", a.Velocity)
	}
}

func TestParticleContactResolveVelocityConservesMomentumForEqualMasses(t *testing.T) {
	a, b := NewParticle(), NewParticle()
	a.SetMass(1)
	b.SetMass(1)
	a.Velocity.SetS(1, 0, 0)
	b.Velocity.SetS(-1, 0, 0) // closing.

	c := ParticleContact{Restitution: 1, ContactNormal: lin.NewV3S(1, 0, 0)}
	c.Particles[0], c.Particles[1] = a, b
	c.resolveVelocity(1.0 / 60.0)

	totalMomentum := a.Velocity.X + b.Velocity.X
	if math.Abs(totalMomentum) > lin.Epsilon {
		t.Errorf("expected momentum to be conserved, got total %v", totalMomentum)
	}
}

func TestParticleContactResolveInterpenetrationSplitsByInverseMass(t *testing.T) {
	light, heavy := NewParticle(), NewParticle()
	light.SetMass(1)
	heavy.SetMass(3)
	light.Position.SetS(0, 0, 0)
	heavy.Position.SetS(1, 0, 0)

	c := ParticleContact{Penetration: 1, ContactNormal: lin.NewV3S(-1, 0, 0)}
	c.Particles[0], c.Particles[1] = light, heavy
	c.resolveInterpenetration(1.0 / 60.0)

	// the lighter particle (larger inverse mass) should move further.
	lightMove := math.Abs(light.Position.X)
	heavyMove := math.Abs(heavy.Position.X - 1)
	if lightMove <= heavyMove {
		t.Errorf("expected the lighter particle to move further: light=%v heavy=%v", lightMove, heavyMove)
	}
}

func TestParticleContactResolverPrioritizesMostSevereContact(t *testing.T) {
	mild := NewParticle()
	mild.SetMass(1)
	severe := NewParticle()
	severe.SetMass(1)

	mildOther := NewParticle()
	mildOther.SetInverseMass(0)
	severeOther := NewParticle()
	severeOther.SetInverseMass(0)

	mild.Velocity.SetS(-0.1, 0, 0)
	severe.Velocity.SetS(-10, 0, 0)

	contacts := []ParticleContact{
		{Particles: [2]*Particle{mild, mildOther}, Restitution: 1, ContactNormal: lin.NewV3S(1, 0, 0)},
		{Particles: [2]*Particle{severe, severeOther}, Restitution: 1, ContactNormal: lin.NewV3S(1, 0, 0)},
	}

	resolver := NewParticleContactResolver(1) // only one pass: must pick the worse contact.
	resolver.ResolveContacts(contacts, 1.0/60.0)

	if severe.Velocity.X < 0 {
		t.Errorf("expected the single iteration to resolve the more severe contact")
	}
	if mild.Velocity.X < 0 {
		t.Errorf("expected the mild contact to remain unresolved after a single iteration")
	}
}

// Two particles linked by cables to fixed anchors, falling under gravity:
// the distance from each particle to its anchor should never stretch
// beyond maxLength by more than a small numerical tolerance.
func TestScenarioTwoCablePendulum(t *testing.T) {
	anchor1 := lin.NewV3S(-1, 5, 0)
	anchor2 := lin.NewV3S(1, 5, 0)

	p1, p2 := NewParticle(), NewParticle()
	p1.SetMass(1)
	p2.SetMass(1)
	p1.Position.Set(anchor1)
	p2.Position.Set(anchor2)
	p1.Position.Y -= 2
	p2.Position.Y -= 2

	const maxLength = 2.0
	gravity := NewParticleGravity(lin.NewV3S(0, -9.81, 0))

	registry := NewParticleForceRegistry()
	registry.Add(p1, gravity)
	registry.Add(p2, gravity)

	c1 := NewParticleCableConstraint(p1, anchor1, maxLength, 0)
	c2 := NewParticleCableConstraint(p2, anchor2, maxLength, 0)

	resolver := NewParticleContactResolver(8)
	const dt = 1.0 / 60.0
	for i := 0; i < 600; i++ { // 10 seconds.
		registry.UpdateForces(dt)
		p1.Integrate(dt)
		p2.Integrate(dt)

		var contacts []ParticleContact
		c1.AddContact(&contacts, 4)
		c2.AddContact(&contacts, 4)
		if len(contacts) > 0 {
			resolver.ResolveContacts(contacts, dt)
		}

		if d := currentLength(p1.Position, anchor1); d > maxLength+1e-3 {
			t.Fatalf("frame %d: particle 1 stretched to %v, exceeding maxLength %v", i, d, maxLength)
		}
		if d := currentLength(p2.Position, anchor2); d > maxLength+1e-3 {
			t.Fatalf("frame %d: particle 2 stretched to %v, exceeding maxLength %v", i, d, maxLength)
		}
	}
}

// A rod holding two particles at a fixed length, one anchored (infinite
// mass), should keep its length within a small tolerance for the full run
// under gravity.
func TestScenarioRodRigidityUnderGravity(t *testing.T) {
	anchor := NewParticle()
	anchor.SetInverseMass(0)
	anchor.Position.SetS(0, 5, 0)

	free := NewParticle()
	free.SetMass(1)
	free.Position.SetS(0, 4, 0)

	const length = 1.0
	rod := NewParticleRod(anchor, free, length)

	gravity := NewParticleGravity(lin.NewV3S(0, -9.81, 0))
	registry := NewParticleForceRegistry()
	registry.Add(free, gravity)

	resolver := NewParticleContactResolver(8)
	const dt = 1.0 / 60.0
	for i := 0; i < 600; i++ {
		registry.UpdateForces(dt)
		free.Integrate(dt)

		var contacts []ParticleContact
		rod.AddContact(&contacts, 4)
		if len(contacts) > 0 {
			resolver.ResolveContacts(contacts, dt)
		}

		d := currentLength(anchor.Position, free.Position)
		if d < length-1e-3 || d > length+1e-3 {
			t.Fatalf("frame %d: rod length drifted to %v, outside [%v, %v]", i, d, length-1e-3, length+1e-3)
		}
	}
}
