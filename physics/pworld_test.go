// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestGroundContactGeneratorOnlyContactsParticlesBelowGround(t *testing.T) {
	above := NewParticle()
	above.Position.SetS(0, 5, 0)
	below := NewParticle()
	below.Position.SetS(0, -1, 0)

	g := NewGroundContactGenerator([]*Particle{above, below}, 0)
	var contacts []ParticleContact
	n := g.AddContact(&contacts, 10)

	if n != 1 {
		t.Fatalf("expected exactly one contact, got %d", n)
	}
	if contacts[0].Particles[0] != below {
		t.Errorf("expected the contact to be for the particle below ground")
	}
}

// A particle world with a gravity generator and ground contact should
// settle particles at the ground height rather than letting them fall
// through.
func TestParticleWorldKeepsParticlesAboveGround(t *testing.T) {
	w := NewParticleWorld(16)
	p := NewParticle()
	p.SetMass(1)
	p.Position.SetS(0, 5, 0)
	w.AddParticle(p)

	gravity := NewParticleGravity(lin.NewV3S(0, -9.81, 0))
	w.Registry.Add(p, gravity)
	w.AddContactGenerator(NewGroundContactGenerator(w.Particles, 0))

	const dt = 1.0 / 60.0
	for i := 0; i < 600; i++ { // 10 seconds.
		w.StartFrame()
		w.RunPhysics(dt)
	}

	if p.Position.Y < -1e-2 {
		t.Errorf("expected the particle to settle at or above ground level, got y=%v", p.Position.Y)
	}
}
