// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestParticleCableOnlyContactsWhenStretched(t *testing.T) {
	one, two := NewParticle(), NewParticle()
	one.Position.SetS(0, 0, 0)
	two.Position.SetS(1, 0, 0)

	cable := NewParticleCable(one, two, 5, 0.5)
	var contacts []ParticleContact
	if n := cable.AddContact(&contacts, 1); n != 0 {
		t.Errorf("expected no contact while slack, got %d", n)
	}

	two.Position.SetS(6, 0, 0)
	if n := cable.AddContact(&contacts, 1); n != 1 {
		t.Errorf("expected a contact once stretched past max length, got %d", n)
	}
	if contacts[0].Penetration <= 0 {
		t.Errorf("expected positive penetration, got %v", contacts[0].Penetration)
	}
}

func TestParticleRodMaintainsFixedLength(t *testing.T) {
	one, two := NewParticle(), NewParticle()
	one.Position.SetS(0, 0, 0)

	rod := NewParticleRod(one, two, 1.0)

	two.Position.SetS(2, 0, 0) // stretched.
	var contacts []ParticleContact
	rod.AddContact(&contacts, 1)
	if contacts[0].Restitution != 0 {
		t.Errorf("expected a rod to have zero restitution")
	}
	if !contacts[0].ContactNormal.Aeq(lin.NewV3S(1, 0, 0)) {
		t.Errorf("expected the normal to point from one towards two when stretched, got %+v", contacts[0].ContactNormal)
	}

	contacts = contacts[:0]
	two.Position.SetS(0.5, 0, 0) // compressed.
	rod.AddContact(&contacts, 1)
	if !contacts[0].ContactNormal.Aeq(lin.NewV3S(-1, 0, 0)) {
		t.Errorf("expected the normal to flip when compressed, got %+v", contacts[0].ContactNormal)
	}
}

func TestParticleCableConstraintUsesNilSecondParticle(t *testing.T) {
	p := NewParticle()
	p.Position.SetS(10, 0, 0)

	c := NewParticleCableConstraint(p, lin.NewV3(), 1, 0.5)
	var contacts []ParticleContact
	c.AddContact(&contacts, 1)

	if contacts[0].Particles[1] != nil {
		t.Errorf("expected an anchored constraint to leave the second particle slot nil")
	}
}

func TestParticleRodConstraintNoContactAtExactLength(t *testing.T) {
	p := NewParticle()
	p.Position.SetS(1, 0, 0)

	c := NewParticleRodConstraint(p, lin.NewV3(), 1.0)
	var contacts []ParticleContact
	if n := c.AddContact(&contacts, 1); n != 0 {
		t.Errorf("expected no contact when already at the constrained length, got %d", n)
	}
}
