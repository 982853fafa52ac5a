// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestJointNoContactWithinSlack(t *testing.T) {
	a := NewRigidBody()
	a.SetMass(1, NewSphere(1))
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.Position.SetS(0.05, 0, 0)
	b.CalculateDerivedData()

	j := NewJoint(a, lin.NewV3(), b, lin.NewV3(), 0.1)
	var contacts []*Contact
	if n := j.AddContact(&contacts, 1); n != 0 {
		t.Errorf("expected no contact within slack, got %d", n)
	}
}

func TestJointGeneratesContactWhenStretchedPastError(t *testing.T) {
	a := NewRigidBody()
	a.SetMass(1, NewSphere(1))
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.Position.SetS(1, 0, 0)
	b.CalculateDerivedData()

	j := NewJoint(a, lin.NewV3(), b, lin.NewV3(), 0.1)
	var contacts []*Contact
	n := j.AddContact(&contacts, 1)
	if n != 1 {
		t.Fatalf("expected a single contact, got %d", n)
	}

	c := contacts[0]
	if c.Friction != 1.0 || c.Restitution != 0.0 {
		t.Errorf("expected friction 1 and restitution 0 for a joint contact, got friction=%v restitution=%v", c.Friction, c.Restitution)
	}
	if c.Penetration <= 0 {
		t.Errorf("expected positive penetration, got %v", c.Penetration)
	}
	wantMidpoint := lin.NewV3S(0.5, 0, 0)
	if !c.ContactPoint.Aeq(wantMidpoint) {
		t.Errorf("expected the contact point at the midpoint, got %+v want %+v", c.ContactPoint, wantMidpoint)
	}
}

func TestJointRespectsContactLimit(t *testing.T) {
	a := NewRigidBody()
	a.SetMass(1, NewSphere(1))
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.Position.SetS(1, 0, 0)
	b.CalculateDerivedData()

	j := NewJoint(a, lin.NewV3(), b, lin.NewV3(), 0.1)
	var contacts []*Contact
	if n := j.AddContact(&contacts, 0); n != 0 {
		t.Errorf("expected no contact added when the limit is exhausted, got %d", n)
	}
}
