// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestWorldStartFrameClearsAccumulators(t *testing.T) {
	w := NewWorld(8)
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.AddForce(lin.NewV3S(10, 0, 0))
	w.AddBody(b)

	w.StartFrame()
	b.Integrate(1.0 / 60.0)

	if !b.LinearVelocity.Aeq(lin.NewV3()) {
		t.Errorf("expected StartFrame to clear the force accumulator, got velocity %+v", b.LinearVelocity)
	}
}

func TestWorldRunPhysicsIntegratesRegisteredBodies(t *testing.T) {
	w := NewWorld(8)
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	w.AddBody(b)

	gravity := NewGravity(lin.NewV3S(0, -9.81, 0))
	w.Registry.Add(b, gravity)

	for i := 0; i < 60; i++ {
		w.StartFrame()
		w.RunPhysics(1.0 / 60.0)
	}

	if b.LinearVelocity.Y >= 0 {
		t.Errorf("expected the body to have fallen under gravity, got velocity %+v", b.LinearVelocity)
	}
}

func TestWorldRunPhysicsRejectsNonPositiveDuration(t *testing.T) {
	w := NewWorld(8)
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	w.AddBody(b)
	b.LinearVelocity.SetS(1, 2, 3)

	w.RunPhysics(0)
	if !b.LinearVelocity.Eq(lin.NewV3S(1, 2, 3)) {
		t.Errorf("expected no integration for a non-positive duration, got %+v", b.LinearVelocity)
	}
}
