// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestRigidBodySetMassDerivesInertiaFromShape(t *testing.T) {
	b := NewRigidBody()
	b.SetMass(2, NewSphere(1))

	if b.Mass() != 2 {
		t.Errorf("expected mass 2, got %v", b.Mass())
	}
	if b.InverseInertiaTensorWorld().Xx <= 0 {
		t.Errorf("expected positive inverse inertia, got %+v", b.InverseInertiaTensorWorld())
	}
}

func TestRigidBodyStaticHasZeroInverseMass(t *testing.T) {
	b := NewRigidBody()
	b.SetMass(5, NewBox(1, 1, 1))
	b.SetStatic()

	if b.HasFiniteMass() {
		t.Errorf("expected static body to have infinite mass")
	}
	if b.InverseInertiaTensorWorld().Xx != 0 {
		t.Errorf("expected zero inverse inertia for static body")
	}
}

// A body spun up by torque alone should rotate without any linear motion.
func TestRigidBodyTorqueProducesNoLinearMotion(t *testing.T) {
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.AddForceAtPoint(lin.NewV3S(0, 10, 0), lin.NewV3S(1, 0, 0))

	b.Integrate(1.0 / 60.0)

	if !b.LinearVelocity.Aeq(lin.NewV3()) {
		t.Errorf("expected no linear velocity from a pure torque at the centre, got %+v", b.LinearVelocity)
	}
	if b.Angular.Aeq(lin.NewV3()) {
		t.Errorf("expected non-zero angular velocity")
	}
}

func TestRigidBodySleepsWhenMotionDropsBelowEpsilon(t *testing.T) {
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.SetAwake(true)
	b.LinearVelocity.SetS(0, 0, 0)
	b.Angular.SetS(0, 0, 0)

	for i := 0; i < 200 && b.IsAwake(); i++ {
		b.Integrate(1.0 / 60.0)
	}

	if b.IsAwake() {
		t.Errorf("expected a resting body to fall asleep")
	}
}

func TestRigidBodySetCanSleepFalseWakesBody(t *testing.T) {
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.SetAwake(false)
	b.SetCanSleep(false)

	if !b.IsAwake() {
		t.Errorf("expected SetCanSleep(false) to wake the body")
	}
}

func TestQuaternionAddVectorRotatesAboutAxis(t *testing.T) {
	q := lin.NewQI()
	quaternionAddVector(q, lin.NewV3S(0, 0, 1), math.Pi/2)

	forward := lin.NewV3().MultvQ(lin.NewV3S(1, 0, 0), q)
	if !forward.Aeq(lin.NewV3S(0, 1, 0)) {
		t.Errorf("expected a quarter turn about Z to rotate X onto Y, got %+v", forward)
	}
}

func TestRigidBodyCalculateDerivedDataNormalizesOrientation(t *testing.T) {
	b := NewRigidBody()
	b.Orientation.SetS(2, 0, 0, 0) // unnormalized
	b.CalculateDerivedData()

	if math.Abs(b.Orientation.Len()-1) > lin.Epsilon {
		t.Errorf("expected normalized orientation, got length %v", b.Orientation.Len())
	}
}
