// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestContactBasisIsOrthonormal(t *testing.T) {
	c := NewContact()
	c.ContactNormal = lin.NewV3S(0.6, 0.8, 0).Unit()
	c.calculateContactBasis()

	col := func(m *lin.M3, i int) *lin.V3 {
		switch i {
		case 0:
			return lin.NewV3S(m.Xx, m.Yx, m.Zx)
		case 1:
			return lin.NewV3S(m.Xy, m.Yy, m.Zy)
		default:
			return lin.NewV3S(m.Xz, m.Yz, m.Zz)
		}
	}

	x, y, z := col(c.contactToWorld, 0), col(c.contactToWorld, 1), col(c.contactToWorld, 2)
	if math.Abs(x.Len()-1) > 1e-6 || math.Abs(y.Len()-1) > 1e-6 || math.Abs(z.Len()-1) > 1e-6 {
		t.Errorf("expected unit-length basis vectors, got lengths %v %v %v", x.Len(), y.Len(), z.Len())
	}
	if math.Abs(x.Dot(y)) > 1e-6 || math.Abs(x.Dot(z)) > 1e-6 || math.Abs(y.Dot(z)) > 1e-6 {
		t.Errorf("expected an orthogonal basis, got x.y=%v x.z=%v y.z=%v", x.Dot(y), x.Dot(z), y.Dot(z))
	}
}

// A frictionless head-on contact between two equal-mass bodies should
// apply equal and opposite linear impulses (impulse pair symmetry).
func TestApplyVelocityChangeFrictionlessImpulsePairSymmetry(t *testing.T) {
	a := NewRigidBody()
	a.SetMass(1, NewSphere(1))
	a.Position.SetS(-1, 0, 0)
	a.LinearVelocity.SetS(1, 0, 0)
	a.CalculateDerivedData()

	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.Position.SetS(1, 0, 0)
	b.LinearVelocity.SetS(-1, 0, 0)
	b.CalculateDerivedData()

	c := NewContact()
	c.SetBodyData(a, b, 0, 1)
	c.ContactPoint = lin.NewV3S(0, 0, 0)
	c.ContactNormal = lin.NewV3S(1, 0, 0)
	c.Penetration = 0

	c.calculateInternals(1.0 / 60.0)

	var velocityChange, rotationChange [2]*lin.V3
	c.applyVelocityChange(velocityChange, rotationChange)

	impulseA := lin.NewV3().Scale(velocityChange[0], a.Mass())
	impulseB := lin.NewV3().Scale(velocityChange[1], b.Mass())
	sum := lin.NewV3().Add(impulseA, impulseB)
	if !sum.Aeq(lin.NewV3()) {
		t.Errorf("expected equal and opposite impulses, got a=%+v b=%+v", impulseA, impulseB)
	}
}

// After a frictionless head-on elastic contact between equal masses is
// resolved, the bodies should separate rather than continue approaching.
func TestApplyVelocityChangeResolvesClosingVelocity(t *testing.T) {
	a := NewRigidBody()
	a.SetMass(1, NewSphere(1))
	a.Position.SetS(-1, 0, 0)
	a.LinearVelocity.SetS(5, 0, 0)
	a.CalculateDerivedData()

	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.Position.SetS(1, 0, 0)
	b.CalculateDerivedData()

	c := NewContact()
	c.SetBodyData(a, b, 0, 1)
	c.ContactPoint = lin.NewV3S(0, 0, 0)
	c.ContactNormal = lin.NewV3S(1, 0, 0)
	c.Penetration = 0
	c.calculateInternals(1.0 / 60.0)

	var velocityChange, rotationChange [2]*lin.V3
	c.applyVelocityChange(velocityChange, rotationChange)

	a.LinearVelocity.Add(a.LinearVelocity, velocityChange[0])
	b.LinearVelocity.Add(b.LinearVelocity, velocityChange[1])

	closingAfter := a.LinearVelocity.X - b.LinearVelocity.X
	if closingAfter > 1e-6 {
		t.Errorf("expected the contact to remove closing velocity, got relative velocity %v", closingAfter)
	}
}

func TestApplyPositionChangeSeparatesBodies(t *testing.T) {
	a := NewRigidBody()
	a.SetMass(1, NewSphere(1))
	a.Position.SetS(-0.4, 0, 0)
	a.CalculateDerivedData()

	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.Position.SetS(0.4, 0, 0)
	b.CalculateDerivedData()

	c := NewContact()
	c.SetBodyData(a, b, 0.5, 0)
	c.ContactPoint = lin.NewV3S(0, 0, 0)
	c.ContactNormal = lin.NewV3S(1, 0, 0)
	c.Penetration = 0.2
	c.calculateInternals(1.0 / 60.0)

	var linearChange, angularChange [2]*lin.V3
	c.applyPositionChange(linearChange, angularChange, c.Penetration)

	newDistance := b.Position.X - a.Position.X
	if newDistance <= 0.8 {
		t.Errorf("expected the bodies to separate, got new distance %v", newDistance)
	}
}
