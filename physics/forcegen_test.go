// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestGravityScalesWithMassAndSkipsStatic(t *testing.T) {
	b := NewRigidBody()
	b.SetMass(2, NewSphere(1))
	g := NewGravity(lin.NewV3S(0, -10, 0))
	g.UpdateForce(b, 1.0/60.0)
	b.Integrate(1.0 / 60.0)

	if b.LinearVelocity.Y >= 0 {
		t.Errorf("expected gravity to pull the body down, got %+v", b.LinearVelocity)
	}

	static := NewRigidBody()
	static.SetStatic()
	g.UpdateForce(static, 1.0/60.0)
	static.Integrate(1.0 / 60.0)
	if !static.LinearVelocity.Aeq(lin.NewV3()) {
		t.Errorf("expected static body to be unaffected by gravity")
	}
}

func TestSpringPullsBodiesTogether(t *testing.T) {
	a := NewRigidBody()
	a.SetMass(1, NewSphere(1))
	a.Position.SetS(-5, 0, 0)
	a.CalculateDerivedData()

	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	b.Position.SetS(5, 0, 0)
	b.CalculateDerivedData()

	s := NewSpring(lin.NewV3(), b, lin.NewV3(), 1.0, 2.0)
	s.UpdateForce(a, 1.0/60.0)
	a.Integrate(1.0 / 60.0)

	if a.LinearVelocity.X <= 0 {
		t.Errorf("expected the spring to pull body a towards body b, got %+v", a.LinearVelocity)
	}
}

// Buoyancy's partial-submersion branch uses the original implementation's
// unusual operator precedence verbatim: ρ·V·(depth-maxDepth-waterHeight)/2·maxDepth,
// not the more "obviously correct" ρ·V·(waterHeight+maxDepth-depth)/(2·maxDepth).
func TestBuoyancyPartialSubmersionUsesOriginalPrecedence(t *testing.T) {
	bu := NewBuoyancy(lin.NewV3(), 2.0, 1.0, 0.0, 1000)
	b := NewRigidBody()
	b.SetMass(1, NewBox(0.5, 0.5, 0.5))
	b.LinearDamping = 1 // isolate the force calculation from damping.
	b.Position.SetS(0, -1, 0) // partially submerged: -2 < depth < 2
	b.CalculateDerivedData()

	bu.UpdateForce(b, 1.0/60.0)
	b.Integrate(1.0 / 60.0)

	depth := -1.0
	want := bu.LiquidDensity * bu.Volume * (depth - bu.MaxDepth - bu.WaterHeight) / 2 * bu.MaxDepth
	got := b.LinearVelocity.Y * b.Mass() / (1.0 / 60.0)
	if !lin.AeqZ(got - want) {
		t.Errorf("expected force %v from the preserved formula, got %v", want, got)
	}
}

func TestBuoyancyFullySubmergedAndFullyOutOfWater(t *testing.T) {
	bu := NewBuoyancy(lin.NewV3(), 1.0, 1.0, 0.0, 1000)

	submerged := NewRigidBody()
	submerged.SetMass(1, NewBox(0.5, 0.5, 0.5))
	submerged.Position.SetS(0, -5, 0)
	submerged.CalculateDerivedData()
	bu.UpdateForce(submerged, 1.0/60.0)
	if submerged.LinearVelocity.Y != 0 {
		t.Fatalf("force should not yet be integrated")
	}

	out := NewRigidBody()
	out.SetMass(1, NewBox(0.5, 0.5, 0.5))
	out.Position.SetS(0, 5, 0)
	out.CalculateDerivedData()
	before := lin.NewV3().Set(out.LinearVelocity)
	bu.UpdateForce(out, 1.0/60.0)
	out.Integrate(1.0 / 60.0)
	if !out.LinearVelocity.Eq(before) {
		t.Errorf("expected no buoyant force once fully clear of the water, got %+v", out.LinearVelocity)
	}
}

func TestAeroControlInterpolatesTensorByControlSetting(t *testing.T) {
	min := lin.NewM3()
	base := lin.NewM3I()
	max := lin.NewM3I().Scale(2)
	ac := NewAeroControl(base, min, max, lin.NewV3(), lin.NewV3())

	ac.SetControl(1)
	if ac.getTensor().Xx != 2 {
		t.Errorf("expected full control to select maxTensor, got %+v", ac.getTensor())
	}
	ac.SetControl(-1)
	if ac.getTensor().Xx != 0 {
		t.Errorf("expected full negative control to select minTensor, got %+v", ac.getTensor())
	}
	ac.SetControl(0)
	if ac.getTensor().Xx != 1 {
		t.Errorf("expected zero control to select the base tensor, got %+v", ac.getTensor())
	}
}

func TestAeroControlClampsControlSetting(t *testing.T) {
	ac := NewAeroControl(lin.NewM3I(), lin.NewM3(), lin.NewM3(), lin.NewV3(), lin.NewV3())
	ac.SetControl(5)
	if ac.controlSetting != 1 {
		t.Errorf("expected control setting to be clamped to 1, got %v", ac.controlSetting)
	}
}

func TestExplosionIsANoOp(t *testing.T) {
	b := NewRigidBody()
	b.SetMass(1, NewSphere(1))
	before := lin.NewV3().Set(b.LinearVelocity)

	var e Explosion
	e.UpdateForce(b, 1.0/60.0)
	b.Integrate(1.0 / 60.0)

	if !b.LinearVelocity.Eq(before) {
		t.Errorf("expected the explosion placeholder to apply no force, got %+v", b.LinearVelocity)
	}
}
