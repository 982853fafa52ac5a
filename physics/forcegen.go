// Copyright © 2024 Galvanized Logic Inc.

package physics

// forcegen.go ports the rigid-body force generator taxonomy.
// Ported from PhysicsEngine/src/ft_forceGenerator.cpp.

import (
	"github.com/gazed/ftphysics/math/lin"
)

// ForceGenerator applies a force (and possibly torque) to a rigid body
// every frame.
type ForceGenerator interface {
	UpdateForce(b *RigidBody, duration float64)
}

// ForceRegistry tracks which force generators apply to which rigid bodies
// and drives UpdateForce for all of them once per frame.
type ForceRegistry struct {
	entries []forceEntry
}

type forceEntry struct {
	body *RigidBody
	fg   ForceGenerator
}

// NewForceRegistry creates an empty registry.
func NewForceRegistry() *ForceRegistry { return &ForceRegistry{} }

// Add registers generator fg to apply its force to body b every frame.
func (r *ForceRegistry) Add(b *RigidBody, fg ForceGenerator) {
	r.entries = append(r.entries, forceEntry{b, fg})
}

// Remove un-registers a specific body/generator pairing.
func (r *ForceRegistry) Remove(b *RigidBody, fg ForceGenerator) {
	for i, e := range r.entries {
		if e.body == b && e.fg == fg {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Clear removes all registrations.
func (r *ForceRegistry) Clear() { r.entries = r.entries[:0] }

// UpdateForces calls UpdateForce for every registered body/generator
// pairing. Expected to be called once per frame before integration.
func (r *ForceRegistry) UpdateForces(duration float64) {
	for _, e := range r.entries {
		e.fg.UpdateForce(e.body, duration)
	}
}

// ForceRegistry
// ============================================================================
// concrete generators

// Gravity applies a constant acceleration to every body it is registered
// against, skipping bodies of infinite mass.
type Gravity struct {
	Gravity *lin.V3
}

// NewGravity creates a gravity generator with the given acceleration.
func NewGravity(gravity *lin.V3) *Gravity { return &Gravity{lin.NewV3().Set(gravity)} }

func (g *Gravity) UpdateForce(b *RigidBody, duration float64) {
	if !b.HasFiniteMass() {
		return
	}
	force := lin.NewV3().Scale(g.Gravity, b.Mass())
	b.AddForce(force)
}

// Spring models a damped spring connecting a fixed point on one body to a
// fixed point on another body.
type Spring struct {
	ConnectionPoint      *lin.V3 // Local to the owning body.
	Other                *RigidBody
	OtherConnectionPoint *lin.V3 // Local to Other.
	SpringConstant       float64
	RestLength           float64
}

// NewSpring creates a spring generator connecting localPoint on the owning
// body to otherPoint on other.
func NewSpring(localPoint *lin.V3, other *RigidBody, otherPoint *lin.V3, springConstant, restLength float64) *Spring {
	return &Spring{lin.NewV3().Set(localPoint), other, lin.NewV3().Set(otherPoint), springConstant, restLength}
}

func (s *Spring) UpdateForce(b *RigidBody, duration float64) {
	lws := b.GetPointInWorldSpace(s.ConnectionPoint)
	ows := s.Other.GetPointInWorldSpace(s.OtherConnectionPoint)

	force := lin.NewV3().Sub(lws, ows)
	magnitude := force.Len()
	magnitude = (magnitude - s.RestLength) * s.SpringConstant * -1

	force.Unit()
	force.Scale(force, magnitude)
	b.AddForceAtPoint(force, lws)
}

// Buoyancy models the upward force exerted by a liquid on a partially or
// fully submerged rigid body, applied at a fixed point on the body (the
// centre of buoyancy) rather than the centre of mass.
type Buoyancy struct {
	CentreOfBuoyancy *lin.V3 // Local to the owning body.
	MaxDepth         float64
	Volume           float64
	WaterHeight      float64
	LiquidDensity    float64
}

// NewBuoyancy creates a buoyancy generator. LiquidDensity defaults to
// 1000 (water, kg/m^3) when zero is passed.
func NewBuoyancy(centreOfBuoyancy *lin.V3, maxDepth, volume, waterHeight, liquidDensity float64) *Buoyancy {
	if liquidDensity == 0 {
		liquidDensity = 1000
	}
	return &Buoyancy{lin.NewV3().Set(centreOfBuoyancy), maxDepth, volume, waterHeight, liquidDensity}
}

func (bu *Buoyancy) UpdateForce(b *RigidBody, duration float64) {
	pointInWorld := b.GetPointInWorldSpace(bu.CentreOfBuoyancy)
	depth := pointInWorld.Y

	switch {
	case depth >= bu.WaterHeight+bu.MaxDepth:
		return
	case depth <= bu.WaterHeight-bu.MaxDepth:
		force := lin.NewV3S(0, bu.LiquidDensity*bu.Volume, 0)
		b.AddForceAtBodyPoint(force, bu.CentreOfBuoyancy)
	default:
		magnitude := bu.LiquidDensity * bu.Volume *
			(depth-bu.MaxDepth-bu.WaterHeight) / 2 * bu.MaxDepth
		force := lin.NewV3S(0, magnitude, 0)
		b.AddForceAtBodyPoint(force, bu.CentreOfBuoyancy)
	}
}

// linearInterpolate blends matrices m1 and m2 by ratio a (0 -> m1, 1 -> m2),
// element by element.
func linearInterpolate(m1, m2 *lin.M3, a float64) *lin.M3 {
	result := lin.NewM3()
	result.SetS(
		(1-a)*m1.Xx+a*m2.Xx, (1-a)*m1.Xy+a*m2.Xy, (1-a)*m1.Xz+a*m2.Xz,
		(1-a)*m1.Yx+a*m2.Yx, (1-a)*m1.Yy+a*m2.Yy, (1-a)*m1.Yz+a*m2.Yz,
		(1-a)*m1.Zx+a*m2.Zx, (1-a)*m1.Zy+a*m2.Zy, (1-a)*m1.Zz+a*m2.Zz,
	)
	return result
}

// Aero applies an aerodynamic force derived from a body's velocity
// relative to the wind, via a fixed aerodynamic tensor. Preserves the
// original's exact (and slightly surprising) use of the body's transform
// rather than its inverse when converting velocity into body space; see
// DESIGN.md Open Questions.
type Aero struct {
	Tensor     *lin.M3
	Position   *lin.V3 // Local point the force is applied at.
	WindSpeed  *lin.V3 // Shared, mutable: callers can update the wind live.
}

// NewAero creates an aerodynamic force generator.
func NewAero(tensor *lin.M3, position *lin.V3, windSpeed *lin.V3) *Aero {
	return &Aero{tensor, position, windSpeed}
}

func (a *Aero) UpdateForce(b *RigidBody, duration float64) {
	a.updateForceFromTensor(b, duration, a.Tensor)
}

func (a *Aero) updateForceFromTensor(b *RigidBody, duration float64, tensor *lin.M3) {
	velocity := lin.NewV3().Add(b.LinearVelocity, a.WindSpeed)

	// The original implementation applies the body's world transform
	// here, rather than its inverse, when converting velocity into
	// "body space" and the resulting force back to world space. That
	// is almost certainly not what the author intended (it should be
	// the inverse transform going in), but it is preserved verbatim
	// rather than silently corrected; see DESIGN.md Open Questions.
	orient := lin.NewM3().SetQ(b.Orientation)
	bodyVel := lin.NewV3().MultMv(orient, velocity)
	bodyForce := lin.NewV3().MultMv(tensor, bodyVel)
	force := lin.NewV3().MultMv(orient, bodyForce)

	b.AddForceAtBodyPoint(force, a.Position)
}

// AeroControl extends Aero with a control surface: the effective
// aerodynamic tensor is interpolated between minTensor, base and maxTensor
// according to the current control setting in [-1, 1].
type AeroControl struct {
	Aero
	MinTensor, MaxTensor *lin.M3
	controlSetting       float64
}

// NewAeroControl creates a controllable aerodynamic force generator.
func NewAeroControl(base, min, max *lin.M3, position, windSpeed *lin.V3) *AeroControl {
	return &AeroControl{Aero{base, position, windSpeed}, min, max, 0}
}

// SetControl clamps and stores the control surface setting, in [-1, 1].
func (a *AeroControl) SetControl(value float64) {
	a.controlSetting = lin.Clamp(value, -1, 1)
}

func (a *AeroControl) getTensor() *lin.M3 {
	switch {
	case a.controlSetting < 0:
		return linearInterpolate(a.MinTensor, a.Tensor, a.controlSetting+1)
	case a.controlSetting > 0:
		return linearInterpolate(a.Tensor, a.MaxTensor, a.controlSetting)
	default:
		return a.Tensor
	}
}

func (a *AeroControl) UpdateForce(b *RigidBody, duration float64) {
	a.updateForceFromTensor(b, duration, a.getTensor())
}

// Explosion is a deliberate placeholder, matching the original
// implementation: it applies no force. A complete radial-impulse-with-
// falloff model is left to a future generator (see DESIGN.md).
type Explosion struct{}

func (e *Explosion) UpdateForce(b *RigidBody, duration float64) {}
