// Copyright © 2024 Galvanized Logic Inc.

package physics

// body.go ports the rigid body simulation primitive: a physical object
// with both linear and angular motion, combining Particle-style linear
// dynamics with orientation, torque and a world-space inertia tensor.
// Grounded on spec.md's RigidBody component design; the exact field and
// accessor names used by the original C++ (ft_body.h, not present in the
// retrieved source pack) are inferred from their use throughout
// PhysicsEngine/src/ft_contacts.cpp and ft_forceGenerator.cpp.

import (
	"log/slog"
	"math"

	"github.com/gazed/ftphysics/math/lin"
)

// RigidBody is an object with mass, position, orientation, and both linear
// and angular velocity. Unlike Particle, a RigidBody can rotate and can
// have forces applied away from its centre of mass (producing torque).
type RigidBody struct {
	Position       *lin.V3 // World space centre of mass.
	Orientation    *lin.Q  // World space orientation.
	LinearVelocity *lin.V3
	Angular        *lin.V3 // Angular velocity (radians/second), world space.

	LinearDamping  float64
	AngularDamping float64

	Friction    float64 // Combined via the geometric mean of the two bodies in contact.
	Restitution float64 // Bounciness, 0 (no bounce) to 1 (perfectly elastic).

	inverseMass           float64
	inverseInertiaTensor  *lin.M3 // Local space.
	inverseInertiaTensorW *lin.M3 // World space, derived each CalculateDerivedData.

	forceAccum  *lin.V3
	torqueAccum *lin.V3

	transform          *lin.T  // Cached world transform (position + orientation).
	lastFrameAccel     *lin.V3 // Acceleration applied during the most recent Integrate.
	awake              bool
	canSleep           bool
	motion             float64 // Recency-weighted average of kinetic motion, for sleeping.
}

// NewRigidBody creates a body at the origin with no rotation, infinite
// mass (static), and no damping. Use SetMass to make it movable.
func NewRigidBody() *RigidBody {
	b := &RigidBody{
		Position:              lin.NewV3(),
		Orientation:           lin.NewQI(),
		LinearVelocity:        lin.NewV3(),
		Angular:               lin.NewV3(),
		LinearDamping:         0.99,
		AngularDamping:        0.99,
		Friction:              0.5,
		Restitution:           0,
		inverseInertiaTensor:  lin.NewM3(),
		inverseInertiaTensorW: lin.NewM3(),
		forceAccum:            lin.NewV3(),
		torqueAccum:           lin.NewV3(),
		transform:             lin.NewT(),
		lastFrameAccel:        lin.NewV3(),
		awake:                 true,
		canSleep:              true,
	}
	b.CalculateDerivedData()
	return b
}

// Mass returns the body's mass, or a very large number if it has infinite
// mass (a static body).
func (b *RigidBody) Mass() float64 {
	if b.inverseMass == 0 {
		return lin.Large
	}
	return 1.0 / b.inverseMass
}

// InverseMass returns the body's inverse mass. Zero means infinite mass.
func (b *RigidBody) InverseMass() float64 { return b.inverseMass }

// HasFiniteMass returns true if the body can be moved by forces.
func (b *RigidBody) HasFiniteMass() bool { return b.inverseMass > 0 }

// SetMass sets the body's mass and, from shape, its local inertia tensor.
// Panics if mass is not positive.
func (b *RigidBody) SetMass(mass float64, shape Shape) {
	if mass <= 0 {
		panic("physics: RigidBody.SetMass requires a positive mass")
	}
	b.inverseMass = 1.0 / mass

	diag := shape.Inertia(mass, lin.NewV3())
	b.inverseInertiaTensor.SetS(
		invOrZero(diag.X), 0, 0,
		0, invOrZero(diag.Y), 0,
		0, 0, invOrZero(diag.Z),
	)
	b.CalculateDerivedData()
}

// SetStatic gives the body infinite mass: it will not be moved by forces
// or impulses, but can still be involved in contacts as the immovable side.
func (b *RigidBody) SetStatic() {
	b.inverseMass = 0
	b.inverseInertiaTensor.SetS(0, 0, 0, 0, 0, 0, 0, 0, 0)
	b.CalculateDerivedData()
}

func invOrZero(x float64) float64 {
	if lin.AeqZ(x) {
		return 0
	}
	return 1.0 / x
}

// InverseInertiaTensorWorld returns the body's world-space inverse inertia
// tensor, as derived by the most recent CalculateDerivedData call.
func (b *RigidBody) InverseInertiaTensorWorld() *lin.M3 { return b.inverseInertiaTensorW }

// AddForce accumulates a force applied at the body's centre of mass: it
// changes linear motion only, producing no torque.
func (b *RigidBody) AddForce(force *lin.V3) { b.forceAccum.Add(b.forceAccum, force) }

// AddForceAtPoint accumulates a force applied at the given world-space
// point, producing both a linear force and, if the point is off centre,
// a torque.
func (b *RigidBody) AddForceAtPoint(force, point *lin.V3) {
	pt := lin.NewV3().Sub(point, b.Position)
	b.forceAccum.Add(b.forceAccum, force)
	torque := lin.NewV3().Cross(pt, force)
	b.torqueAccum.Add(b.torqueAccum, torque)
}

// AddForceAtBodyPoint accumulates a force applied at a point given in the
// body's local space.
func (b *RigidBody) AddForceAtBodyPoint(force, point *lin.V3) {
	worldPoint := b.GetPointInWorldSpace(point)
	b.AddForceAtPoint(force, worldPoint)
}

// GetPointInWorldSpace converts a point from the body's local space to
// world space using the body's current transform.
func (b *RigidBody) GetPointInWorldSpace(point *lin.V3) *lin.V3 {
	return lin.NewV3().AppT(b.transform, point)
}

// Transform returns the body's cached world transform (position and
// orientation). The returned transform must not be modified.
func (b *RigidBody) Transform() *lin.T { return b.transform }

// LastFrameAcceleration returns the linear acceleration applied during the
// most recent Integrate call. Used by contact resolution to separate the
// portion of closing velocity caused by acceleration (e.g. gravity) from
// the portion caused by prior motion.
func (b *RigidBody) LastFrameAcceleration() *lin.V3 { return b.lastFrameAccel }

// ClearAccumulators zeros the force and torque accumulators. Called
// automatically at the start of every World frame.
func (b *RigidBody) ClearAccumulators() {
	b.forceAccum.SetS(0, 0, 0)
	b.torqueAccum.SetS(0, 0, 0)
}

// CalculateDerivedData recomputes the cached world transform and the
// world-space inverse inertia tensor from the current position and
// orientation. Must be called whenever Position or Orientation change
// outside of Integrate (e.g. after the contact resolver moves a body).
func (b *RigidBody) CalculateDerivedData() {
	b.Orientation.Unit()

	b.transform.Loc.Set(b.Position)
	b.transform.Rot.Set(b.Orientation)

	rot := lin.NewM3().SetQ(b.Orientation)
	rotT := lin.NewM3().Transpose(rot)
	b.inverseInertiaTensorW.Mult(rot.Mult(rot, b.inverseInertiaTensor), rotT)
}

// Integrate advances the body's position, orientation, and linear and
// angular velocities by duration seconds. Infinite-mass (static) bodies
// are left untouched.
func (b *RigidBody) Integrate(duration float64) {
	if !b.awake || b.inverseMass <= 0 {
		return
	}
	if duration <= 0 {
		slog.Error("physics: RigidBody.Integrate requires a positive duration", "duration", duration)
		return
	}

	// linear acceleration from accumulated force.
	linearAcc := lin.NewV3().Scale(b.forceAccum, b.inverseMass)
	b.lastFrameAccel.Set(linearAcc)

	// angular acceleration from accumulated torque.
	angularAcc := lin.NewV3().MultMv(b.inverseInertiaTensorW, b.torqueAccum)

	b.LinearVelocity.X += linearAcc.X * duration
	b.LinearVelocity.Y += linearAcc.Y * duration
	b.LinearVelocity.Z += linearAcc.Z * duration

	b.Angular.X += angularAcc.X * duration
	b.Angular.Y += angularAcc.Y * duration
	b.Angular.Z += angularAcc.Z * duration

	b.LinearVelocity.Scale(b.LinearVelocity, math.Pow(b.LinearDamping, duration))
	b.Angular.Scale(b.Angular, math.Pow(b.AngularDamping, duration))

	b.Position.X += b.LinearVelocity.X * duration
	b.Position.Y += b.LinearVelocity.Y * duration
	b.Position.Z += b.LinearVelocity.Z * duration

	quaternionAddVector(b.Orientation, b.Angular, duration)

	b.CalculateDerivedData()
	b.ClearAccumulators()

	if b.canSleep {
		b.updateSleepState(duration)
	}
}

// sleepEpsilon is the kinetic-energy-like threshold below which a body
// that canSleep is put to sleep, stopping it from being integrated or
// resolved until woken by a contact with an awake body.
const sleepEpsilon = 0.5

func (b *RigidBody) updateSleepState(duration float64) {
	currentMotion := b.LinearVelocity.Dot(b.LinearVelocity) + b.Angular.Dot(b.Angular)
	bias := math.Pow(0.5, duration)
	b.motion = bias*b.motion + (1-bias)*currentMotion

	if b.motion < sleepEpsilon {
		b.SetAwake(false)
	} else if b.motion > 10*sleepEpsilon {
		b.motion = 10 * sleepEpsilon
	}
}

// IsAwake returns whether the body currently participates in integration
// and contact resolution.
func (b *RigidBody) IsAwake() bool { return b.awake }

// SetAwake wakes or sleeps the body. Putting a body to sleep zeroes its
// velocities; waking one resets its sleep-motion accumulator so it is not
// immediately put back to sleep.
func (b *RigidBody) SetAwake(awake bool) {
	if awake {
		b.awake = true
		b.motion = 2 * sleepEpsilon // avoid instant re-sleep
	} else {
		b.awake = false
		b.LinearVelocity.SetS(0, 0, 0)
		b.Angular.SetS(0, 0, 0)
	}
}

// SetCanSleep controls whether this body is ever automatically put to
// sleep. Bodies directly controlled by a player are usually set to false.
func (b *RigidBody) SetCanSleep(canSleep bool) {
	b.canSleep = canSleep
	if !canSleep && !b.awake {
		b.SetAwake(true)
	}
}

// quaternionAddVector updates orientation q in place to reflect a rotation
// at angular velocity v applied for duration seconds. Ported from
// PhysicsEngine/src/ft_contacts.cpp's static _quanterionAddVector, the
// exact axis-angle update spec.md's rigid-body integration step requires.
func quaternionAddVector(q *lin.Q, v *lin.V3, duration float64) {
	speed := v.Len()
	if lin.AeqZ(speed) {
		return
	}
	angle := speed * duration
	axis := lin.NewV3().Scale(v, 1/speed)
	rotation := lin.NewQ().SetAa(axis.X, axis.Y, axis.Z, angle)
	q.Mult(q, rotation)
	q.Unit()
}
