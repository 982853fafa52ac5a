// Copyright © 2024 Galvanized Logic Inc.

package physics

// contact.go ports rigid-body contact representation and the impulse and
// position-correction math used to resolve a single contact.
// Ported from PhysicsEngine/src/ft_contacts.cpp.

import (
	"math"

	"github.com/gazed/ftphysics/math/lin"
)

// velocityLimit is the closing speed below which restitution is ignored,
// preventing resting contacts under gravity from picking up jitter.
const velocityLimit = 0.25

// angularLimit bounds how much of a position correction can be expressed
// as rotation, to avoid very large angular corrections for contacts far
// from a body's centre of mass.
const angularLimit = 0.2

// Contact describes a point of contact between two rigid bodies, or
// between a rigid body and an immovable point in space (Body[1] == nil).
// A Contact is both produced by a ContactGenerator and consumed by a
// ContactResolver; the fields below ContactPoint/ContactNormal/Penetration
// are resolver scratch state, recomputed by calculateInternals every time
// the contact is processed.
type Contact struct {
	Body        [2]*RigidBody
	Friction    float64
	Restitution float64

	ContactPoint  *lin.V3 // World space.
	ContactNormal *lin.V3 // World space, points out of Body[0] towards Body[1].
	Penetration   float64

	contactToWorld          *lin.M3
	relativeContactPosition [2]*lin.V3
	contactVelocity         *lin.V3
	desiredDeltaVelocity    float64
}

// NewContact creates an uninitialized contact. Callers are expected to set
// Body, Friction, Restitution, ContactPoint, ContactNormal and
// Penetration, typically via a ContactGenerator, before the contact is
// passed to a ContactResolver.
func NewContact() *Contact {
	return &Contact{contactToWorld: lin.NewM3(), contactVelocity: lin.NewV3()}
}

// SetBodyData fills in the two bodies and their combined material
// properties for this contact. body1 may be nil for a contact against an
// immovable point in space (always stored as Body[1], never Body[0]).
func (c *Contact) SetBodyData(body0, body1 *RigidBody, friction, restitution float64) {
	c.Body[0], c.Body[1] = body0, body1
	c.Friction, c.Restitution = friction, restitution
}

// matchAwakeState wakes a sleeping body if it is in contact with an awake
// one. A contact against the world (Body[1] == nil) never wakes anything.
func (c *Contact) matchAwakeState() {
	if c.Body[1] == nil {
		return
	}
	body0Awake, body1Awake := c.Body[0].IsAwake(), c.Body[1].IsAwake()
	if body0Awake != body1Awake {
		if body0Awake {
			c.Body[1].SetAwake(true)
		} else {
			c.Body[0].SetAwake(true)
		}
	}
}

// swapBodies flips which body is Body[0] and which is Body[1], negating
// the contact normal (which is always defined pointing away from Body[0])
// so the physical meaning of the contact is unchanged.
func (c *Contact) swapBodies() {
	c.ContactNormal.Scale(c.ContactNormal, -1)
	c.Body[0], c.Body[1] = c.Body[1], c.Body[0]
}

// calculateContactBasis builds an orthonormal basis (contactToWorld) with
// the contact normal as its first axis, used to transform between world
// space and contact space (normal, and two tangent directions).
func (c *Contact) calculateContactBasis() {
	var tangent0, tangent1 lin.V3
	n := c.ContactNormal

	if math.Abs(n.X) > math.Abs(n.Y) {
		s := 1.0 / math.Sqrt(n.Z*n.Z+n.X*n.X)
		tangent0.X, tangent0.Y, tangent0.Z = n.Z*s, 0, -n.X*s
		tangent1.X = n.Y * tangent0.X
		tangent1.Y = n.Z*tangent0.X - n.X*tangent0.Z
		tangent1.Z = -n.Y * tangent0.X
	} else {
		s := 1.0 / math.Sqrt(n.Z*n.Z+n.Y*n.Y)
		tangent0.X, tangent0.Y, tangent0.Z = 0, -n.Z*s, n.Y*s
		tangent1.X = n.Y*tangent0.Z - n.Z*tangent0.Y
		tangent1.Y = -n.X * tangent0.Z
		tangent1.Z = n.X * tangent0.Y
	}

	c.contactToWorld.SetS(
		n.X, tangent0.X, tangent1.X,
		n.Y, tangent0.Y, tangent1.Y,
		n.Z, tangent0.Z, tangent1.Z,
	)
}

// calculateLocalVelocity returns the velocity, in contact space, of the
// contact point on body index bodyIndex (0 or 1), including the velocity
// contributed by the body's spin, minus the portion of velocity building
// up this frame purely from acceleration (so it can be handled separately
// by calculateDesiredDeltaVelocity).
func (c *Contact) calculateLocalVelocity(bodyIndex int, duration float64) *lin.V3 {
	body := c.Body[bodyIndex]

	velocity := lin.NewV3().Cross(body.Angular, c.relativeContactPosition[bodyIndex])
	velocity.Add(velocity, body.LinearVelocity)

	contactVelocity := lin.NewV3().MultvM(velocity, c.contactToWorld)

	accVelocity := lin.NewV3().Scale(body.LastFrameAcceleration(), duration)
	accVelocity = lin.NewV3().MultvM(accVelocity, c.contactToWorld)
	accVelocity.X = 0 // only interested in planar acceleration for this correction.
	contactVelocity.Add(contactVelocity, accVelocity)

	return contactVelocity
}

// calculateDesiredDeltaVelocity computes the change in contact-space
// closing velocity the resolver should try to produce this contact,
// combining restitution with an acceleration-driven correction so
// resting contacts do not accumulate energy.
func (c *Contact) calculateDesiredDeltaVelocity(duration float64) {
	restitution := c.Restitution

	velocityFromAcc := c.Body[0].LastFrameAcceleration().Dot(c.ContactNormal) * duration
	if c.Body[1] != nil {
		velocityFromAcc -= c.Body[1].LastFrameAcceleration().Dot(c.ContactNormal) * duration
	}

	if math.Abs(c.contactVelocity.X) < velocityLimit {
		restitution = 0
	}

	c.desiredDeltaVelocity = -c.contactVelocity.X - restitution*(c.contactVelocity.X-velocityFromAcc)
}

// calculateInternals recomputes all per-frame contact-space data: the
// contact basis, relative contact positions, combined contact velocity,
// and desired delta velocity. Must be called once per contact before
// velocity or position resolution.
func (c *Contact) calculateInternals(duration float64) {
	if c.Body[0] == nil {
		c.swapBodies()
	}

	c.calculateContactBasis()

	c.relativeContactPosition[0] = lin.NewV3().Sub(c.ContactPoint, c.Body[0].Position)
	if c.Body[1] != nil {
		c.relativeContactPosition[1] = lin.NewV3().Sub(c.ContactPoint, c.Body[1].Position)
	}

	c.contactVelocity = c.calculateLocalVelocity(0, duration)
	if c.Body[1] != nil {
		other := c.calculateLocalVelocity(1, duration)
		c.contactVelocity.Sub(c.contactVelocity, other)
	}

	c.calculateDesiredDeltaVelocity(duration)
}

// applyVelocityChange resolves the contact by applying an instantaneous
// impulse, splitting between frictionless and frictional resolution
// depending on whether Friction is zero. velocityChange and
// rotationChange are filled in with the per-body velocity/spin deltas
// applied, for use propagating the change to other contacts.
func (c *Contact) applyVelocityChange(velocityChange, rotationChange [2]*lin.V3) {
	var inverseInertiaTensor [2]*lin.M3
	inverseInertiaTensor[0] = c.Body[0].InverseInertiaTensorWorld()
	if c.Body[1] != nil {
		inverseInertiaTensor[1] = c.Body[1].InverseInertiaTensorWorld()
	}

	var impulseContact *lin.V3
	if c.Friction == 0 {
		impulseContact = c.calculateFrictionlessImpulse(inverseInertiaTensor)
	} else {
		impulseContact = c.calculateFrictionImpulse(inverseInertiaTensor)
	}

	impulse := lin.NewV3().MultMv(c.contactToWorld, impulseContact)

	impulsiveTorque := lin.NewV3().Cross(c.relativeContactPosition[0], impulse)
	rotationChange[0] = lin.NewV3().MultMv(inverseInertiaTensor[0], impulsiveTorque)
	velocityChange[0] = lin.NewV3().Scale(impulse, c.Body[0].InverseMass())

	c.Body[0].LinearVelocity.Add(c.Body[0].LinearVelocity, velocityChange[0])
	c.Body[0].Angular.Add(c.Body[0].Angular, rotationChange[0])

	if c.Body[1] != nil {
		impulsiveTorque1 := lin.NewV3().Cross(c.relativeContactPosition[1], impulse)
		rotationChange[1] = lin.NewV3().MultMv(inverseInertiaTensor[1], impulsiveTorque1)
		rotationChange[1].Scale(rotationChange[1], -1)
		velocityChange[1] = lin.NewV3().Scale(impulse, -c.Body[1].InverseMass())

		c.Body[1].LinearVelocity.Add(c.Body[1].LinearVelocity, velocityChange[1])
		c.Body[1].Angular.Add(c.Body[1].Angular, rotationChange[1])
	}
}

// calculateFrictionlessImpulse computes the contact-space impulse needed
// to produce the desired delta velocity along the contact normal alone
// (no tangential/frictional component).
func (c *Contact) calculateFrictionlessImpulse(inverseInertiaTensor [2]*lin.M3) *lin.V3 {
	deltaVelWorld := lin.NewV3().Cross(c.relativeContactPosition[0], c.ContactNormal)
	deltaVelWorld = lin.NewV3().MultMv(inverseInertiaTensor[0], deltaVelWorld)
	deltaVelWorld.Cross(deltaVelWorld, c.relativeContactPosition[0])

	deltaVelocity := deltaVelWorld.Dot(c.ContactNormal)
	deltaVelocity += c.Body[0].InverseMass()

	if c.Body[1] != nil {
		deltaVelWorld1 := lin.NewV3().Cross(c.relativeContactPosition[1], c.ContactNormal)
		deltaVelWorld1 = lin.NewV3().MultMv(inverseInertiaTensor[1], deltaVelWorld1)
		deltaVelWorld1.Cross(deltaVelWorld1, c.relativeContactPosition[1])

		deltaVelocity += deltaVelWorld1.Dot(c.ContactNormal)
		deltaVelocity += c.Body[1].InverseMass()
	}

	impulseContact := lin.NewV3()
	impulseContact.X = c.desiredDeltaVelocity / deltaVelocity
	return impulseContact
}

// calculateFrictionImpulse computes the contact-space impulse needed to
// produce the desired delta velocity along the normal while resisting
// tangential motion up to the Coulomb friction cone.
func (c *Contact) calculateFrictionImpulse(inverseInertiaTensor [2]*lin.M3) *lin.V3 {
	inverseMass := c.Body[0].InverseMass()

	impulseToTorque := lin.NewM3().SetSkewSym(c.relativeContactPosition[0])
	negImpulseToTorque := lin.NewM3().Set(impulseToTorque).Scale(-1)
	deltaVelWorld := lin.NewM3().Mult(impulseToTorque, inverseInertiaTensor[0])
	deltaVelWorld.Mult(deltaVelWorld, negImpulseToTorque)

	if c.Body[1] != nil {
		impulseToTorque1 := lin.NewM3().SetSkewSym(c.relativeContactPosition[1])
		negImpulseToTorque1 := lin.NewM3().Set(impulseToTorque1).Scale(-1)
		deltaVelWorld1 := lin.NewM3().Mult(impulseToTorque1, inverseInertiaTensor[1])
		deltaVelWorld1.Mult(deltaVelWorld1, negImpulseToTorque1)

		deltaVelWorld.Add(deltaVelWorld, deltaVelWorld1)
		inverseMass += c.Body[1].InverseMass()
	}

	deltaVelocity := lin.NewM3().Transpose(c.contactToWorld)
	deltaVelocity.Mult(deltaVelocity, deltaVelWorld)
	deltaVelocity.Mult(deltaVelocity, c.contactToWorld)

	deltaVelocity.Xx += inverseMass
	deltaVelocity.Yy += inverseMass
	deltaVelocity.Zz += inverseMass

	impulseMatrix := lin.NewM3().Inv(deltaVelocity)

	velKill := lin.NewV3S(c.desiredDeltaVelocity, -c.contactVelocity.Y, -c.contactVelocity.Z)
	impulseContact := lin.NewV3().MultMv(impulseMatrix, velKill)

	planarImpulse := math.Sqrt(impulseContact.Y*impulseContact.Y + impulseContact.Z*impulseContact.Z)
	if planarImpulse > impulseContact.X*c.Friction {
		impulseContact.Y /= planarImpulse
		impulseContact.Z /= planarImpulse

		impulseContact.X = deltaVelocity.Xx +
			deltaVelocity.Xy*c.Friction*impulseContact.Y +
			deltaVelocity.Xz*c.Friction*impulseContact.Z
		impulseContact.X = c.desiredDeltaVelocity / impulseContact.X

		impulseContact.Y *= c.Friction * impulseContact.X
		impulseContact.Z *= c.Friction * impulseContact.X
	}
	return impulseContact
}

// applyPositionChange resolves interpenetration directly, moving (and, if
// necessary, rotating) each body out of the other, proportionally to each
// body's share of the combined inverse mass and inverse inertia.
// linearChange and rotationChange are filled in with the per-body
// position/orientation deltas applied, for propagation to other contacts.
func (c *Contact) applyPositionChange(linearChange, angularChange [2]*lin.V3, penetration float64) {
	var angularInertia, linearInertia [2]float64
	var angularMove, linearMove [2]float64
	totalInertia := 0.0

	for i := 0; i < 2; i++ {
		if c.Body[i] == nil {
			continue
		}
		inverseInertiaTensor := c.Body[i].InverseInertiaTensorWorld()

		angularInertiaWorld := lin.NewV3().Cross(c.relativeContactPosition[i], c.ContactNormal)
		angularInertiaWorld = lin.NewV3().MultMv(inverseInertiaTensor, angularInertiaWorld)
		angularInertiaWorld.Cross(angularInertiaWorld, c.relativeContactPosition[i])
		angularInertia[i] = angularInertiaWorld.Dot(c.ContactNormal)

		linearInertia[i] = c.Body[i].InverseMass()

		totalInertia += linearInertia[i] + angularInertia[i]
	}

	for i := 0; i < 2; i++ {
		if c.Body[i] == nil {
			continue
		}
		sign := 1.0
		if i == 1 {
			sign = -1.0
		}
		angularMove[i] = sign * penetration * angularInertia[i] / totalInertia
		linearMove[i] = sign * penetration * linearInertia[i] / totalInertia

		projection := lin.NewV3().Set(c.relativeContactPosition[i])
		proj := projection.Dot(c.ContactNormal)
		projection.X -= proj * c.ContactNormal.X
		projection.Y -= proj * c.ContactNormal.Y
		projection.Z -= proj * c.ContactNormal.Z

		maxMagnitude := angularLimit * projection.Len()

		if angularMove[i] < -math.Abs(maxMagnitude) {
			totalMove := angularMove[i] + linearMove[i]
			angularMove[i] = -math.Abs(maxMagnitude)
			linearMove[i] = totalMove - angularMove[i]
		} else if angularMove[i] > math.Abs(maxMagnitude) {
			totalMove := angularMove[i] + linearMove[i]
			angularMove[i] = math.Abs(maxMagnitude)
			linearMove[i] = totalMove - angularMove[i]
		}

		if angularMove[i] == 0 {
			angularChange[i] = lin.NewV3()
		} else {
			targetAngularDirection := lin.NewV3().Cross(c.relativeContactPosition[i], c.ContactNormal)
			inverseInertiaTensor := c.Body[i].InverseInertiaTensorWorld()
			angularChange[i] = lin.NewV3().MultMv(inverseInertiaTensor, targetAngularDirection)
			angularChange[i].Scale(angularChange[i], angularMove[i]/angularInertia[i])
		}

		linearChange[i] = lin.NewV3().Scale(c.ContactNormal, linearMove[i])

		c.Body[i].Position.Add(c.Body[i].Position, linearChange[i])
		quaternionAddVector(c.Body[i].Orientation, angularChange[i], 1.0)

		if !c.Body[i].IsAwake() {
			c.Body[i].CalculateDerivedData()
		}
	}
}
