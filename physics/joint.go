// Copyright © 2024 Galvanized Logic Inc.

package physics

// joint.go ports joints: a distance constraint holding a fixed point on
// one body to a fixed point on another, generating a contact whenever the
// two points drift further apart than a small slack allowance.
// Ported from PhysicsEngine/src/ft_joint.cpp.

import "github.com/gazed/ftphysics/math/lin"

// Joint connects a point on BodyOne, local to that body, to a point on
// BodyTwo, local to that body, resisting separation beyond Error.
type Joint struct {
	BodyOne, BodyTwo         *RigidBody
	PositionOne, PositionTwo *lin.V3 // Local to the owning body.
	Error                    float64 // Maximum allowed separation before a contact is generated.
}

// NewJoint creates a joint between the two given body-local points.
func NewJoint(bodyOne *RigidBody, positionOne *lin.V3, bodyTwo *RigidBody, positionTwo *lin.V3, jointError float64) *Joint {
	return &Joint{bodyOne, bodyTwo, lin.NewV3().Set(positionOne), lin.NewV3().Set(positionTwo), jointError}
}

// AddContact appends a contact resolving the joint's separation if it has
// drifted beyond Error, respecting the remaining contact limit. Returns
// the number of contacts added (0 or 1).
func (j *Joint) AddContact(contacts *[]*Contact, limit int) int {
	if limit <= 0 {
		return 0
	}

	a1Pos := j.BodyOne.GetPointInWorldSpace(j.PositionOne)
	a2Pos := j.BodyTwo.GetPointInWorldSpace(j.PositionTwo)

	separation := lin.NewV3().Sub(a2Pos, a1Pos)
	length := separation.Len()

	if length <= j.Error {
		return 0
	}

	contact := NewContact()
	contact.SetBodyData(j.BodyOne, j.BodyTwo, 1.0, 0.0)

	midpoint := lin.NewV3().Add(a1Pos, a2Pos)
	midpoint.Scale(midpoint, 0.5)
	contact.ContactPoint = midpoint

	normal := lin.NewV3().Set(separation)
	normal.Unit()
	contact.ContactNormal = normal
	contact.Penetration = length - j.Error

	*contacts = append(*contacts, contact)
	return 1
}
