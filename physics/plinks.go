// Copyright © 2024 Galvanized Logic Inc.

package physics

// plinks.go ports particle link contact generators: cables and rods
// connecting two particles, plus anchored variants connecting a single
// particle to a fixed point in world space.
// Ported from PhysicsEngine/{includes,src}/ft_plinks.{h,cpp}.

import "github.com/gazed/ftphysics/math/lin"

// currentLength returns the distance between the two ends of a link.
func currentLength(a, b *lin.V3) float64 { return lin.NewV3().Sub(a, b).Len() }

// ParticleCable connects two particles, generating a contact only when
// they are further apart than MaxLength: an inequality constraint, like a
// real cable, that prevents stretching but allows slack.
type ParticleCable struct {
	ParticleOne, ParticleTwo *Particle
	MaxLength                float64
	Restitution              float64
}

// NewParticleCable creates a cable link between two particles.
func NewParticleCable(one, two *Particle, maxLength, restitution float64) *ParticleCable {
	return &ParticleCable{one, two, maxLength, restitution}
}

// AddContact appends a contact to contacts if the cable is stretched
// beyond MaxLength, respecting the given remaining contact limit. Returns
// the number of contacts added (0 or 1).
func (c *ParticleCable) AddContact(contacts *[]ParticleContact, limit int) int {
	if limit <= 0 {
		return 0
	}
	length := currentLength(c.ParticleOne.Position, c.ParticleTwo.Position)
	if length < c.MaxLength {
		return 0
	}

	contact := ParticleContact{}
	contact.Particles[0] = c.ParticleOne
	contact.Particles[1] = c.ParticleTwo

	normal := lin.NewV3().Sub(c.ParticleTwo.Position, c.ParticleOne.Position)
	normal.Unit()
	contact.ContactNormal = normal
	contact.Penetration = length - c.MaxLength
	contact.Restitution = c.Restitution

	*contacts = append(*contacts, contact)
	return 1
}

// ParticleRod connects two particles at a fixed Length: an equality
// constraint, like a rigid rod, that resists both stretching and
// compression. Rods never bounce; Restitution is always 0.
type ParticleRod struct {
	ParticleOne, ParticleTwo *Particle
	Length                   float64
}

// NewParticleRod creates a rod link between two particles.
func NewParticleRod(one, two *Particle, length float64) *ParticleRod {
	return &ParticleRod{one, two, length}
}

// AddContact appends a contact to contacts if the rod's current length
// differs at all from its fixed Length, respecting the remaining contact
// limit. Returns the number of contacts added (0 or 1).
func (r *ParticleRod) AddContact(contacts *[]ParticleContact, limit int) int {
	if limit <= 0 {
		return 0
	}
	length := currentLength(r.ParticleOne.Position, r.ParticleTwo.Position)
	if length == r.Length {
		return 0
	}

	contact := ParticleContact{}
	contact.Particles[0] = r.ParticleOne
	contact.Particles[1] = r.ParticleTwo

	normal := lin.NewV3().Sub(r.ParticleTwo.Position, r.ParticleOne.Position)
	normal.Unit()

	if length > r.Length {
		contact.ContactNormal = normal
		contact.Penetration = length - r.Length
	} else {
		contact.ContactNormal = normal.Scale(normal, -1)
		contact.Penetration = r.Length - length
	}
	contact.Restitution = 0

	*contacts = append(*contacts, contact)
	return 1
}

// ParticleConstraint connects a single particle to a fixed world-space
// anchor point. It is the anchored counterpart of a link between two
// particles.
type ParticleConstraint struct {
	Particle *Particle
	Anchor   *lin.V3
}

// currentLengthToAnchor returns the distance from the particle to its anchor.
func (c *ParticleConstraint) currentLengthToAnchor() float64 {
	return currentLength(c.Particle.Position, c.Anchor)
}

// ParticleCableConstraint is the anchored counterpart of ParticleCable: it
// generates a contact only when the particle is further from the anchor
// than MaxLength.
type ParticleCableConstraint struct {
	ParticleConstraint
	MaxLength   float64
	Restitution float64
}

// NewParticleCableConstraint creates a cable constraint anchoring particle
// p to a fixed world-space point.
func NewParticleCableConstraint(p *Particle, anchor *lin.V3, maxLength, restitution float64) *ParticleCableConstraint {
	return &ParticleCableConstraint{ParticleConstraint{p, lin.NewV3().Set(anchor)}, maxLength, restitution}
}

func (c *ParticleCableConstraint) AddContact(contacts *[]ParticleContact, limit int) int {
	if limit <= 0 {
		return 0
	}
	length := c.currentLengthToAnchor()
	if length < c.MaxLength {
		return 0
	}

	contact := ParticleContact{}
	contact.Particles[0] = c.Particle
	contact.Particles[1] = nil

	normal := lin.NewV3().Sub(c.Anchor, c.Particle.Position)
	normal.Unit()
	contact.ContactNormal = normal
	contact.Penetration = length - c.MaxLength
	contact.Restitution = c.Restitution

	*contacts = append(*contacts, contact)
	return 1
}

// ParticleRodConstraint is the anchored counterpart of ParticleRod: it
// holds the particle at a fixed distance, Length, from the anchor.
type ParticleRodConstraint struct {
	ParticleConstraint
	Length float64
}

// NewParticleRodConstraint creates a rod constraint anchoring particle p
// to a fixed world-space point.
func NewParticleRodConstraint(p *Particle, anchor *lin.V3, length float64) *ParticleRodConstraint {
	return &ParticleRodConstraint{ParticleConstraint{p, lin.NewV3().Set(anchor)}, length}
}

func (c *ParticleRodConstraint) AddContact(contacts *[]ParticleContact, limit int) int {
	if limit <= 0 {
		return 0
	}
	length := c.currentLengthToAnchor()
	if length == c.Length {
		return 0
	}

	contact := ParticleContact{}
	contact.Particles[0] = c.Particle
	contact.Particles[1] = nil

	normal := lin.NewV3().Sub(c.Anchor, c.Particle.Position)
	normal.Unit()

	if length > c.Length {
		contact.ContactNormal = normal
		contact.Penetration = length - c.Length
	} else {
		contact.ContactNormal = normal.Scale(normal, -1)
		contact.Penetration = c.Length - length
	}
	contact.Restitution = 0

	*contacts = append(*contacts, contact)
	return 1
}
