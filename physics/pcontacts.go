// Copyright © 2024 Galvanized Logic Inc.

package physics

// pcontacts.go ports particle contact resolution: a single contact between
// one or two particles, and the iterative resolver that works through a
// list of contacts in order of severity.
// Ported from PhysicsEngine/{includes,src}/ft_pcontacts.{h,cpp}.

import "github.com/gazed/ftphysics/math/lin"

// ParticleContactGenerator produces zero or more contacts describing a
// constraint violation (cable, rod, ground) for the current frame.
type ParticleContactGenerator interface {
	// AddContact appends up to limit contacts to contacts, returning the
	// number actually added.
	AddContact(contacts *[]ParticleContact, limit int) int
}

// ParticleContact describes two particles in contact, or one particle in
// contact with an immovable point in space (Particles[1] == nil).
type ParticleContact struct {
	Particles     [2]*Particle
	Restitution   float64
	ContactNormal *lin.V3
	Penetration   float64

	// particleMovement holds the per-particle position change applied
	// by the most recent ResolveInterpenetration call; used to
	// propagate interpenetration fixes to neighbouring contacts.
	particleMovement [2]*lin.V3
}

// resolve resolves both the velocity and the interpenetration of this
// contact.
func (c *ParticleContact) resolve(duration float64) {
	c.resolveVelocity(duration)
	c.resolveInterpenetration(duration)
}

// separatingVelocity returns the closing (negative) or separating
// (positive) velocity of the two particles along the contact normal.
func (c *ParticleContact) separatingVelocity() float64 {
	relativeVelocity := lin.NewV3().Set(c.Particles[0].Velocity)
	if c.Particles[1] != nil {
		relativeVelocity.Sub(relativeVelocity, c.Particles[1].Velocity)
	}
	return relativeVelocity.Dot(c.ContactNormal)
}

// resolveVelocity applies an instantaneous velocity change to resolve
// this contact, accounting for restitution and, separately, the closing
// velocity build up by acceleration during this frame (so resting contacts
// under gravity do not pick up spurious bounce).
func (c *ParticleContact) resolveVelocity(duration float64) {
	separatingVelocity := c.separatingVelocity()
	if separatingVelocity > 0 {
		return // separating or stationary: nothing to resolve.
	}

	newSepVelocity := -separatingVelocity * c.Restitution

	// Check the velocity build-up due to acceleration only.
	accCausedVelocity := lin.NewV3().Set(c.Particles[0].Acceleration)
	if c.Particles[1] != nil {
		accCausedVelocity.Sub(accCausedVelocity, c.Particles[1].Acceleration)
	}
	accCausedSepVelocity := accCausedVelocity.Dot(c.ContactNormal) * duration

	// Remove closing velocity due to acceleration buildup, but never add
	// more separating velocity than was already there.
	if accCausedSepVelocity < 0 {
		newSepVelocity += c.Restitution * accCausedSepVelocity
		if newSepVelocity < 0 {
			newSepVelocity = 0
		}
	}

	deltaVelocity := newSepVelocity - separatingVelocity

	totalInverseMass := c.Particles[0].InverseMass()
	if c.Particles[1] != nil {
		totalInverseMass += c.Particles[1].InverseMass()
	}
	if totalInverseMass <= 0 {
		return // both particles have infinite mass: immovable.
	}

	impulse := deltaVelocity / totalInverseMass
	impulsePerIMass := lin.NewV3().Scale(c.ContactNormal, impulse)

	v0 := lin.NewV3().Scale(impulsePerIMass, c.Particles[0].InverseMass())
	c.Particles[0].Velocity.Add(c.Particles[0].Velocity, v0)
	if c.Particles[1] != nil {
		v1 := lin.NewV3().Scale(impulsePerIMass, -c.Particles[1].InverseMass())
		c.Particles[1].Velocity.Add(c.Particles[1].Velocity, v1)
	}
}

// resolveInterpenetration moves the particles directly apart, in
// proportion to their inverse mass, to resolve any interpenetration.
func (c *ParticleContact) resolveInterpenetration(duration float64) {
	if c.Penetration <= 0 {
		return
	}

	totalInverseMass := c.Particles[0].InverseMass()
	if c.Particles[1] != nil {
		totalInverseMass += c.Particles[1].InverseMass()
	}
	if totalInverseMass <= 0 {
		return
	}

	movePerIMass := lin.NewV3().Scale(c.ContactNormal, c.Penetration/totalInverseMass)

	c.particleMovement[0] = lin.NewV3().Scale(movePerIMass, c.Particles[0].InverseMass())
	c.Particles[0].Position.Add(c.Particles[0].Position, c.particleMovement[0])

	if c.Particles[1] != nil {
		c.particleMovement[1] = lin.NewV3().Scale(movePerIMass, -c.Particles[1].InverseMass())
		c.Particles[1].Position.Add(c.Particles[1].Position, c.particleMovement[1])
	} else {
		c.particleMovement[1] = lin.NewV3()
	}
}

// ParticleContactResolver iteratively resolves a set of particle
// contacts. Each iteration resolves the single most severe contact (the
// most negative separating velocity, or failing that the greatest
// penetration) and re-evaluates the rest, since resolving one contact can
// change the separating velocity or penetration of others that share a
// particle.
type ParticleContactResolver struct {
	iterations     int
	iterationsUsed int
}

// NewParticleContactResolver creates a resolver with the given iteration
// cap. Use SetIterations to adjust it, or ParticleWorld's automatic
// iteration count (2x the number of contacts).
func NewParticleContactResolver(iterations int) *ParticleContactResolver {
	return &ParticleContactResolver{iterations: iterations}
}

// SetIterations sets the iteration cap.
func (r *ParticleContactResolver) SetIterations(iterations int) { r.iterations = iterations }

// IterationsUsed returns the number of iterations actually performed by
// the most recent ResolveContacts call, for diagnostics/tests.
func (r *ParticleContactResolver) IterationsUsed() int { return r.iterationsUsed }

// ResolveContacts resolves the given set of contacts, for both penetration
// and velocity, in priority order. Performs at most r.iterations passes.
func (r *ParticleContactResolver) ResolveContacts(contacts []ParticleContact, duration float64) {
	r.iterationsUsed = 0
	for r.iterationsUsed < r.iterations {
		// find the contact with the largest closing velocity.
		maxSepVelocity := 0.0
		maxIndex := len(contacts)
		for i := range contacts {
			sepVelocity := contacts[i].separatingVelocity()
			if sepVelocity < maxSepVelocity && (sepVelocity < 0 || contacts[i].Penetration > 0) {
				maxSepVelocity = sepVelocity
				maxIndex = i
			}
		}
		if maxIndex == len(contacts) {
			break // nothing left that needs resolving.
		}

		contacts[maxIndex].resolve(duration)
		r.iterationsUsed++

		// propagate the change in particle movement/velocity to every
		// other contact sharing one of the two resolved particles.
		move := contacts[maxIndex].particleMovement
		for i := range contacts {
			for p := 0; p < 2; p++ {
				if contacts[i].Particles[p] == nil {
					continue
				}
				for d := 0; d < 2; d++ {
					if contacts[i].Particles[p] == contacts[maxIndex].Particles[d] && move[d] != nil {
						sign := 1.0
						if p == 1 {
							sign = -1.0
						}
						contacts[i].Penetration += move[d].Dot(contacts[i].ContactNormal) * sign
					}
				}
			}
		}
	}
}
