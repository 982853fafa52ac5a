// Copyright © 2024 Galvanized Logic Inc.

package physics

// pworld.go ports the particle simulation world: the object that owns a
// set of particles, force generators, contact generators and a contact
// resolver, and drives one frame of simulation.
// Ported from PhysicsEngine/{includes,src}/ft_pworld.{h,cpp}.

import (
	"log/slog"

	"github.com/gazed/ftphysics/math/lin"
)

// ParticleWorld owns and steps a set of particles subject to force
// generators and contact constraints (cables, rods, ground contact).
type ParticleWorld struct {
	Particles []*Particle

	Registry  *ParticleForceRegistry
	Resolver  *ParticleContactResolver
	Generators []ParticleContactGenerator

	contacts    []ParticleContact
	maxContacts int

	// calculateIterations sizes the resolver's iteration cap
	// automatically (2x the number of contacts generated this frame)
	// rather than using a fixed cap, matching the original's default
	// resolver construction.
	calculateIterations bool
}

// NewParticleWorld creates a world with no particles, generators or
// resolver iteration cap set. maxContacts bounds how many contacts a
// single frame can generate, to cap per-frame allocation.
func NewParticleWorld(maxContacts int) *ParticleWorld {
	return &ParticleWorld{
		Registry:            NewParticleForceRegistry(),
		Resolver:            NewParticleContactResolver(0),
		contacts:            make([]ParticleContact, 0, maxContacts),
		maxContacts:         maxContacts,
		calculateIterations: true,
	}
}

// AddParticle registers a particle to be integrated and considered by
// this world's contact generators.
func (w *ParticleWorld) AddParticle(p *Particle) { w.Particles = append(w.Particles, p) }

// AddContactGenerator registers a contact generator (cable, rod, ground
// contact, ...) to be polled every frame.
func (w *ParticleWorld) AddContactGenerator(g ParticleContactGenerator) {
	w.Generators = append(w.Generators, g)
}

// StartFrame clears every particle's force accumulator, readying them to
// receive this frame's forces.
func (w *ParticleWorld) StartFrame() {
	for _, p := range w.Particles {
		p.ClearAccumulator()
	}
}

// generateContacts polls every registered contact generator, filling
// w.contacts up to maxContacts, and returns the number of contacts
// generated.
func (w *ParticleWorld) generateContacts() int {
	limit := w.maxContacts
	w.contacts = w.contacts[:0]

	for _, g := range w.Generators {
		if limit <= 0 {
			break
		}
		used := g.AddContact(&w.contacts, limit)
		limit -= used
	}
	return w.maxContacts - limit
}

// integrate applies registered forces and advances every particle's
// position and velocity by duration seconds.
func (w *ParticleWorld) integrate(duration float64) {
	for _, p := range w.Particles {
		p.Integrate(duration)
	}
}

// RunPhysics advances the world by one frame of duration seconds: applies
// force generators, integrates particles, generates contacts, and
// resolves them.
func (w *ParticleWorld) RunPhysics(duration float64) {
	if duration <= 0 {
		slog.Error("physics: ParticleWorld.RunPhysics requires a positive duration", "duration", duration)
		return
	}

	w.Registry.UpdateForces(duration)
	w.integrate(duration)

	usedContacts := w.generateContacts()
	if usedContacts == 0 {
		return
	}

	if w.calculateIterations {
		w.Resolver.SetIterations(usedContacts * 2)
	}
	w.Resolver.ResolveContacts(w.contacts[:usedContacts], duration)
}

// GroundContactGenerator is a supplemental contact generator, not present
// in the distilled particle-world feature set but present in the broader
// original demo suite: it keeps every registered particle from falling
// below a fixed ground plane height.
type GroundContactGenerator struct {
	Particles    []*Particle
	GroundHeight float64
}

// NewGroundContactGenerator creates a ground plane at groundHeight that
// the given particles will be kept from passing through.
func NewGroundContactGenerator(particles []*Particle, groundHeight float64) *GroundContactGenerator {
	return &GroundContactGenerator{particles, groundHeight}
}

// AddContact appends a contact for every registered particle currently at
// or below GroundHeight, respecting the remaining contact limit.
func (g *GroundContactGenerator) AddContact(contacts *[]ParticleContact, limit int) int {
	count := 0
	for _, p := range g.Particles {
		if count >= limit {
			break
		}
		if p.Position.Y > g.GroundHeight {
			continue
		}

		contact := ParticleContact{}
		contact.ContactNormal = lin.NewV3S(0, 1, 0)
		contact.Particles[0] = p
		contact.Particles[1] = nil
		contact.Penetration = g.GroundHeight - p.Position.Y
		contact.Restitution = 0.2

		*contacts = append(*contacts, contact)
		count++
	}
	return count
}
