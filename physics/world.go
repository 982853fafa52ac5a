// Copyright © 2024 Galvanized Logic Inc.

package physics

// world.go ports the rigid-body simulation world: the object that owns a
// set of rigid bodies, force generators, contact generators and a contact
// resolver, and drives one frame of simulation.
// Ported from PhysicsEngine/{includes,src}/ft_world.{h,cpp}.

import "log/slog"

// World owns and steps a set of rigid bodies subject to force generators
// and contact constraints (joints, resting contacts from a narrow phase).
type World struct {
	Bodies []*RigidBody

	Registry   *ForceRegistry
	Resolver   *ContactResolver
	Generators []ContactGenerator

	contacts    []*Contact
	maxContacts int

	// calculateIterations sizes the resolver's velocity iteration cap
	// automatically (2x the number of contacts generated this frame).
	// The position iteration cap is left under caller control via
	// Resolver.SetIterations, since a stack of resting bodies usually
	// needs substantially more position passes than velocity passes.
	calculateIterations bool
}

// NewWorld creates a world with no bodies or generators. maxContacts
// bounds how many contacts a single frame can generate.
func NewWorld(maxContacts int) *World {
	return &World{
		Registry:            NewForceRegistry(),
		Resolver:            NewContactResolver(0, 0),
		contacts:            make([]*Contact, 0, maxContacts),
		maxContacts:         maxContacts,
		calculateIterations: true,
	}
}

// AddBody registers a rigid body to be integrated and considered by this
// world's contact generators.
func (w *World) AddBody(b *RigidBody) { w.Bodies = append(w.Bodies, b) }

// AddContactGenerator registers a contact generator (joint, narrow-phase
// collision detector, ...) to be polled every frame.
func (w *World) AddContactGenerator(g ContactGenerator) {
	w.Generators = append(w.Generators, g)
}

// StartFrame clears every body's force and torque accumulators.
func (w *World) StartFrame() {
	for _, b := range w.Bodies {
		b.ClearAccumulators()
		b.CalculateDerivedData()
	}
}

func (w *World) generateContacts() int {
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

func (w *World) integrate(duration float64) {
	for _, b := range w.Bodies {
		b.Integrate(duration)
	}
}

// RunPhysics advances the world by one frame of duration seconds: applies
// force generators, integrates bodies, generates contacts, and resolves
// them.
func (w *World) RunPhysics(duration float64) {
	if duration <= 0 {
		slog.Error("physics: World.RunPhysics requires a positive duration", "duration", duration)
		return
	}

	w.Registry.UpdateForces(duration)
	w.integrate(duration)

	usedContacts := w.generateContacts()
	if usedContacts == 0 {
		return
	}

	if w.calculateIterations {
		w.Resolver.SetVelocityIterations(usedContacts * 4)
	}
	w.Resolver.ResolveContacts(w.contacts[:usedContacts], duration)
}
