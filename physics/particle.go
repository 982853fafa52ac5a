// Copyright © 2024 Galvanized Logic Inc.

package physics

// particle.go ports the point-mass particle simulation primitive.
// Particle was ported from PhysicsEngine/includes/ft_particle.h.

import (
	"log/slog"
	"math"

	"github.com/gazed/ftphysics/math/lin"
)

// Particle is a point mass: it has position, velocity and mass but no
// orientation or angular motion. Particles are the simplest body a force
// generator or contact resolver can act on.
type Particle struct {
	Position     *lin.V3 // World position.
	Velocity     *lin.V3 // Linear velocity, meters per second.
	Acceleration *lin.V3 // Acceleration applied every integration step (e.g. gravity).
	Damping      float64 // Simple velocity decay, applied every integration step.

	inverseMass float64 // Zero inverse mass means infinite mass (does not move).
	accum       *lin.V3 // Accumulated force for the current frame.
}

// NewParticle creates a particle at the origin, at rest, with infinite
// mass and no damping. Use SetMass and SetDamping to configure it.
func NewParticle() *Particle {
	p := &Particle{
		Position:     lin.NewV3(),
		Velocity:     lin.NewV3(),
		Acceleration: lin.NewV3(),
		Damping:      0.99,
		accum:        lin.NewV3(),
	}
	return p
}

// Mass returns the particle's mass. Returns a very large number if the
// particle has infinite mass (zero inverse mass).
func (p *Particle) Mass() float64 {
	if p.inverseMass == 0 {
		return lin.Large
	}
	return 1.0 / p.inverseMass
}

// InverseMass returns the particle's inverse mass. Zero means infinite mass.
func (p *Particle) InverseMass() float64 { return p.inverseMass }

// SetInverseMass sets the particle's inverse mass directly. Use zero for
// an immovable particle.
func (p *Particle) SetInverseMass(inverseMass float64) { p.inverseMass = inverseMass }

// SetMass sets the particle's mass. Panics if mass is not positive; use
// SetInverseMass(0) for an immovable particle instead.
func (p *Particle) SetMass(mass float64) {
	if mass <= 0 {
		panic("physics: Particle.SetMass requires a positive mass")
	}
	p.inverseMass = 1.0 / mass
}

// HasFiniteMass returns true if the particle has a non-zero inverse mass.
func (p *Particle) HasFiniteMass() bool { return p.inverseMass > 0 }

// AddForce accumulates a force to be applied during the next Integrate call.
func (p *Particle) AddForce(force *lin.V3) { p.accum.Add(p.accum, force) }

// ClearAccumulator zeros the force accumulator. Called automatically at the
// end of Integrate, and at the start of every ParticleWorld frame.
func (p *Particle) ClearAccumulator() { p.accum.SetS(0, 0, 0) }

// Integrate advances the particle's position and velocity by duration
// seconds using semi-implicit (symplectic) Euler integration. Infinite
// mass particles (inverseMass == 0) are left untouched. Durations that
// are not strictly positive are a programmer error and are logged, not
// applied.
func (p *Particle) Integrate(duration float64) {
	if p.inverseMass <= 0 {
		return
	}
	if duration <= 0 {
		slog.Error("physics: Particle.Integrate requires a positive duration", "duration", duration)
		return
	}

	// update linear position.
	p.Position.X += p.Velocity.X * duration
	p.Position.Y += p.Velocity.Y * duration
	p.Position.Z += p.Velocity.Z * duration

	// work out the acceleration from the force accumulator.
	resultingAcc := lin.NewV3().Set(p.Acceleration)
	resultingAcc.X += p.accum.X * p.inverseMass
	resultingAcc.Y += p.accum.Y * p.inverseMass
	resultingAcc.Z += p.accum.Z * p.inverseMass

	// update linear velocity from the acceleration.
	p.Velocity.X += resultingAcc.X * duration
	p.Velocity.Y += resultingAcc.Y * duration
	p.Velocity.Z += resultingAcc.Z * duration

	// impose drag.
	p.Velocity.Scale(p.Velocity, math.Pow(p.Damping, duration))

	p.ClearAccumulator()
}
