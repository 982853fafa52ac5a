// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/gazed/ftphysics/math/lin"
)

// Shape is a mass distribution primitive used to derive a rigid body's
// inverse inertia tensor. A Shape is always in local space centered at
// the body's centre of mass. Shapes do not allocate memory; Inertia
// fills in the vector it is given.
type Shape interface {
	Type() int       // Type returns the shape type.
	Volume() float64 // Volume is useful for mass = density*volume.

	// Inertia computes the diagonal of the local inertia tensor for the
	// given mass. The input vector, inertia, is updated and returned.
	Inertia(mass float64, inertia *lin.V3) *lin.V3
}

// Enumerate the shapes handled by physics and returned by Shape.Type().
const (
	SphereShape = iota // Considered convex (curving outwards).
	BoxShape           // Polyhedral (flat faces, straight edges). Convex.
	NumShapes          // Keep this last.
)

// Shape interface
// ============================================================================
// box shape

// box is a mass distribution primitive. It is centered at the origin and
// defined by half-lengths along each axis. A box has 6 faces, 8 vertices,
// and 12 edges.
type box struct {
	Hx, Hy, Hz float64
}

// NewBox creates a Box shape. Negative input values are turned positive.
// Input values of zero are ignored, but not recommended.
func NewBox(hx, hy, hz float64) Shape { return &box{math.Abs(hx), math.Abs(hy), math.Abs(hz)} }

// Implements Shape.Type
func (b *box) Type() int { return BoxShape }

// Implements Shape.Volume
func (b *box) Volume() float64 { return b.Hx * 2 * b.Hy * 2 * b.Hz * 2 }

// Implements Shape.Inertia
func (b *box) Inertia(mass float64, inertia *lin.V3) *lin.V3 {
	lx2, ly2, lz2 := 4.0*b.Hx*b.Hx, 4.0*b.Hy*b.Hy, 4.0*b.Hz*b.Hz
	inertia.SetS(mass/12.0*(ly2+lz2), mass/12.0*(lx2+lz2), mass/12.0*(lx2+ly2))
	return inertia
}

// box
// ============================================================================
// sphere shape

// sphere is a mass distribution primitive defined by a radius around
// the origin. A solid, uniform-density sphere is assumed.
type sphere struct {
	R float64
}

// NewSphere creates a Sphere shape. Negative radius values are turned positive.
// Input values of zero are ignored, but not recommended.
func NewSphere(radius float64) Shape { return &sphere{math.Abs(radius)} }

// Implements Shape.Type
func (s *sphere) Type() int { return SphereShape }

// Implements Shape.Volume
func (s *sphere) Volume() float64 { return 4.0 / 3.0 * math.Pi * s.R * s.R * s.R }

// Implements Shape.Inertia
func (s *sphere) Inertia(mass float64, inertia *lin.V3) *lin.V3 {
	elem := 0.4 * mass * s.R * s.R
	inertia.SetS(elem, elem, elem)
	return inertia
}
