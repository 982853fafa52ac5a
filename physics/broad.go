// Copyright © 2024 Galvanized Logic Inc.

package physics

// broad.go ports the bounding-sphere broad phase: a cheap, conservative
// overlap test used to cull pairs of bodies before a narrow-phase contact
// generator is run on them.
// Ported from PhysicsEngine/src/ft_world.cpp's use of bounding volumes.

import "github.com/gazed/ftphysics/math/lin"

// BoundingSphere is a conservative bounding volume used for broad-phase
// overlap culling.
type BoundingSphere struct {
	Centre *lin.V3
	Radius float64
}

// NewBoundingSphere creates a bounding sphere directly from a centre and
// radius.
func NewBoundingSphere(centre *lin.V3, radius float64) *BoundingSphere {
	return &BoundingSphere{lin.NewV3().Set(centre), radius}
}

// NewBoundingSphereFrom creates the smallest bounding sphere that encloses
// both one and two.
func NewBoundingSphereFrom(one, two *BoundingSphere) *BoundingSphere {
	centreOffset := lin.NewV3().Sub(two.Centre, one.Centre)
	distance := centreOffset.Len()
	radiusDiff := two.Radius - one.Radius

	if radiusDiff*radiusDiff >= distance*distance {
		// one sphere fully contains the other.
		if one.Radius > two.Radius {
			return NewBoundingSphere(one.Centre, one.Radius)
		}
		return NewBoundingSphere(two.Centre, two.Radius)
	}

	radius := (distance + one.Radius + two.Radius) * 0.5
	centre := lin.NewV3().Set(one.Centre)
	if distance > 0 {
		scale := (radius - one.Radius) / distance
		centreOffset.Scale(centreOffset, scale)
		centre.Add(centre, centreOffset)
	}
	return &BoundingSphere{centre, radius}
}

// Overlaps reports whether this sphere intersects other.
func (b *BoundingSphere) Overlaps(other *BoundingSphere) bool {
	distanceSqr := b.Centre.DistSqr(other.Centre)
	radiusSum := b.Radius + other.Radius
	return distanceSqr < radiusSum*radiusSum
}

// GrowthMetric returns how much the combined bounding sphere of b and
// other would grow relative to b alone, used to pick the cheapest sphere
// to grow when inserting into a bounding volume hierarchy.
func (b *BoundingSphere) GrowthMetric(other *BoundingSphere) float64 {
	combined := NewBoundingSphereFrom(b, other)
	return combined.Radius*combined.Radius - b.Radius*b.Radius
}

// Size returns a volume-like metric (surface area of the bounding sphere)
// used to compare candidate hierarchy nodes.
func (b *BoundingSphere) Size() float64 {
	return 4.0 / 3.0 * 3.14159265358979 * b.Radius * b.Radius * b.Radius
}

// PotentialContact names a pair of bodies whose bounding spheres overlap,
// and so are candidates for narrow-phase contact generation.
type PotentialContact struct {
	Body [2]*RigidBody
}

// BoundingSpherePair couples a rigid body with the bounding sphere used to
// represent it in the broad phase.
type BoundingSpherePair struct {
	Body   *RigidBody
	Sphere *BoundingSphere
}

// GeneratePotentialContacts performs an O(n^2) sweep over pairs, the
// simplest correct broad phase, appropriate for the small body counts a
// single physics world handles per frame; a hierarchy only pays for itself
// at much larger body counts.
func GeneratePotentialContacts(pairs []BoundingSpherePair) []PotentialContact {
	var potentials []PotentialContact
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[i].Sphere.Overlaps(pairs[j].Sphere) {
				potentials = append(potentials, PotentialContact{
					Body: [2]*RigidBody{pairs[i].Body, pairs[j].Body},
				})
			}
		}
	}
	return potentials
}
