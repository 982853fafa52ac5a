// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestBoundingSphereOverlapDetection(t *testing.T) {
	a := NewBoundingSphere(lin.NewV3S(0, 0, 0), 1)
	b := NewBoundingSphere(lin.NewV3S(1.5, 0, 0), 1)
	if !a.Overlaps(b) {
		t.Errorf("expected overlapping spheres to report overlap")
	}

	c := NewBoundingSphere(lin.NewV3S(10, 0, 0), 1)
	if a.Overlaps(c) {
		t.Errorf("expected distant spheres to not overlap")
	}
}

// A bounding sphere that merges two others must enclose both: every point
// on either source sphere's surface lies within (or on) the merged sphere.
func TestScenarioBoundingSphereMergeEnclosesBoth(t *testing.T) {
	a := NewBoundingSphere(lin.NewV3S(-2, 0, 0), 1)
	b := NewBoundingSphere(lin.NewV3S(3, 0, 0), 2)

	merged := NewBoundingSphereFrom(a, b)

	for _, s := range []*BoundingSphere{a, b} {
		d := merged.Centre.Dist(s.Centre) + s.Radius
		if d > merged.Radius+1e-6 {
			t.Errorf("expected the merged sphere to enclose sphere at %+v radius %v: distance+radius=%v > merged radius=%v",
				s.Centre, s.Radius, d, merged.Radius)
		}
	}
}

func TestBoundingSphereMergeOfNestedSpheresReturnsOuter(t *testing.T) {
	outer := NewBoundingSphere(lin.NewV3S(0, 0, 0), 5)
	inner := NewBoundingSphere(lin.NewV3S(1, 0, 0), 1)

	merged := NewBoundingSphereFrom(outer, inner)
	if math.Abs(merged.Radius-outer.Radius) > 1e-9 {
		t.Errorf("expected a fully-contained sphere to not grow the merge, got radius %v", merged.Radius)
	}
}

func TestGrowthMetricIsZeroWhenOtherIsContained(t *testing.T) {
	outer := NewBoundingSphere(lin.NewV3S(0, 0, 0), 5)
	inner := NewBoundingSphere(lin.NewV3S(0, 0, 0), 1)

	if g := outer.GrowthMetric(inner); math.Abs(g) > 1e-9 {
		t.Errorf("expected zero growth when merging a contained sphere, got %v", g)
	}
}

func TestGeneratePotentialContactsFindsOnlyOverlappingPairs(t *testing.T) {
	near1 := NewRigidBody()
	near2 := NewRigidBody()
	far := NewRigidBody()
	far.Position.SetS(100, 0, 0)
	far.CalculateDerivedData()

	pairs := []BoundingSpherePair{
		{Body: near1, Sphere: NewBoundingSphere(near1.Position, 1)},
		{Body: near2, Sphere: NewBoundingSphere(near2.Position, 1)},
		{Body: far, Sphere: NewBoundingSphere(far.Position, 1)},
	}

	potentials := GeneratePotentialContacts(pairs)
	if len(potentials) != 1 {
		t.Fatalf("expected exactly one potential contact, got %d", len(potentials))
	}
	if potentials[0].Body[0] != near1 || potentials[0].Body[1] != near2 {
		t.Errorf("expected the overlapping pair to be (near1, near2), got %+v", potentials[0].Body)
	}
}
