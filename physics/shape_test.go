// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"
	"testing"

	"github.com/gazed/ftphysics/math/lin"
)

func TestSphereInertiaIsIsotropic(t *testing.T) {
	s := NewSphere(2)
	inertia := s.Inertia(3, lin.NewV3())
	if inertia.X != inertia.Y || inertia.Y != inertia.Z {
		t.Errorf("expected equal inertia on all axes for a sphere, got %+v", inertia)
	}
	want := 0.4 * 3 * 2 * 2
	if math.Abs(inertia.X-want) > lin.Epsilon {
		t.Errorf("expected inertia %v, got %v", want, inertia.X)
	}
}

func TestBoxInertiaMatchesLongestAxisHasSmallestValue(t *testing.T) {
	// a box stretched along X should resist rotation about X the least,
	// i.e. have the smallest inertia component on that axis.
	b := NewBox(10, 1, 1)
	inertia := b.Inertia(1, lin.NewV3())
	if inertia.X >= inertia.Y || inertia.X >= inertia.Z {
		t.Errorf("expected the stretched axis to have the smallest inertia, got %+v", inertia)
	}
}

func TestShapeTypeConstants(t *testing.T) {
	if NewSphere(1).Type() != SphereShape {
		t.Errorf("expected sphere shape type")
	}
	if NewBox(1, 1, 1).Type() != BoxShape {
		t.Errorf("expected box shape type")
	}
}

func TestShapeVolumes(t *testing.T) {
	box := NewBox(1, 2, 3)
	if want := 2.0 * 4.0 * 6.0; math.Abs(box.Volume()-want) > lin.Epsilon {
		t.Errorf("expected box volume %v, got %v", want, box.Volume())
	}

	sphere := NewSphere(1)
	if want := 4.0 / 3.0 * math.Pi; math.Abs(sphere.Volume()-want) > lin.Epsilon {
		t.Errorf("expected unit sphere volume %v, got %v", want, sphere.Volume())
	}
}

func TestNegativeShapeDimensionsAreTurnedPositive(t *testing.T) {
	a := NewBox(-1, -2, -3)
	b := NewBox(1, 2, 3)
	if a.Volume() != b.Volume() {
		t.Errorf("expected negative dimensions to be mirrored positive")
	}
}
