package vector

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -1, 2)

	sum := a.Add(b)
	if sum.X() != 5 || sum.Y() != 1 || sum.Z() != 5 {
		t.Errorf("Add: got (%g, %g, %g), want (5, 1, 5)", sum.X(), sum.Y(), sum.Z())
	}

	diff := a.Sub(b)
	if diff.X() != -3 || diff.Y() != 3 || diff.Z() != 1 {
		t.Errorf("Sub: got (%g, %g, %g), want (-3, 3, 1)", diff.X(), diff.Y(), diff.Z())
	}

	prod := a.Mul(b)
	if prod.X() != 4 || prod.Y() != -2 || prod.Z() != 6 {
		t.Errorf("Mul: got (%g, %g, %g), want (4, -2, 6)", prod.X(), prod.Y(), prod.Z())
	}

	quot := NewVector3(8, 9, 10).Div(NewVector3(2, 3, 5))
	if quot.X() != 4 || quot.Y() != 3 || quot.Z() != 2 {
		t.Errorf("Div: got (%g, %g, %g), want (4, 3, 2)", quot.X(), quot.Y(), quot.Z())
	}

	scaled := a.Scale(2)
	if scaled.X() != 2 || scaled.Y() != 4 || scaled.Z() != 6 {
		t.Errorf("Scale: got (%g, %g, %g), want (2, 4, 6)", scaled.X(), scaled.Y(), scaled.Z())
	}

	if dot := a.Dot(b); dot != 4-2+6 {
		t.Errorf("Dot: got %g, want %g", dot, 4.0-2+6)
	}
}

func TestVec3At(t *testing.T) {
	v := NewVector3(1, 2, 3)
	if v.At(0) != 1 || v.At(1) != 2 || v.At(2) != 3 {
		t.Errorf("At: got (%g, %g, %g), want (1, 2, 3)", v.At(0), v.At(1), v.At(2))
	}
}

func TestVec3AtOutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("At(3) should have panicked")
		}
	}()
	NewVector3(1, 2, 3).At(3)
}

func TestVec3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	if !almostEqual(v.Length(), 5, 1e-12) {
		t.Errorf("Length: got %g, want 5", v.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared: got %g, want 25", v.LengthSquared())
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	z := Zero3().Normalize()
	if z.X() != 0 || z.Y() != 0 || z.Z() != 0 {
		t.Errorf("Normalize of zero vector should stay zero, got (%g, %g, %g)", z.X(), z.Y(), z.Z())
	}
}

func TestInfiniteAABBExpandsToFirstPoint(t *testing.T) {
	box := InfiniteAABB()
	p := NewVector3(1, -2, 3)
	box = box.ExpandToInclude(p)

	if box.Min.X() != 1 || box.Min.Y() != -2 || box.Min.Z() != 3 {
		t.Errorf("Min after first expand: got (%g, %g, %g), want (1, -2, 3)", box.Min.X(), box.Min.Y(), box.Min.Z())
	}
	if box.Max.X() != 1 || box.Max.Y() != -2 || box.Max.Z() != 3 {
		t.Errorf("Max after first expand: got (%g, %g, %g), want (1, -2, 3)", box.Max.X(), box.Max.Y(), box.Max.Z())
	}
}

func TestAABBExpandToIncludeGrowsBounds(t *testing.T) {
	box := InfiniteAABB()
	box = box.ExpandToInclude(NewVector3(-1, -1, -1))
	box = box.ExpandToInclude(NewVector3(2, 0, 5))

	if box.Min.X() != -1 || box.Min.Y() != -1 || box.Min.Z() != -1 {
		t.Errorf("Min: got (%g, %g, %g), want (-1, -1, -1)", box.Min.X(), box.Min.Y(), box.Min.Z())
	}
	if box.Max.X() != 2 || box.Max.Y() != 0 || box.Max.Z() != 5 {
		t.Errorf("Max: got (%g, %g, %g), want (2, 0, 5)", box.Max.X(), box.Max.Y(), box.Max.Z())
	}
}

func TestAABBCenterAndExtent(t *testing.T) {
	box := AABB{Min: NewVector3(0, 0, 0), Max: NewVector3(4, 2, 0)}
	c := box.Center()
	if c.X() != 2 || c.Y() != 1 || c.Z() != 0 {
		t.Errorf("Center: got (%g, %g, %g), want (2, 1, 0)", c.X(), c.Y(), c.Z())
	}
	if box.LargestExtent() != 4 {
		t.Errorf("LargestExtent: got %g, want 4", box.LargestExtent())
	}
}

func TestAABBContains(t *testing.T) {
	box := AABB{Min: NewVector3(0, 0, 0), Max: NewVector3(1, 1, 1)}
	if !box.Contains(NewVector3(0.5, 0.5, 0.5)) {
		t.Error("Contains should be true for an interior point")
	}
	if !box.Contains(NewVector3(1, 1, 1)) {
		t.Error("Contains should be true on the boundary")
	}
	if box.Contains(NewVector3(2, 0, 0)) {
		t.Error("Contains should be false outside the box")
	}
}
