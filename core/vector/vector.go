// Package vector provides a 3D vector implementation used throughout the
// gravitational simulation core.
package vector

import (
	"math"
)

// Vector3 represents a three-dimensional vector.
type Vector3 interface {
	// Components
	X() float64
	Y() float64
	Z() float64
	// At returns the i-th component (0=x, 1=y, 2=z).
	At(i int) float64

	// Vector operations
	Add(v Vector3) Vector3
	Sub(v Vector3) Vector3
	Mul(v Vector3) Vector3
	Div(v Vector3) Vector3
	Scale(s float64) Vector3
	Dot(v Vector3) float64
	Cross(v Vector3) Vector3
	Length() float64
	LengthSquared() float64
	Normalize() Vector3
	Distance(v Vector3) float64
	DistanceSquared(v Vector3) float64

	// Conversion
	ToArray() [3]float64
}

// Vec3 implements Vector3.
type Vec3 struct {
	x, y, z float64
}

// NewVector3 creates a new three-dimensional vector.
func NewVector3(x, y, z float64) Vector3 {
	return &Vec3{x, y, z}
}

// Zero3 returns the null three-dimensional vector.
func Zero3() Vector3 {
	return &Vec3{0, 0, 0}
}

// X returns the x component of the vector.
func (v *Vec3) X() float64 {
	return v.x
}

// Y returns the y component of the vector.
func (v *Vec3) Y() float64 {
	return v.y
}

// Z returns the z component of the vector.
func (v *Vec3) Z() float64 {
	return v.z
}

// At returns the i-th component (0=x, 1=y, 2=z). It panics for any other index.
func (v *Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.x
	case 1:
		return v.y
	case 2:
		return v.z
	default:
		panic("vector: index out of range")
	}
}

// Add sums two vectors.
func (v *Vec3) Add(other Vector3) Vector3 {
	return &Vec3{
		v.x + other.X(),
		v.y + other.Y(),
		v.z + other.Z(),
	}
}

// Sub subtracts two vectors.
func (v *Vec3) Sub(other Vector3) Vector3 {
	return &Vec3{
		v.x - other.X(),
		v.y - other.Y(),
		v.z - other.Z(),
	}
}

// Mul multiplies two vectors component-wise.
func (v *Vec3) Mul(other Vector3) Vector3 {
	return &Vec3{
		v.x * other.X(),
		v.y * other.Y(),
		v.z * other.Z(),
	}
}

// Div divides two vectors component-wise. Division by a zero component
// propagates as IEEE-754 Inf/NaN, as any upstream non-finite check expects.
func (v *Vec3) Div(other Vector3) Vector3 {
	return &Vec3{
		v.x / other.X(),
		v.y / other.Y(),
		v.z / other.Z(),
	}
}

// Scale multiplies a vector by a scalar.
func (v *Vec3) Scale(s float64) Vector3 {
	return &Vec3{
		v.x * s,
		v.y * s,
		v.z * s,
	}
}

// Dot computes the scalar (dot) product of two vectors.
func (v *Vec3) Dot(other Vector3) float64 {
	return v.x*other.X() + v.y*other.Y() + v.z*other.Z()
}

// Cross computes the cross product of two vectors.
func (v *Vec3) Cross(other Vector3) Vector3 {
	return &Vec3{
		v.y*other.Z() - v.z*other.Y(),
		v.z*other.X() - v.x*other.Z(),
		v.x*other.Y() - v.y*other.X(),
	}
}

// LengthSquared computes the squared length of the vector.
func (v *Vec3) LengthSquared() float64 {
	return v.x*v.x + v.y*v.y + v.z*v.z
}

// Length computes the length of the vector.
func (v *Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector pointing in the same direction. The zero
// vector normalizes to itself.
func (v *Vec3) Normalize() Vector3 {
	length := v.Length()
	if length < 1e-10 {
		return &Vec3{0, 0, 0}
	}
	return v.Scale(1.0 / length)
}

// DistanceSquared computes the squared distance between two vectors.
func (v *Vec3) DistanceSquared(other Vector3) float64 {
	dx := v.x - other.X()
	dy := v.y - other.Y()
	dz := v.z - other.Z()
	return dx*dx + dy*dy + dz*dz
}

// Distance computes the distance between two vectors.
func (v *Vec3) Distance(other Vector3) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

// ToArray converts the vector to a plain array.
func (v *Vec3) ToArray() [3]float64 {
	return [3]float64{v.x, v.y, v.z}
}

// AABB is an axis-aligned bounding box: the pair (Min, Max) of its two
// opposite corners.
type AABB struct {
	Min Vector3
	Max Vector3
}

// InfiniteAABB returns the "infinity" sentinel AABB: Min is +Inf in every
// component, Max is -Inf in every component, so that expanding it
// point-wise with any real point yields that point's own bounds.
//
// Grounded in solarsim's axis_aligned_bounding_box::infinity(), which
// swaps the usual numeric_limits extremes for exactly this reason.
func InfiniteAABB() AABB {
	return AABB{
		Min: &Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: &Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// ExpandToInclude grows the AABB, if necessary, so that it contains p.
func (b AABB) ExpandToInclude(p Vector3) AABB {
	return AABB{
		Min: NewVector3(
			math.Min(b.Min.X(), p.X()),
			math.Min(b.Min.Y(), p.Y()),
			math.Min(b.Min.Z(), p.Z()),
		),
		Max: NewVector3(
			math.Max(b.Max.X(), p.X()),
			math.Max(b.Max.Y(), p.Y()),
			math.Max(b.Max.Z(), p.Z()),
		),
	}
}

// Center returns the midpoint between Min and Max.
func (b AABB) Center() Vector3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extent returns Max - Min.
func (b AABB) Extent() Vector3 {
	return b.Max.Sub(b.Min)
}

// LargestExtent returns the greatest of the three extent components, used
// to derive a cubic root cell from an arbitrary bounding box.
func (b AABB) LargestExtent() float64 {
	e := b.Extent()
	return math.Max(e.X(), math.Max(e.Y(), e.Z()))
}

// Contains reports whether p lies within the box, inclusive of the
// boundary, expanded by a small tolerance to absorb floating-point
// reassociation at cell edges.
func (b AABB) Contains(p Vector3) bool {
	const tolerance = 1e-9
	return p.X() >= b.Min.X()-tolerance && p.X() <= b.Max.X()+tolerance &&
		p.Y() >= b.Min.Y()-tolerance && p.Y() <= b.Max.Y()+tolerance &&
		p.Z() >= b.Min.Z()-tolerance && p.Z() <= b.Max.Z()+tolerance
}
