// Package bounds provides the axis-aligned bounding box used by primitives
// and the BVH for broad-phase ray intersection.
package bounds

import (
	"math"

	"github.com/df07/go-pathtracer/internal/vector"
)

// AABB is an axis-aligned bounding box, stored as one interval per axis.
type AABB struct {
	X, Y, Z vector.Interval[float64]
}

// New builds an AABB from min and max corners.
func New(min, max vector.Vec3) AABB {
	return AABB{
		X: vector.NewInterval(min.X, max.X),
		Y: vector.NewInterval(min.Y, max.Y),
		Z: vector.NewInterval(min.Z, max.Z),
	}
}

// FromPoints returns the smallest AABB containing all given points.
func FromPoints(points ...vector.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = vector.New(math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z))
		max = vector.New(math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z))
	}
	return New(min, max)
}

// Min returns the box's minimum corner.
func (b AABB) Min() vector.Vec3 {
	return vector.New(b.X.Min, b.Y.Min, b.Z.Min)
}

// Max returns the box's maximum corner.
func (b AABB) Max() vector.Vec3 {
	return vector.New(b.X.Max, b.Y.Max, b.Z.Max)
}

// Axis returns the interval for the given axis (0=X, 1=Y, 2=Z). It panics on
// an out-of-range axis, same as vector.Vec3.Axis.
func (b AABB) Axis(axis int) vector.Interval[float64] {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	case 2:
		return b.Z
	default:
		panic("bounds: axis out of range")
	}
}

// Hit tests whether ray intersects the box within the parameter window
// [window.Min, window.Max], using the slab method (spec §4.2).
func (b AABB) Hit(ray vector.Ray, window vector.Interval[float64]) bool {
	origin := ray.Origin
	dir := ray.Direction.Vec()

	for axis := 0; axis < 3; axis++ {
		slab := b.Axis(axis)
		var o, d float64
		switch axis {
		case 0:
			o, d = origin.X, dir.X
		case 1:
			o, d = origin.Y, dir.Y
		case 2:
			o, d = origin.Z, dir.Z
		}

		if math.Abs(d) < 1e-8 {
			if o < slab.Min || o > slab.Max {
				return false
			}
			continue
		}

		invD := 1.0 / d
		t1 := (slab.Min - o) * invD
		t2 := (slab.Max - o) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		window.Min = math.Max(window.Min, t1)
		window.Max = math.Min(window.Max, t2)
		if window.Empty() {
			return false
		}
	}

	return true
}

// Union returns the smallest AABB bounding both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		X: vector.Hull(b.X, other.X),
		Y: vector.Hull(b.Y, other.Y),
		Z: vector.Hull(b.Z, other.Z),
	}
}

// Centroid returns the box's center point, used by the BVH to bucket
// primitives during construction.
func (b AABB) Centroid() vector.Vec3 {
	return b.Min().Add(b.Max()).Multiply(0.5)
}

// Size returns the box's extent along each axis.
func (b AABB) Size() vector.Vec3 {
	return vector.New(b.X.Size(), b.Y.Size(), b.Z.Size())
}

// Degenerate reports whether the box has zero volume (any axis collapsed to
// a point), per spec's "may be empty/degenerate (zero volume) by
// construction" invariant.
func (b AABB) Degenerate() bool {
	s := b.Size()
	return s.X == 0 || s.Y == 0 || s.Z == 0
}

// SurfaceArea returns the box's total surface area, used by SAH construction,
// or 0 if the box is degenerate.
func (b AABB) SurfaceArea() float64 {
	if b.Degenerate() {
		return 0
	}
	s := b.Size()
	return 2.0 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (b AABB) LongestAxis() int {
	s := b.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// Valid reports whether min <= max on every axis.
func (b AABB) Valid() bool {
	return !b.X.Empty() && !b.Y.Empty() && !b.Z.Empty()
}

// Pad returns a box expanded by amount in every direction, which gives an
// axis-degenerate box (e.g. a flat triangle's) non-zero thickness on the
// slab test.
func (b AABB) Pad(amount float64) AABB {
	return AABB{
		X: vector.NewInterval(b.X.Min-amount, b.X.Max+amount),
		Y: vector.NewInterval(b.Y.Min-amount, b.Y.Max+amount),
		Z: vector.NewInterval(b.Z.Min-amount, b.Z.Max+amount),
	}
}
