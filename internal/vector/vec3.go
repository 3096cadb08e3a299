// Package vector provides the tagged 3-vector, ray, interval and RNG
// vocabulary shared by the BVH, materials and camera.
package vector

import "math"

// Vec3 is an unconstrained 3-tuple of float64 components. It is used both
// for positions/directions and for linear RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// New creates a new Vec3.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns the component-wise (Hadamard) product of two vectors.
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns the negation of the vector.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the Unit vector in the same direction. The zero vector
// normalizes to the zero-length degenerate Unit{} (callers that may hit this
// should check Degenerate first).
func (v Vec3) Normalize() Unit {
	length := v.Length()
	if length == 0 {
		return Unit{v: Vec3{}}
	}
	return Unit{v: Vec3{v.X / length, v.Y / length, v.Z / length}}
}

// Degenerate reports whether every component is within 1e-4 of zero. Used to
// replace near-zero scatter directions with the surface normal.
func (v Vec3) Degenerate() bool {
	const eps = 1e-4
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Clamp returns a vector with each component clamped to [min, max].
func (v Vec3) Clamp(min, max float64) Vec3 {
	clamp := func(x float64) float64 {
		if x < min {
			return min
		}
		if x > max {
			return max
		}
		return x
	}
	return Vec3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}

// GammaCorrect raises each component to the power 1/gamma.
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(math.Abs(v.X), invGamma),
		Y: math.Pow(math.Abs(v.Y), invGamma),
		Z: math.Pow(math.Abs(v.Z), invGamma),
	}
}

// Axis returns the component along the given axis index (0=X, 1=Y, 2=Z). It
// panics for any other index — an out-of-range axis is a programmer error,
// not a recoverable condition.
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("vector: axis index out of range [0,3)")
	}
}
