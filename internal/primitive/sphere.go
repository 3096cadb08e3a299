package primitive

import (
	"math"

	"github.com/df07/go-pathtracer/internal/bounds"
	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/vector"
)

// Sphere is a center, radius and material.
type Sphere struct {
	Center   vector.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere constructs a sphere.
func NewSphere(center vector.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves |O + tD - C|^2 = r^2, treating a = ||D||^2 for generality even
// though D is unit and a == 1 in practice (spec §4.3).
func (s *Sphere) Hit(ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool) {
	oc := s.Center.Subtract(ray.Origin)
	d := ray.Direction.Vec()

	a := d.Dot(d)
	b := d.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - a*c
	if disc < 0 {
		return material.HitRecord{}, false
	}
	sqrtDisc := math.Sqrt(disc)

	root := (b - sqrtDisc) / a
	if !window.Contains(root) {
		root = (b + sqrtDisc) / a
		if !window.Contains(root) {
			return material.HitRecord{}, false
		}
	}

	hit := material.HitRecord{T: root, Point: ray.At(root), Material: s.Material}
	outward := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius).Normalize()
	hit.SetFaceNormal(ray, outward)
	return hit, true
}

// BoundingBox returns [C-r, C+r] per axis.
func (s *Sphere) BoundingBox() bounds.AABB {
	r := vector.New(s.Radius, s.Radius, s.Radius)
	return bounds.New(s.Center.Subtract(r), s.Center.Add(r))
}
