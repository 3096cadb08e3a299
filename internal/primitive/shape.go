// Package primitive implements the intersectable scene geometry: spheres
// and triangles, behind a common Shape capability.
package primitive

import (
	"github.com/df07/go-pathtracer/internal/bounds"
	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/vector"
)

// Shape is anything that can be intersected by a ray and bounded by an AABB.
type Shape interface {
	Hit(ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool)
	BoundingBox() bounds.AABB
}
