package primitive

import (
	"math"

	"github.com/df07/go-pathtracer/internal/bounds"
	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/vector"
)

// triangleEpsilon tolerates floating-point slack at the edges of the
// barycentric window, per spec §4.3.
const triangleEpsilon = 1e-6

// Triangle is three vertices and a material. It is double-sided: the
// Möller-Trumbore test accepts hits from either face, and SetFaceNormal
// resolves which side was struck.
type Triangle struct {
	A, B, C  vector.Vec3
	Material material.Material
	bbox     bounds.AABB
}

// NewTriangle constructs a triangle, precomputing its bounding box.
func NewTriangle(a, b, c vector.Vec3, mat material.Material) *Triangle {
	return &Triangle{A: a, B: b, C: c, Material: mat, bbox: bounds.FromPoints(a, b, c)}
}

// Hit implements Möller-Trumbore with a double-sided determinant test and
// epsilon-widened barycentric/window bounds (spec §4.3).
func (tr *Triangle) Hit(ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool) {
	ab := tr.B.Subtract(tr.A)
	ac := tr.C.Subtract(tr.A)
	d := ray.Direction.Vec()

	p := d.Cross(ac)
	det := ab.Dot(p)
	if math.Abs(det) < 1e-6 {
		return material.HitRecord{}, false
	}
	inv := 1.0 / det

	r := ray.Origin.Subtract(tr.A)
	u := inv * r.Dot(p)
	if u < -triangleEpsilon || u > 1+triangleEpsilon {
		return material.HitRecord{}, false
	}

	q := r.Cross(ab)
	v := inv * d.Dot(q)
	if v < -triangleEpsilon || u+v > 1+triangleEpsilon {
		return material.HitRecord{}, false
	}

	t := inv * ac.Dot(q)
	if !windowContains(window, t, triangleEpsilon) {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{T: t, Point: ray.At(t), Material: tr.Material}
	outward := ab.Cross(ac).Normalize()
	hit.SetFaceNormal(ray, outward)
	return hit, true
}

func windowContains(w vector.Interval[float64], t, eps float64) bool {
	return t >= w.Min-eps && t <= w.Max+eps
}

// BoundingBox returns the precomputed AABB of the three vertices.
func (tr *Triangle) BoundingBox() bounds.AABB {
	return tr.bbox
}
