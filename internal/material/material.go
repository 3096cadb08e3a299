// Package material implements the tagged material model and the
// scatter/reflect/refract bounce decision, along with HitRecord — owned here
// rather than by primitive so primitive can depend on material without a
// cycle.
package material

import "github.com/df07/go-pathtracer/internal/vector"

// Color is an RGB triple in linear space, reusing Vec3's arithmetic.
type Color = vector.Vec3

// Material is a tagged bounce model: reflective, refractive and emissive
// behavior all live on one struct, selected probabilistically at each hit
// (see Bounce). reflectance+refraction is clamped to 1 at construction time;
// the remainder is absorption probability.
type Material struct {
	Albedo          Color
	Emittance       float64
	Reflectance     float64
	Shininess       float64
	Refraction      float64
	RefractionIndex float64
}

// Reflective builds a material that scatters with probability reflectance,
// specularly with probability shininess within that branch.
func Reflective(albedo Color, reflectance, shininess float64) Material {
	return clamp(Material{Albedo: albedo, Reflectance: reflectance, Shininess: shininess})
}

// Refractive builds a dielectric material that refracts with probability
// refraction at the given index of refraction.
func Refractive(albedo Color, refraction, refractionIndex float64) Material {
	return clamp(Material{Albedo: albedo, Refraction: refraction, RefractionIndex: refractionIndex})
}

// Light builds a pure emitter: reflectance and refraction are both zero, so
// every hit absorbs and returns only emitted radiance.
func Light(color Color, emittance float64) Material {
	return Material{Albedo: color, Emittance: emittance}
}

// clamp enforces reflectance+refraction <= 1, scaling both down
// proportionally if the caller supplied more.
func clamp(m Material) Material {
	total := m.Reflectance + m.Refraction
	if total > 1 {
		m.Reflectance /= total
		m.Refraction /= total
	}
	return m
}

// Emitted returns the radiance a hit on this material emits, independent of
// any scatter decision.
func (m Material) Emitted() Color {
	return m.Albedo.Multiply(m.Emittance)
}

// HitRecord describes one ray-primitive intersection.
type HitRecord struct {
	Point     vector.Vec3
	Normal    vector.Unit
	T         float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal records whether the ray approached from the outward side and
// stores the normal facing the side the ray struck: the outward normal for a
// front-face hit, its negation for a back-face hit.
func (h *HitRecord) SetFaceNormal(ray vector.Ray, outwardNormal vector.Unit) {
	h.FrontFace = ray.Direction.Dot(outwardNormal.Vec()) <= 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
