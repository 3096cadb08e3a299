package material

import "github.com/df07/go-pathtracer/internal/vector"

// Bounce is the outcome of a material interaction at a hit: either a next
// ray with an attenuation to apply, or pure absorption (Ok == false).
type Bounce struct {
	Next        vector.Ray
	Attenuation Color
	Ok          bool
}

// Scatter draws the material's probabilistic reflective/refractive/absorbing
// branch for a hit, per the bounce rule: U selects reflective vs refractive
// vs absorption; within the reflective branch, V selects specular vs diffuse.
func (m Material) Scatter(rayIn vector.Ray, hit HitRecord, rng *vector.RNG) Bounce {
	// hit.Normal is already oriented outward from the side the ray struck by
	// SetFaceNormal; no further flip needed here.
	normal := hit.Normal

	u := rng.Float()

	switch {
	case u <= m.Reflectance:
		v := rng.Float()
		var dir vector.Unit
		if v <= m.Shininess {
			dir = vector.Reflect(rayIn.Direction.Vec(), normal)
		} else {
			dir = vector.CosineHemisphere(normal, rng)
		}
		if dir.Degenerate() {
			dir = normal
		}
		return Bounce{Next: vector.NewRay(hit.Point, dir.Vec()), Attenuation: m.Albedo, Ok: true}

	case u <= m.Reflectance+m.Refraction:
		eta, etaPrime := 1.0, m.RefractionIndex
		if !hit.FrontFace {
			eta, etaPrime = etaPrime, eta
		}
		dir := vector.Refract(rayIn.Direction.Vec(), normal, eta, etaPrime, rng)
		return Bounce{Next: vector.NewRay(hit.Point, dir.Vec()), Attenuation: vector.New(1, 1, 1), Ok: true}

	default:
		return Bounce{}
	}
}
