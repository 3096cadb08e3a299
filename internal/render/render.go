// Package render implements the path integrator, pixel buffer and PPM
// serialization (spec §4.7).
package render

import (
	"math"

	"github.com/df07/go-pathtracer/internal/camera"
	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/vector"
)

// RayDepth is the maximum number of bounces traced per path.
const RayDepth = 16

// PixelsPerTile is the chunk size handed out by the atomic work scheduler.
const PixelsPerTile = 32

// Background is the fixed miss color. The source carried two gradient
// variants (light-gray/gray and white/light-red) across earlier snapshots;
// this is the most recent design and the one the test suite pins.
var Background = vector.New(0.01, 0.01, 0.01)

// World is anything the renderer can shoot rays into — a BVH, or a bare
// primitive for tiny scenes.
type World interface {
	Hit(ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool)
}

// Renderer holds everything needed to compute a pixel's color: the image
// dimensions, the camera, and the world to intersect against.
type Renderer struct {
	Camera *camera.Camera
	World  World
}

// New builds a Renderer over the given camera and world.
func New(cam *camera.Camera, world World) *Renderer {
	return &Renderer{Camera: cam, World: world}
}

// PixelColor averages Camera.Samples independent path samples through pixel
// (x, y).
func (r *Renderer) PixelColor(x, y int, rng *vector.RNG) vector.Vec3 {
	n := r.Camera.Samples
	if n <= 0 {
		return vector.Vec3{}
	}

	sum := vector.Vec3{}
	for s := 0; s < n; s++ {
		ray := r.Camera.Ray(x, y, rng)
		sum = sum.Add(r.rayColor(ray, RayDepth, rng))
	}
	return sum.Multiply(1 / float64(n))
}

// rayColor recursively evaluates the rendering equation along one path,
// per spec §4.7.
func (r *Renderer) rayColor(ray vector.Ray, depth int, rng *vector.RNG) vector.Vec3 {
	if depth == 0 {
		return vector.Vec3{}
	}

	hit, ok := r.World.Hit(ray, vector.NewInterval(0.001, math.Inf(1)))
	if !ok {
		return Background
	}

	emitted := hit.Material.Emitted()

	bounce := hit.Material.Scatter(ray, hit, rng)
	if !bounce.Ok {
		return emitted
	}

	return bounce.Attenuation.MultiplyVec(r.rayColor(bounce.Next, depth-1, rng)).Add(emitted)
}
