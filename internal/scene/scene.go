// Package scene assembles the primitive list, BVH and camera from a small
// configuration, the way the teacher's pkg/scene construction functions do,
// generalized to the probabilistic reflective/refractive/light material
// model instead of the teacher's BRDF/PDF materials.
package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/internal/bvh"
	"github.com/df07/go-pathtracer/internal/camera"
	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/primitive"
	"github.com/df07/go-pathtracer/internal/terrain"
	"github.com/df07/go-pathtracer/internal/vector"
)

// Config parameterizes scene construction: the triangle edge length comes
// straight from the CLI's -t/--tri, and seed drives both the terrain noise
// field and the terrain albedo jitter so a render is reproducible.
type Config struct {
	TriangleEdge float64
	Seed         uint64
	ImageHeight  int
	AspectRatio  float64
	Samples      int
}

// Scene bundles the camera and the shape the renderer intersects against.
type Scene struct {
	Camera *camera.Camera
	World  *bvh.BVH
}

// Build assembles the demonstration scene: a heightmap terrain ground plane
// plus a small cluster of reflective, refractive and emissive spheres, in
// the shape of the teacher's default_scene.go.
func Build(cfg Config) *Scene {
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))
	noise := terrain.NewOpenSimplex2S(cfg.Seed)

	var shapes []primitive.Shape

	ground := terrain.NewHeightmap(vector.New(-10, 0, -10), 20, 20, noise)
	shapes = append(shapes, ground.Triangles(cfg.TriangleEdge, rng)...)

	lambertianBlue := material.Reflective(vector.New(0.1, 0.2, 0.5), 1.0, 0.0)
	metalSilver := material.Reflective(vector.New(0.8, 0.8, 0.8), 1.0, 1.0)
	metalGold := material.Reflective(vector.New(0.8, 0.6, 0.2), 1.0, 0.7)
	glass := material.Refractive(vector.New(1, 1, 1), 1.0, 1.5)
	light := material.Light(vector.New(15.0, 14.0, 13.0), 1.0)

	shapes = append(shapes,
		primitive.NewSphere(vector.New(0, 1.0, -1), 0.5, lambertianBlue),
		primitive.NewSphere(vector.New(-1, 1.0, -1), 0.5, metalSilver),
		primitive.NewSphere(vector.New(1, 1.0, -1), 0.5, metalGold),
		primitive.NewSphere(vector.New(0.5, 0.75, -0.3), 0.25, glass),
		primitive.NewSphere(vector.New(0, 8, 5), 2.0, light),
	)

	world := bvh.Build(shapes, bvh.BinnedSAH)

	cam := camera.New(camera.Description{
		Position:     vector.New(0, 1.75, 2.5),
		LookAt:       vector.New(0, 1.0, -1),
		Up:           vector.New(0, 1, 0),
		FocusDist:    4.0,
		VerticalFOV:  0.698, // ~40 degrees
		DefocusAngle: 0.02,
		Samples:      cfg.Samples,
		AspectRatio:  cfg.AspectRatio,
		ImageHeight:  cfg.ImageHeight,
	})

	return &Scene{Camera: cam, World: world}
}
