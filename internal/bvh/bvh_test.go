package bvh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/primitive"
	"github.com/df07/go-pathtracer/internal/vector"
)

func randomSpheres(n int, seed int64) []primitive.Shape {
	rng := rand.New(rand.NewSource(seed))
	mat := material.Reflective(vector.New(1, 1, 1), 1.0, 0.0)
	shapes := make([]primitive.Shape, n)
	for i := range shapes {
		center := vector.New(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		shapes[i] = primitive.NewSphere(center, 0.3, mat)
	}
	return shapes
}

// bruteForceHit linearly scans every shape, used as an oracle to check the
// BVH's traversal returns the same closest hit.
func bruteForceHit(shapes []primitive.Shape, ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool) {
	var best material.HitRecord
	found := false
	w := window
	for _, s := range shapes {
		if hit, ok := s.Hit(ray, w); ok {
			best = hit
			found = true
			w.Max = hit.T
		}
	}
	return best, found
}

func testAgainstBruteForce(t *testing.T, strategy Strategy) {
	shapes := randomSpheres(200, 42)
	tree := Build(shapes, strategy)

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		origin := vector.New(rng.Float64()*30-15, rng.Float64()*30-15, rng.Float64()*30-15)
		dir := vector.New(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if dir.LengthSquared() < 1e-9 {
			continue
		}
		ray := vector.NewRay(origin, dir)
		window := vector.NewInterval(0.001, math.Inf(1))

		want, wantOk := bruteForceHit(shapes, ray, window)
		got, gotOk := tree.Hit(ray, window)

		if wantOk != gotOk {
			t.Fatalf("case %d: brute force hit=%v, bvh hit=%v", i, wantOk, gotOk)
		}
		if wantOk && math.Abs(want.T-got.T) > 1e-6 {
			t.Fatalf("case %d: brute force t=%v, bvh t=%v", i, want.T, got.T)
		}
	}
}

func TestMedianSplitMatchesBruteForce(t *testing.T) {
	testAgainstBruteForce(t, MedianSplit)
}

func TestBinnedSAHMatchesBruteForce(t *testing.T) {
	testAgainstBruteForce(t, BinnedSAH)
}

func TestBuildEmptyShapes(t *testing.T) {
	tree := Build(nil, MedianSplit)
	if tree.Root != nil {
		t.Error("expected nil root for empty shape list")
	}
	if _, ok := tree.Hit(vector.NewRay(vector.Vec3{}, vector.New(0, 0, -1)), vector.NewInterval(0.0, 100.0)); ok {
		t.Error("expected empty BVH to never hit")
	}
}

func TestBoundingBoxEnclosesAllShapes(t *testing.T) {
	shapes := randomSpheres(50, 7)
	tree := Build(shapes, MedianSplit)
	root := tree.BoundingBox()

	for _, s := range shapes {
		b := s.BoundingBox()
		if b.Min().X < root.Min().X-1e-9 || b.Max().X > root.Max().X+1e-9 ||
			b.Min().Y < root.Min().Y-1e-9 || b.Max().Y > root.Max().Y+1e-9 ||
			b.Min().Z < root.Min().Z-1e-9 || b.Max().Z > root.Max().Z+1e-9 {
			t.Fatalf("shape bounding box %v not enclosed by root %v", b, root)
		}
	}
}
