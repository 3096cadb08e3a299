package render

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/internal/camera"
	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/primitive"
	"github.com/df07/go-pathtracer/internal/vector"
)

// emptyWorld never hits anything, so every ray falls through to Background.
type emptyWorld struct{}

func (emptyWorld) Hit(ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool) {
	return material.HitRecord{}, false
}

func testCamera(samples int) *camera.Camera {
	return camera.New(camera.Description{
		Position:     vector.New(0, 0, 5),
		LookAt:       vector.New(0, 0, 0),
		Up:           vector.New(0, 1, 0),
		FocusDist:    5,
		VerticalFOV:  math.Pi / 2,
		DefocusAngle: 0,
		Samples:      samples,
		AspectRatio:  1,
		ImageHeight:  10,
	})
}

func TestRayColorEmptySceneReturnsBackground(t *testing.T) {
	r := New(testCamera(1), emptyWorld{})
	ray := vector.NewRay(vector.New(0, 0, 0), vector.New(0, 0, -1))

	got := r.rayColor(ray, RayDepth, vector.NewRNG(1))
	if got != Background {
		t.Errorf("rayColor over empty world = %v, want background %v", got, Background)
	}
}

func TestRayColorDepthZeroReturnsBlackNotEmitted(t *testing.T) {
	light := material.Light(vector.New(1, 1, 1), 2.0)
	world := primitive.NewSphere(vector.New(0, 0, -5), 1.0, light)
	r := New(testCamera(1), singleShape{world})
	ray := vector.NewRay(vector.New(0, 0, 0), vector.New(0, 0, -1))

	got := r.rayColor(ray, 0, vector.NewRNG(1))
	if got != (vector.Vec3{}) {
		t.Errorf("rayColor at depth 0 = %v, want zero vector", got)
	}
}

func TestRayColorHitsLightReturnsEmitted(t *testing.T) {
	light := material.Light(vector.New(3, 2, 1), 1.0)
	world := primitive.NewSphere(vector.New(0, 0, -5), 1.0, light)
	r := New(testCamera(1), singleShape{world})
	ray := vector.NewRay(vector.New(0, 0, 0), vector.New(0, 0, -1))

	got := r.rayColor(ray, RayDepth, vector.NewRNG(1))
	if got != (vector.New(3, 2, 1)) {
		t.Errorf("rayColor hitting a pure light = %v, want (3,2,1)", got)
	}
}

func TestPixelColorAveragesSamples(t *testing.T) {
	light := material.Light(vector.New(1, 1, 1), 1.0)
	world := primitive.NewSphere(vector.New(0, 0, -5), 100.0, light)
	r := New(testCamera(8), singleShape{world})

	got := r.PixelColor(5, 5, vector.NewRNG(7))
	if got != (vector.New(1, 1, 1)) {
		t.Errorf("PixelColor over a light filling the frame = %v, want (1,1,1)", got)
	}
}

func TestPixelColorZeroSamplesIsBlack(t *testing.T) {
	// num_samples=0 traces no paths at all, so the pixel is pure black, not
	// the miss background color.
	r := New(testCamera(0), emptyWorld{})
	got := r.PixelColor(0, 0, vector.NewRNG(1))
	if got != (vector.Vec3{}) {
		t.Errorf("PixelColor with Samples<=0 = %v, want zero vector", got)
	}
}

func TestPixelColorNegativeSamplesIsBlack(t *testing.T) {
	r := New(testCamera(-3), emptyWorld{})
	got := r.PixelColor(0, 0, vector.NewRNG(1))
	if got != (vector.Vec3{}) {
		t.Errorf("PixelColor with negative Samples = %v, want zero vector", got)
	}
}

// singleShape adapts a lone primitive.Shape to the World interface.
type singleShape struct {
	s primitive.Shape
}

func (w singleShape) Hit(ray vector.Ray, window vector.Interval[float64]) (material.HitRecord, bool) {
	return w.s.Hit(ray, window)
}
