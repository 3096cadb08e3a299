// Package camera implements the pinhole-with-defocus-disk camera model and
// primary ray generation (spec §4.6).
package camera

import (
	"math"

	"github.com/df07/go-pathtracer/internal/vector"
)

// Description is the external, user-facing camera configuration — the
// scene construction interface's camera shape (spec §6).
type Description struct {
	Position     vector.Vec3
	LookAt       vector.Vec3
	Up           vector.Vec3
	FocusDist    float64
	VerticalFOV  float64 // radians
	DefocusAngle float64 // radians; <= 0 disables defocus blur
	Samples      int
	AspectRatio  float64
	ImageHeight  int
}

// Camera holds the precomputed frame and viewport geometry derived from a
// Description, so primary ray generation is a handful of vector ops.
type Camera struct {
	Position    vector.Vec3
	ImageWidth  int
	ImageHeight int
	Samples     int

	pixel00Center vector.Vec3
	pixelDeltaU   vector.Vec3
	pixelDeltaV   vector.Vec3

	defocusDiskU vector.Vec3
	defocusDiskV vector.Vec3
	defocusAngle float64

	u, v, w vector.Unit
}

// New precomputes the camera frame and viewport from a Description, per the
// construction formulas of spec §4.6.
func New(d Description) *Camera {
	imageWidth := int(float64(d.ImageHeight) * d.AspectRatio)
	if imageWidth < 1 {
		imageWidth = 1
	}

	w := d.Position.Subtract(d.LookAt).Normalize()
	u := d.Up.Cross(w.Vec()).Normalize()
	v := w.Cross(u.Vec()).Normalize()

	viewportH := 2 * math.Tan(d.VerticalFOV/2)
	viewportW := viewportH * d.AspectRatio

	viewportU := u.Multiply(d.FocusDist * viewportW)
	viewportV := v.Negate().Multiply(d.FocusDist * viewportH)

	pixelDeltaU := viewportU.Multiply(1 / float64(imageWidth))
	pixelDeltaV := viewportV.Multiply(1 / float64(d.ImageHeight))

	upperLeft := d.Position.
		Subtract(w.Multiply(d.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := d.FocusDist * math.Tan(d.DefocusAngle/2)

	return &Camera{
		Position:      d.Position,
		ImageWidth:    imageWidth,
		ImageHeight:   d.ImageHeight,
		Samples:       d.Samples,
		pixel00Center: pixel00,
		pixelDeltaU:   pixelDeltaU,
		pixelDeltaV:   pixelDeltaV,
		defocusDiskU:  u.Multiply(defocusRadius),
		defocusDiskV:  v.Multiply(defocusRadius),
		defocusAngle:  d.DefocusAngle,
		u:             u,
		v:             v,
		w:             w,
	}
}

// Ray generates a primary ray through pixel (x, y), jittering within the
// pixel footprint and, when defocus is enabled, sampling the origin from the
// defocus disk (spec §4.6 primary-ray generation).
func (c *Camera) Ray(x, y int, rng *vector.RNG) vector.Ray {
	dx := rng.Float() - 0.5
	dy := rng.Float() - 0.5

	target := c.pixel00Center.
		Add(c.pixelDeltaU.Multiply(float64(x) + dx)).
		Add(c.pixelDeltaV.Multiply(float64(y) + dy))

	origin := c.Position
	if c.defocusAngle > 0 {
		p := vector.RandomInUnitDisk(rng)
		origin = c.Position.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return vector.NewRay(origin, target.Subtract(origin))
}
