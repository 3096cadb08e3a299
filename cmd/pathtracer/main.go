package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"time"

	"github.com/df07/go-pathtracer/internal/config"
	"github.com/df07/go-pathtracer/internal/render"
	"github.com/df07/go-pathtracer/internal/rtlog"
	"github.com/df07/go-pathtracer/internal/scene"
	"github.com/df07/go-pathtracer/internal/vector"
)

const (
	imageHeight = 225
	aspectRatio = 16.0 / 9.0
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathtracer:", err)
		os.Exit(1)
	}

	logger := rtlog.NewStdLogger(os.Stdout)
	logger.Printf("Starting pathtracer (seed=%d, spp=%d, tri=%g)...\n", cfg.Seed, cfg.SamplesPerPx, cfg.TriangleEdge)

	s := scene.Build(scene.Config{
		TriangleEdge: cfg.TriangleEdge,
		Seed:         cfg.Seed,
		ImageHeight:  imageHeight,
		AspectRatio:  aspectRatio,
		Samples:      cfg.SamplesPerPx,
	})

	renderer := render.New(s.Camera, s.World)

	start := time.Now()
	pixels := renderer.Run(cfg.Seed, os.Stdout)
	logger.Printf("Render completed in %s\n", rtlog.Elapsed(time.Since(start)))

	out, err := os.Create("image.ppm")
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: could not create image.ppm: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := render.WritePPM(out, s.Camera.ImageWidth, s.Camera.ImageHeight, pixels); err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: could not write image.ppm: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Wrote to image.ppm\n")

	if cfg.WritePNG {
		if err := writePNGPreview(s.Camera.ImageWidth, s.Camera.ImageHeight, pixels); err != nil {
			fmt.Fprintf(os.Stderr, "pathtracer: could not write image.png: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("Wrote to image.png\n")
	}
}

// writePNGPreview reuses the teacher's gamma-then-clamp-then-color.RGBA
// pixel conversion (pkg/renderer's vec3ToColor pattern) for an additional
// debug preview alongside the required PPM output.
func writePNGPreview(width, height int, pixels []vector.Vec3) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, c := range pixels {
		img.Set(i%width, i/width, vec3ToColor(c))
	}

	f, err := os.Create("image.png")
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

// vec3ToColor gamma-encodes and clamps a linear-space color the same way
// PPM serialization does, then converts it to a color.RGBA.
func vec3ToColor(c vector.Vec3) color.RGBA {
	encode := func(v float64) uint8 {
		g := math.Pow(math.Abs(v), 1.0/2.2)
		if g > 0.999 {
			g = 0.999
		}
		return uint8(256 * g)
	}
	return color.RGBA{R: encode(c.X), G: encode(c.Y), B: encode(c.Z), A: 255}
}
