package terrain

import (
	"math/rand"

	"github.com/df07/go-pathtracer/internal/material"
	"github.com/df07/go-pathtracer/internal/primitive"
	"github.com/df07/go-pathtracer/internal/vector"
)

// groundLow and groundHigh are the terrain color gradient endpoints, blended
// by normalized height (original_source rt/geom/heightmap.cpp).
var (
	groundLow  = vector.New(0.0, 1.0, 0.0)
	groundHigh = vector.New(0.859, 0.580, 0.271)
)

// Heightmap is a grid of vertex heights sampled from a Noise field, in
// heightmap-space (independent of world coordinates until triangulated).
type Heightmap struct {
	corner  vector.Vec3
	length  int // z extent, number of grid rows
	width   int // x extent, number of grid columns
	heights []float64
}

// NewHeightmap samples a length*width grid of vertex heights from n,
// anchored at corner (original_source rt/geom/heightmap.hpp).
func NewHeightmap(corner vector.Vec3, length, width int, n Noise) *Heightmap {
	h := &Heightmap{
		corner:  corner,
		length:  length,
		width:   width,
		heights: make([]float64, length*width),
	}
	for z := 0; z < length; z++ {
		for x := 0; x < width; x++ {
			h.heights[z*width+x] = corner.Y + n.Eval(int(corner.X)+x, int(corner.Z)+z)
		}
	}
	return h
}

// Triangles converts the grid into a mesh: every unit grid square becomes
// two triangles, each scaled in world space by edge (the CLI's -t/--tri),
// and colored by a height-based gradient with per-triangle albedo jitter
// (original_source rt/geom/heightmap.cpp construct_map).
func (h *Heightmap) Triangles(edge float64, rng *rand.Rand) []primitive.Shape {
	var tris []primitive.Shape

	vertex := 0
	for z := 0; z < h.length-1; z++ {
		for x := 0; x < h.width-1; x++ {
			leftX := edge*float64(x) + h.corner.X
			rightX := edge*float64(x+1) + h.corner.X
			upZ := edge*float64(z) + h.corner.Z
			lowZ := edge*float64(z+1) + h.corner.Z

			upLeft := vector.New(leftX, h.heights[vertex], upZ)
			upRight := vector.New(rightX, h.heights[vertex+1], upZ)
			lowLeft := vector.New(leftX, h.heights[vertex+h.width], lowZ)
			lowRight := vector.New(rightX, h.heights[vertex+h.width+1], lowZ)

			color := terrainColor(upLeft.Y)
			mat1 := material.Reflective(color.Multiply(0.7+0.3*rng.Float64()), 1.0, 0.0)
			mat2 := material.Reflective(color.Multiply(0.7+0.3*rng.Float64()), 1.0, 0.0)

			tris = append(tris,
				primitive.NewTriangle(upLeft, upRight, lowLeft, mat1),
				primitive.NewTriangle(upRight, lowLeft, lowRight, mat2),
			)
			vertex++
		}
		vertex++
	}

	return tris
}

// terrainColor blends from green (low ground) to tan (high ground) by
// normalized height a, clamped to [0,1].
func terrainColor(a float64) vector.Vec3 {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return groundLow.Multiply(1 - a).Add(groundHigh.Multiply(a))
}
