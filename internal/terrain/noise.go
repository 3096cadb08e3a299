// Package terrain supplements the core with the out-of-core heightmap
// collaborator: a noise function and the grid-to-triangle-mesh conversion
// consumed through the core's Noise and primitive.Shape interfaces.
package terrain

import "math"

// Noise evaluates a pure height function over integer heightmap-space
// coordinates, returning a value in [-1, 1] (original_source
// terrain/noise/noise.hpp).
type Noise interface {
	Eval(x, z int) float64
}

// simplexGrad lists the 8 unit gradient directions used by the 2D
// OpenSimplex2S lattice.
var simplexGrad = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{0.7071, 0.7071}, {-0.7071, 0.7071}, {0.7071, -0.7071}, {-0.7071, -0.7071},
}

// OpenSimplex2S is a seeded gradient-noise implementation in the style of
// OpenSimplex2S, skewed onto a simplex lattice rather than sampled on an
// axis-aligned grid to avoid directional artifacts.
type OpenSimplex2S struct {
	seed uint64
}

// NewOpenSimplex2S builds a noise source from a 64-bit seed.
func NewOpenSimplex2S(seed uint64) *OpenSimplex2S {
	return &OpenSimplex2S{seed: seed}
}

const (
	stretch2D = -0.211324865405187 // (1/sqrt(3)-1)/2
	squish2D  = 0.366025403784439  // (sqrt(3)-1)/2
)

// Eval samples the noise field at integer heightmap coordinates, scaling
// down so adjacent integer samples see meaningfully varying terrain.
func (n *OpenSimplex2S) Eval(x, z int) float64 {
	return n.eval2D(float64(x)*0.15, float64(z)*0.15)
}

func (n *OpenSimplex2S) eval2D(x, z float64) float64 {
	stretchOffset := (x + z) * stretch2D
	xs := x + stretchOffset
	zs := z + stretchOffset

	xsb := math.Floor(xs)
	zsb := math.Floor(zs)

	squishOffset := (xsb + zsb) * squish2D
	xb := xsb + squishOffset
	zb := zsb + squishOffset

	xins := xs - xsb
	zins := zs - zsb

	value := 0.0
	value += n.contribute(xb, zb, x-xb, z-zb)
	value += n.contribute(xb+1+squish2D, zb+squish2D, x-xb-1-squish2D, z-zb-squish2D)
	value += n.contribute(xb+squish2D, zb+1+squish2D, x-xb-squish2D, z-zb-1-squish2D)

	if xins+zins > 1 {
		value += n.contribute(xb+1+2*squish2D, zb+1+2*squish2D, x-xb-1-2*squish2D, z-zb-1-2*squish2D)
	} else {
		value += n.contribute(xb+2*squish2D, zb+2*squish2D, x-xb-2*squish2D, z-zb-2*squish2D)
	}

	return clampUnit(value * 3.5)
}

func (n *OpenSimplex2S) contribute(xsb, zsb, dx, dz float64) float64 {
	attn := 2.0 - dx*dx - dz*dz
	if attn <= 0 {
		return 0
	}
	g := n.gradient(int64(xsb), int64(zsb))
	attn *= attn
	return attn * attn * (g[0]*dx + g[1]*dz)
}

// gradient hashes a lattice point into one of the 8 fixed gradients,
// mixed with the seed using the same splitmix64 step as vector.DeriveSeed.
func (n *OpenSimplex2S) gradient(xsb, zsb int64) [2]float64 {
	h := n.seed + uint64(xsb)*0x9E3779B97F4A7C15 + uint64(zsb)*0xC2B2AE3D27D4EB4F
	h = (h ^ (h >> 30)) * 0xBF58476D1CE4E5B9
	h = (h ^ (h >> 27)) * 0x94D049BB133111EB
	h ^= h >> 31
	return simplexGrad[h%8]
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
