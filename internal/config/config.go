// Package config parses and validates the CLI arguments, grounded on
// original_source's run_arguments/arg_parseopt (args.hpp) and the teacher's
// flag.Parse-based main.go.
package config

import (
	"flag"
	"fmt"
	"math/rand"
)

// Config holds the validated CLI arguments (spec §6).
type Config struct {
	Seed         uint64
	SamplesPerPx int
	TriangleEdge float64
	WritePNG     bool
}

// Parse reads args (excluding the program name) into a validated Config.
// Invalid values are reported through a descriptive error; the caller is
// expected to print it to stderr and exit non-zero.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)

	var seed uint64
	var spp int
	var tri float64
	var png bool
	var seedSet bool

	seedUsage := "RNG seed. Default: platform entropy."
	sppUsage := "samples per pixel (>= 0). Default: 10."
	triUsage := "heightmap triangle edge length, in (0,1]. Default: 0.5."
	pngUsage := "also write a debug image.png preview alongside image.ppm."

	seedFn := func(s *uint64) func(string) error {
		return func(v string) error {
			var parsed uint64
			if _, err := fmt.Sscanf(v, "%d", &parsed); err != nil {
				return fmt.Errorf("invalid seed %q: %w", v, err)
			}
			*s = parsed
			seedSet = true
			return nil
		}
	}

	fs.Func("s", seedUsage, seedFn(&seed))
	fs.Func("seed", seedUsage, seedFn(&seed))
	fs.IntVar(&spp, "n", 10, sppUsage)
	fs.IntVar(&spp, "spp", 10, sppUsage)
	fs.Float64Var(&tri, "t", 0.5, triUsage)
	fs.Float64Var(&tri, "tri", 0.5, triUsage)
	fs.BoolVar(&png, "png", false, pngUsage)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if spp < 0 {
		return Config{}, fmt.Errorf("invalid spp %d: must be a non-negative number", spp)
	}
	if tri <= 0 || tri > 1 {
		return Config{}, fmt.Errorf("invalid triangle length %g: must be greater than 0 and at most 1", tri)
	}

	if !seedSet {
		seed = rand.Uint64()
	}

	return Config{Seed: seed, SamplesPerPx: spp, TriangleEdge: tri, WritePNG: png}, nil
}
