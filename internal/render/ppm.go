package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-pathtracer/internal/vector"
)

// gamma is the display-encoding exponent applied before quantizing to bytes.
const gamma = 1.0 / 2.2

// WritePPM serializes a width*height buffer of linear-space colors (one row
// per image row, top-down, row-major) as a binary PPM (P6) image.
func WritePPM(w io.Writer, width, height int, pixels []vector.Vec3) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for _, c := range pixels {
		bw.WriteByte(encodeChannel(c.X))
		bw.WriteByte(encodeChannel(c.Y))
		bw.WriteByte(encodeChannel(c.Z))
	}

	return bw.Flush()
}

// encodeChannel gamma-encodes, clamps and quantizes one linear-space color
// channel to a byte, per spec §4.7's PPM serialization rule.
func encodeChannel(c float64) byte {
	encoded := math.Pow(math.Abs(c), gamma)
	if encoded < 0 {
		encoded = 0
	}
	if encoded > 0.999 {
		encoded = 0.999
	}
	return byte(256 * encoded)
}
