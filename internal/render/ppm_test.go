package render

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/df07/go-pathtracer/internal/vector"
)

func TestWritePPMHeader(t *testing.T) {
	var buf bytes.Buffer
	pixels := make([]vector.Vec3, 4)
	if err := WritePPM(&buf, 2, 2, pixels); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	r := bufio.NewReader(&buf)
	magic, _ := r.ReadString('\n')
	if magic != "P6\n" {
		t.Errorf("magic = %q, want %q", magic, "P6\n")
	}
	dims, _ := r.ReadString('\n')
	if dims != "2 2\n" {
		t.Errorf("dims = %q, want %q", dims, "2 2\n")
	}
	maxVal, _ := r.ReadString('\n')
	if maxVal != "255\n" {
		t.Errorf("maxVal = %q, want %q", maxVal, "255\n")
	}
}

func TestWritePPMBackgroundBytes(t *testing.T) {
	var buf bytes.Buffer
	pixels := []vector.Vec3{Background, Background, Background, Background}
	if err := WritePPM(&buf, 2, 2, pixels); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	full := buf.Bytes()
	headerEnd := bytes.Index(full, []byte("255\n")) + len("255\n")
	body := full[headerEnd:]

	if len(body) != 4*3 {
		t.Fatalf("body length = %d, want %d", len(body), 12)
	}
	want := encodeChannel(0.01)
	for i, b := range body {
		if b != want {
			t.Errorf("byte %d = %d, want %d (background 0.01 after gamma)", i, b, want)
		}
	}
}

func TestEncodeChannelWhiteAfterGamma(t *testing.T) {
	// c'=1^(1/2.2)=1, clamped to 0.999, floor(256*0.999)=255.
	if b := encodeChannel(1.0); b != 255 {
		t.Errorf("encodeChannel(1.0) = %d, want 255", b)
	}
}

func TestEncodeChannelClampsAboveOne(t *testing.T) {
	if b := encodeChannel(10.0); b != encodeChannel(1.0) {
		t.Errorf("expected values above 1 to clamp the same as 1.0, got %d vs %d", b, encodeChannel(1.0))
	}
}

func TestEncodeChannelHandlesNegative(t *testing.T) {
	// Numerical edge cases (e.g. slightly negative floating error) are not
	// errors; abs() before gamma keeps this from producing NaN.
	if b := encodeChannel(-0.01); b != encodeChannel(0.01) {
		t.Errorf("encodeChannel(-0.01) = %d, want %d (same as +0.01)", b, encodeChannel(0.01))
	}
}
