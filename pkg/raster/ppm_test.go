package raster

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"pathtracer/pkg/core"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		gamma    float64
		expected int
	}{
		{"black", 0, 1, 0},
		{"white", 1, 1, 255},
		{"mid linear", 0.5, 1, 128},
		{"clamped high", 1.25, 1, 255},
		{"clamped negative", -0.5, 1, 0},
		{"nan", math.NaN(), 1, 0},
		{"quarter gamma 2", 0.25, 2, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantize(tt.v, tt.gamma); got != tt.expected {
				t.Errorf("quantize(%g, %g) = %d, expected %d", tt.v, tt.gamma, got, tt.expected)
			}
		})
	}
}

func TestWritePPM(t *testing.T) {
	img, err := NewImage(1, 2)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	img.Set(0, 0, core.NewColor(1.0, 0.5, 0.0))
	img.Set(0, 1, core.NewColor(1.25, -1.25, 0.0))

	var buf bytes.Buffer
	var progressCalls []int
	if err := WritePPM(&buf, img, 1.0, func(rows int) {
		progressCalls = append(progressCalls, rows)
	}); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n1 2\n255\n255 128 0\n255 0 0\n"
	if buf.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, buf.String())
	}
	if len(progressCalls) != 2 || progressCalls[0] != 1 || progressCalls[1] != 2 {
		t.Errorf("Expected progress calls [1 2], got %v", progressCalls)
	}
}

func TestWritePPM_NaNPixel(t *testing.T) {
	// A NaN channel must clamp to 0 like any other out-of-range value,
	// never leak a pathological integer into the output.
	img, err := NewImage(1, 2)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	img.Set(0, 0, core.NewColor(math.NaN(), 0.5, 0.5))
	img.Set(0, 1, core.NewColor(math.NaN(), math.NaN(), math.NaN()))

	var buf bytes.Buffer
	if err := WritePPM(&buf, img, 1.0, nil); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	expected := "P3\n1 2\n255\n0 128 128\n0 0 0\n"
	if buf.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, buf.String())
	}
}

func TestWritePPM_GammaCorrection(t *testing.T) {
	img, err := NewImage(1, 1)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	img.Set(0, 0, core.NewColor(0.25, 0.25, 0.25))

	var buf bytes.Buffer
	if err := WritePPM(&buf, img, 2.0, nil); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "128 128 128\n") {
		t.Errorf("Expected gamma-corrected pixel 128 128 128, got %q", buf.String())
	}
}

func TestWritePNG(t *testing.T) {
	img, err := NewImage(2, 1)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	img.Set(0, 0, core.NewColor(1, 0.5, 0))
	img.Set(1, 0, core.NewColor(0, 0, 1))

	var buf bytes.Buffer
	if err := WritePNG(&buf, img, 1.0); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decoding the written PNG failed: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 1 {
		t.Fatalf("Expected 2x1 PNG, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	r, g, b, a := decoded.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 128 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("Expected pixel (255,128,0,255), got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}
