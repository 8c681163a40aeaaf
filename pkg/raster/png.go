package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePNG encodes the image as PNG with the same gamma correction and
// quantization as the PPM writer.
func WritePNG(w io.Writer, img *Image, gamma float64) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x, pixel := range img.Row(y) {
			r, g, b := quantizeColor(pixel, gamma)
			out.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return png.Encode(w, out)
}
