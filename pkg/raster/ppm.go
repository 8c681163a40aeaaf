package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"pathtracer/pkg/core"
)

// quantize converts one channel to an output integer in [0,255]:
// round(clamp(v)^(1/gamma) * 255). NaN clamps to 0, the same saturation
// an out-of-range value gets.
func quantize(v, gamma float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Min(1, math.Max(0, v))
	return int(math.Round(math.Pow(v, 1/gamma) * 255))
}

// quantizeColor applies gamma correction and quantization to a color
func quantizeColor(c core.Color, gamma float64) (r, g, b int) {
	return quantize(c.R, gamma), quantize(c.G, gamma), quantize(c.B, gamma)
}

// WritePPM serializes an image in the plain-text P3 portable pixmap
// format, top row first, one pixel per line. The progress callback, if
// non-nil, is invoked with the number of completed rows after each row.
func WritePPM(w io.Writer, img *Image, gamma float64, progress func(rowsCompleted int)) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for _, pixel := range img.Row(y) {
			r, g, b := quantizeColor(pixel, gamma)
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
		if progress != nil {
			progress(y + 1)
		}
	}
	return bw.Flush()
}
