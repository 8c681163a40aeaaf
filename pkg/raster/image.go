package raster

import (
	"fmt"

	"pathtracer/pkg/core"
)

// Image is a row-major grid of colors with its origin in the top-left
// corner. The shape is fixed at construction; cell values stay unclamped
// until an encoder quantizes them.
type Image struct {
	width  int
	height int
	pixels []core.Color
}

// NewImage creates a black image of the given size. Non-positive
// dimensions are a construction-time failure.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: image dimensions must be positive, got %dx%d", width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}, nil
}

// Width returns the number of columns
func (im *Image) Width() int {
	return im.width
}

// Height returns the number of rows
func (im *Image) Height() int {
	return im.height
}

// At returns the color at column x, row y (row 0 = top)
func (im *Image) At(x, y int) core.Color {
	return im.pixels[y*im.width+x]
}

// Set stores a color at column x, row y
func (im *Image) Set(x, y int, c core.Color) {
	im.pixels[y*im.width+x] = c
}

// Row returns the pixels of row y as a slice into the image
func (im *Image) Row(y int) []core.Color {
	return im.pixels[y*im.width : (y+1)*im.width]
}
