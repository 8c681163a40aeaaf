package renderer

import (
	"fmt"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/raster"
)

// World resolves a single ray to a color. scene.Scene implements this;
// the interface lives here to avoid a circular import.
type World interface {
	RenderRay(ray core.Ray, depth int, random *rand.Rand) core.Color
}

// Config contains rendering configuration
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42, // deterministic by default
	}
}

// Validate reports invalid configuration as an error
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("render: dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("render: samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("render: max depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// Render renders the world through the camera into a new image, one
// jittered multi-sample pixel at a time, single-threaded. The progress
// callback, if non-nil, is invoked with the number of completed rows
// after each row.
func Render(world World, camera *Camera, config Config, progress func(rowsCompleted int)) (*raster.Image, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	img, err := raster.NewImage(config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	random := rand.New(rand.NewSource(config.Seed))
	for row := 0; row < config.Height; row++ {
		renderRow(world, camera, config, img, row, random)
		if progress != nil {
			progress(row + 1)
		}
	}
	return img, nil
}

// renderRow fills one image row. Row 0 is the top of the image, so the
// vertical sample coordinate runs from 1 at the top to 0 at the bottom.
// Single-pixel dimensions get a denominator of 1 to avoid dividing by
// zero.
func renderRow(world World, camera *Camera, config Config, img *raster.Image, row int, random *rand.Rand) {
	uSpan := float64(config.Width - 1)
	if uSpan == 0 {
		uSpan = 1
	}
	vSpan := float64(config.Height - 1)
	if vSpan == 0 {
		vSpan = 1
	}
	for col := 0; col < config.Width; col++ {
		var acc core.Color
		for sample := 0; sample < config.SamplesPerPixel; sample++ {
			u := (float64(col) + random.Float64()) / uSpan
			v := (float64(config.Height-1-row) + random.Float64()) / vSpan
			ray := camera.Ray(u, v, random)
			acc = acc.Add(world.RenderRay(ray, config.MaxDepth, random))
		}
		img.Set(col, row, acc.Scale(1.0/float64(config.SamplesPerPixel)))
	}
}
