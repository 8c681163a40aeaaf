package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"pathtracer/pkg/raster"
	"pathtracer/pkg/renderer"
	"pathtracer/pkg/scene"
)

func main() {
	defaults := renderer.DefaultConfig()
	sceneType := flag.String("scene", "small", "Scene to render: 'small' or 'large'")
	output := flag.String("output", "-", "Output path, or '-' for stdout")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	width := flag.Int("width", defaults.Width, "Output image width")
	height := flag.Int("height", defaults.Height, "Output image height")
	samples := flag.Int("samples", defaults.SamplesPerPixel, "Samples per pixel")
	depth := flag.Int("depth", defaults.MaxDepth, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU, 1 = single-threaded)")
	gamma := flag.Float64("gamma", 2.2, "Gamma correction applied on output")
	seed := flag.Int64("seed", defaults.Seed, "Random seed")
	flag.Parse()

	if err := run(*sceneType, *output, *format, *width, *height, *samples, *depth, *workers, *gamma, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType, output, format string, width, height, samples, depth, workers int, gamma float64, seed int64) error {
	aspectRatio := float64(width) / float64(height)

	var (
		world  *scene.Scene
		camera *renderer.Camera
		err    error
	)
	switch sceneType {
	case "small":
		world, camera, err = scene.NewSmallScene(aspectRatio)
	case "large":
		world, camera, err = scene.NewLargeScene(aspectRatio, rand.New(rand.NewSource(seed)))
	default:
		return fmt.Errorf("unknown scene: %s", sceneType)
	}
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		MaxDepth:        depth,
		Seed:            seed,
	}

	progress := func(rowsCompleted int) {
		fmt.Fprintf(os.Stderr, "\rRendered %d/%d rows", rowsCompleted, height)
	}

	startTime := time.Now()
	var img *raster.Image
	if workers == 1 {
		img, err = renderer.Render(world, camera, config, progress)
	} else {
		img, err = renderer.RenderParallel(world, camera, config, workers, progress)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nRender completed in %v\n", time.Since(startTime))

	var out io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	switch format {
	case "ppm":
		err = raster.WritePPM(out, img, gamma, nil)
	case "png":
		err = raster.WritePNG(out, img, gamma)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if output != "-" {
		fmt.Fprintf(os.Stderr, "Image saved as %s\n", output)
	}
	return nil
}
