package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"pathtracer/pkg/raster"
)

// RenderParallel renders with a pool of workers, partitioning the image
// by rows. Each row gets its own independently seeded random source, so
// the output is identical to a render with any other worker count for
// the same seed, and no locking is needed: every row is owned by exactly
// one task. workers <= 0 uses one worker per CPU.
func RenderParallel(world World, camera *Camera, config Config, workers int, progress func(rowsCompleted int)) (*raster.Image, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	img, err := raster.NewImage(config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make(chan int)
	done := make(chan struct{}, config.Height)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				random := rand.New(rand.NewSource(config.Seed + int64(row)))
				renderRow(world, camera, config, img, row, random)
				done <- struct{}{}
			}
		}()
	}

	go func() {
		for row := 0; row < config.Height; row++ {
			rows <- row
		}
		close(rows)
		wg.Wait()
		close(done)
	}()

	completed := 0
	for range done {
		completed++
		if progress != nil {
			progress(completed)
		}
	}
	return img, nil
}
