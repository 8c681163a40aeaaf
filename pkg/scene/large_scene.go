package scene

import (
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
	"pathtracer/pkg/renderer"
)

// NewLargeScene creates the classic sphere-field scene: three large
// feature spheres on a huge ground sphere, surrounded by a 22x22 grid of
// small spheres with randomized positions and materials drawn from the
// provided source.
func NewLargeScene(aspectRatio float64, random *rand.Rand) (*Scene, *renderer.Camera, error) {
	camera, err := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:       core.NewPoint3(13, 2, 3),
		LookAt:         core.NewPoint3(3.36376, 0.517501, 0.776252),
		Up:             core.NewVec3(0, 1, 0),
		ViewportWidth:  2 * aspectRatio,
		ViewportHeight: 2,
		DiagonalFOV:    36,
		FStop:          32,
	})
	if err != nil {
		return nil, nil, err
	}

	s := NewScene()
	s.Add(geometry.NewSphere(core.NewPoint3(0, 1, 0), 1),
		material.NewDielectric(core.NewColor(1, 1, 1), 1.5))
	s.Add(geometry.NewSphere(core.NewPoint3(-4, 1, 0), 1),
		material.NewLambertian(core.NewColor(0.4, 0.2, 0.1)))
	s.Add(geometry.NewSphere(core.NewPoint3(4, 1, 0), 1),
		material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0))
	s.Add(geometry.NewSphere(core.NewPoint3(0, -1000, 0), 1000),
		material.NewHemispherical(core.NewColor(0.5, 0.5, 0.5)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewPoint3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			var mat material.Material
			switch choice := random.Float64(); {
			case choice < 0.8:
				mat = material.NewLambertian(core.NewColor(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				))
			case choice < 0.95:
				mat = material.NewMetal(core.NewColor(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				), 0.5*random.Float64())
			default:
				mat = material.NewDielectric(core.NewColor(1, 1, 1), 1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2), mat)
		}
	}

	return s, camera, nil
}
