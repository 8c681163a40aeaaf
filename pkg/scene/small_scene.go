package scene

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
	"pathtracer/pkg/renderer"
)

// NewSmallScene creates a small demonstration scene: a hollow glass
// sphere, a diffuse sphere, a mirror-finish metal sphere and a large
// hemispherical-diffuse ground sphere.
func NewSmallScene(aspectRatio float64) (*Scene, *renderer.Camera, error) {
	camera, err := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:       core.NewPoint3(-2, 2, 1),
		LookAt:         core.NewPoint3(0, 0, -1),
		Up:             core.NewVec3(0, 1, 0),
		ViewportWidth:  2 * aspectRatio,
		ViewportHeight: 2,
		DiagonalFOV:    40,
		FStop:          16,
	})
	if err != nil {
		return nil, nil, err
	}

	glass := material.NewDielectric(core.NewColor(1, 1, 1), 1.5)

	s := NewScene()
	// Hollow dielectric shell: the negative inner radius flips the
	// normal so refraction happens in the right direction on the way
	// back out.
	s.Add(geometry.NewSphere(core.NewPoint3(-1, 0, -1), 0.5), glass)
	s.Add(geometry.NewSphere(core.NewPoint3(-1, 0, -1), -0.4), glass)
	s.Add(geometry.NewSphere(core.NewPoint3(0, 0, -1), 0.5),
		material.NewLambertian(core.NewColor(0.1, 0.2, 0.5)))
	s.Add(geometry.NewSphere(core.NewPoint3(1, 0, -1), 0.5),
		material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0))
	s.Add(geometry.NewSphere(core.NewPoint3(0, -100.5, -1), 100),
		material.NewHemispherical(core.NewColor(0.8, 0.8, 0.0)))

	return s, camera, nil
}
