package material

import (
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
)

// ScatterResult pairs a scattered ray with the attenuation applied to
// whatever light it gathers.
type ScatterResult struct {
	Ray         core.Ray
	Attenuation core.Color
}

// Material is the scattering behavior of a surface. Scatter consumes an
// incoming ray and the intersection it produced and returns zero or more
// scattered rays; an empty result means the ray was absorbed.
type Material interface {
	Scatter(rayIn core.Ray, hit geometry.Intersection, random *rand.Rand) []ScatterResult
}
