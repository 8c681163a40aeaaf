package material

import (
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
)

// Lambertian represents an ideal diffuse material
type Lambertian struct {
	Albedo core.Color
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements lambertian scattering: aim at a random point on the
// unit sphere centered one normal-length above the hit point.
func (l *Lambertian) Scatter(rayIn core.Ray, hit geometry.Intersection, random *rand.Rand) []ScatterResult {
	target := hit.Point.Add(hit.Normal).Add(core.RandomOnUnitSphere(random))
	direction := target.Sub(hit.Point)
	if direction.NearZero() {
		// The random offset canceled the normal exactly; scatter along
		// the normal instead of normalizing a zero vector.
		direction = hit.Normal
	}
	return []ScatterResult{{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}}
}

// Hemispherical represents a uniform diffuse material that scatters
// uniformly over the hemisphere above the surface.
type Hemispherical struct {
	Albedo core.Color
}

// NewHemispherical creates a new hemispherical diffuse material
func NewHemispherical(albedo core.Color) *Hemispherical {
	return &Hemispherical{Albedo: albedo}
}

// Scatter implements uniform hemisphere scattering
func (h *Hemispherical) Scatter(rayIn core.Ray, hit geometry.Intersection, random *rand.Rand) []ScatterResult {
	direction := core.RandomOnUnitSphere(random)
	if direction.Dot(hit.Normal) <= 0 {
		// Fold the lower hemisphere onto the outward one.
		direction = direction.Negate()
	}
	return []ScatterResult{{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: h.Albedo,
	}}
}
