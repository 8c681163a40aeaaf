package material

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
)

// Dielectric represents a transparent refractive material like glass
type Dielectric struct {
	Albedo          core.Color
	RefractiveIndex float64
}

// NewDielectric creates a new dielectric material
func NewDielectric(albedo core.Color, refractiveIndex float64) *Dielectric {
	return &Dielectric{Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the incident ray at the surface boundary
func (d *Dielectric) Scatter(rayIn core.Ray, hit geometry.Intersection, random *rand.Rand) []ScatterResult {
	direction := refract(rayIn.Direction, hit.Normal, 1.0/d.RefractiveIndex, random)
	return []ScatterResult{{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: d.Albedo,
	}}
}

// refract applies Snell's law for an incident direction against a surface
// normal, choosing specular reflection when refraction is impossible
// (total internal reflection) or when a uniform draw falls under the
// Schlick reflectance. A negative cosine means the ray is exiting the
// material, so the normal is flipped and the ratio inverted.
func refract(incident, normal core.Vec3, ratio float64, random *rand.Rand) core.Vec3 {
	cosTheta := math.Min(incident.Dot(normal.Negate()), 1.0)
	if cosTheta < 0 {
		return refract(incident, normal.Negate(), 1.0/ratio, random)
	}
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	reflection := reflect(incident, normal)
	orthogonal := incident.Add(normal.Multiply(cosTheta)).Multiply(ratio)
	parallel := normal.Multiply(-math.Sqrt(math.Abs(1.0 - orthogonal.Dot(orthogonal))))
	refraction := orthogonal.Add(parallel)

	if ratio*sinTheta > 1.0 || reflectance(cosTheta, ratio) > random.Float64() {
		return reflection
	}
	return refraction
}

// reflectance calculates the Fresnel reflectance using Schlick's
// approximation.
func reflectance(cosTheta, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
