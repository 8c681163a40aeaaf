package material

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
)

// Metal represents a specular material with optional fuzzy reflection
type Metal struct {
	Albedo core.Color
	Fuzz   float64 // 0 = perfect mirror, larger = rougher
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incident ray about the normal, perturbed by a
// random point on a disk of radius Fuzz orthogonal to the reflection.
// Rays perturbed back into the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit geometry.Intersection, random *rand.Rand) []ScatterResult {
	reflected := reflect(rayIn.Direction, hit.Normal)

	if m.Fuzz > 0 {
		u, v := diskBasis(reflected)
		p := core.RandomInUnitDisk(random)
		reflected = reflected.
			Add(u.Multiply(p.X * m.Fuzz)).
			Add(v.Multiply(p.Y * m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return nil
	}
	return []ScatterResult{{
		Ray:         core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}}
}

// reflect calculates the reflection of v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// diskBasis builds an orthonormal basis for the plane orthogonal to r by
// projecting out the r component of a coordinate axis.
func diskBasis(r core.Vec3) (core.Vec3, core.Vec3) {
	axis := core.NewVec3(1, 0, 0)
	if math.Abs(r.X) > math.Abs(r.Y) {
		axis = core.NewVec3(0, 1, 0)
	}
	u := axis.Subtract(axis.Project(r)).Normalize()
	v := r.Cross(u).Normalize()
	return u, v
}
