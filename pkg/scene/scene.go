package scene

import (
	"math"
	"math/rand"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// shadowEpsilon excludes intersections at the ray origin itself so a
// scattered ray cannot re-hit the surface it just left (shadow acne).
const shadowEpsilon = 0.001

// Object binds a surface to the material that shades it
type Object struct {
	Surface  geometry.Surface
	Material material.Material
}

// Scene is the renderable world: an ordered collection of objects plus
// the background gradient returned for escaped rays. Insertion order does
// not affect the rendered result.
type Scene struct {
	Objects     []Object
	TopColor    core.Color
	BottomColor core.Color
}

// NewScene creates an empty scene with the default sky gradient
func NewScene() *Scene {
	return &Scene{
		TopColor:    core.NewColor(0.5, 0.7, 1.0),
		BottomColor: core.NewColor(1.0, 1.0, 1.0),
	}
}

// Add appends an object to the scene
func (s *Scene) Add(surface geometry.Surface, mat material.Material) {
	s.Objects = append(s.Objects, Object{Surface: surface, Material: mat})
}

// Intersect finds the nearest intersection along the ray within the
// filter range, paired with its object's material. Candidates at NaN
// distance (degenerate geometry) are never selected.
func (s *Scene) Intersect(ray core.Ray, filter core.Interval) (geometry.Intersection, material.Material, bool) {
	var (
		closest    geometry.Intersection
		closestMat material.Material
	)
	closestDist := math.Inf(1)
	found := false

	for _, object := range s.Objects {
		for _, hit := range object.Surface.Intersections(ray, filter) {
			distance := hit.Point.Sub(ray.Origin).Length()
			// NaN compares false, so a NaN distance can never win.
			if distance < closestDist {
				closest = hit
				closestMat = object.Material
				closestDist = distance
				found = true
			}
		}
	}
	return closest, closestMat, found
}

// RenderRay computes the radiance arriving along a ray by recursively
// scattering it through the scene, up to depth bounces.
func (s *Scene) RenderRay(ray core.Ray, depth int, random *rand.Rand) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, mat, found := s.Intersect(ray, core.NewInterval(shadowEpsilon, math.Inf(1)))
	if !found {
		// Background gradient keyed on the vertical ray direction.
		t := 0.5 * (ray.Direction.Y + 1.0)
		return s.BottomColor.Lerp(s.TopColor, t)
	}

	scatters := mat.Scatter(ray, hit, random)
	if len(scatters) == 0 {
		return core.Color{} // absorbed
	}

	var acc core.Color
	for _, scatter := range scatters {
		rendered := s.RenderRay(scatter.Ray, depth-1, random)
		acc = acc.Add(rendered.Mul(scatter.Attenuation))
	}
	return acc.Scale(1.0 / float64(len(scatters)))
}
