package geometry

import "pathtracer/pkg/core"

// Surface is intersectable geometry. Intersections returns every hit
// whose ray parameter falls inside the filter interval, nearest first.
// Returning all in-range hits (rather than only the nearest) keeps
// hollow shells built from concentric negative-radius spheres
// expressible.
type Surface interface {
	Intersections(ray core.Ray, filter core.Interval) []Intersection
}

// Intersection records where a ray meets a surface
type Intersection struct {
	Point  core.Point3
	Normal core.Vec3 // unit length, outward facing
}

// NewIntersection creates an intersection, normalizing the normal
func NewIntersection(point core.Point3, normal core.Vec3) Intersection {
	return Intersection{Point: point, Normal: normal.Normalize()}
}
