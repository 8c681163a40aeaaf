package geometry

import (
	"math"

	"pathtracer/pkg/core"
)

// Sphere represents a sphere shape. A negative radius flips the outward
// normal, which is how thin hollow dielectric shells are modeled.
type Sphere struct {
	Center core.Point3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersections tests the ray against the sphere and returns the hits
// whose distance falls inside the filter interval.
func (s *Sphere) Intersections(ray core.Ray, filter core.Interval) []Intersection {
	// Quadratic coefficients for |ray.At(t) - center|² = radius²,
	// in the half-b form: t² + 2·halfB·t + c = 0 for unit directions.
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	var hits []Intersection
	for _, root := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if !filter.Contains(root) {
			continue
		}
		point := ray.At(root)
		normal := point.Sub(s.Center).Divide(s.Radius)
		hits = append(hits, NewIntersection(point, normal))
	}
	return hits
}
