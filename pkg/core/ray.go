package core

// Ray represents a half-line with an origin and a unit-length direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
