package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"pathtracer/pkg/core"
)

// CameraConfig describes a camera. FocalLength may be given directly or
// derived from a diagonal field-of-view angle; FocusDistance defaults to
// the focal length; FStop zero means a pinhole camera with no depth of
// field; ApertureSides of zero samples a circular lens, three or more a
// regular polygon of that many sides.
type CameraConfig struct {
	LookFrom       core.Point3
	LookAt         core.Point3
	Up             core.Vec3
	ViewportWidth  float64
	ViewportHeight float64
	FocalLength    float64 // 0 = derive from DiagonalFOV
	DiagonalFOV    float64 // degrees, used when FocalLength is 0
	FStop          float64 // aperture f-number, 0 = pinhole
	FocusDistance  float64 // 0 = focal length
	ApertureSides  int     // 0 = circular aperture
}

// Camera maps normalized viewport coordinates to rays, optionally
// sampling a lens offset for depth of field.
type Camera struct {
	origin        core.Point3
	corner        core.Point3
	horizontal    core.Vec3
	vertical      core.Vec3
	right         core.Vec3
	up            core.Vec3
	forward       core.Vec3
	lensRadius    float64
	apertureSides int
}

// NewCamera creates a camera from its configuration. Invalid
// configuration is a construction-time failure.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.ViewportWidth <= 0 || config.ViewportHeight <= 0 {
		return nil, fmt.Errorf("camera: viewport must be positive, got %gx%g",
			config.ViewportWidth, config.ViewportHeight)
	}
	if config.FStop < 0 {
		return nil, fmt.Errorf("camera: f-stop must not be negative, got %g", config.FStop)
	}
	if config.ApertureSides != 0 && config.ApertureSides < 3 {
		return nil, fmt.Errorf("camera: polygonal aperture needs at least 3 sides, got %d",
			config.ApertureSides)
	}

	focalLength := config.FocalLength
	if focalLength == 0 {
		if config.DiagonalFOV <= 0 {
			return nil, fmt.Errorf("camera: either focal length or diagonal field of view is required")
		}
		// aov = 2·arctan(d/2f), solved for f.
		diagonal := math.Hypot(config.ViewportWidth, config.ViewportHeight)
		focalLength = (diagonal / 2) / math.Tan(config.DiagonalFOV*math.Pi/180/2)
	}
	if focalLength <= 0 {
		return nil, fmt.Errorf("camera: focal length must be positive, got %g", focalLength)
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = focalLength
	}
	if focusDistance <= 0 {
		return nil, fmt.Errorf("camera: focus distance must be positive, got %g", focusDistance)
	}

	forward := config.LookFrom.Sub(config.LookAt)
	if forward.NearZero() {
		return nil, fmt.Errorf("camera: look-from and look-at coincide")
	}
	forward = forward.Normalize()
	rightUnnormalized := config.Up.Cross(forward)
	if rightUnnormalized.NearZero() {
		return nil, fmt.Errorf("camera: up vector is parallel to the view direction")
	}
	right := rightUnnormalized.Normalize()
	up := forward.Cross(right)

	// Scale the image plane so the field of view is preserved while the
	// plane of sharp focus sits at focusDistance.
	scale := focusDistance / focalLength
	horizontal := right.Multiply(config.ViewportWidth * scale)
	vertical := up.Multiply(config.ViewportHeight * scale)
	corner := config.LookFrom.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(forward.Multiply(focusDistance))

	lensRadius := 0.0
	if config.FStop > 0 {
		lensRadius = focalLength / (2 * config.FStop)
	}
	if config.ApertureSides >= 3 {
		// Rescale so the polygon's area matches the circular aperture's.
		wedge := 2 * math.Pi / float64(config.ApertureSides)
		lensRadius *= math.Sqrt(wedge / math.Sin(wedge))
	}

	return &Camera{
		origin:        config.LookFrom,
		corner:        corner,
		horizontal:    horizontal,
		vertical:      vertical,
		right:         right,
		up:            up,
		forward:       forward,
		lensRadius:    lensRadius,
		apertureSides: config.ApertureSides,
	}, nil
}

// LensRadius returns the effective lens radius (0 for a pinhole camera)
func (c *Camera) LensRadius() float64 {
	return c.lensRadius
}

// Ray generates a ray through viewport coordinates (u, v) in [0,1]. With
// a nonzero lens radius the ray origin is jittered across the aperture
// while still passing through the same point on the focal plane, which
// produces depth-of-field blur.
func (c *Camera) Ray(u, v float64, random *rand.Rand) core.Ray {
	target := c.corner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v))

	origin := c.origin
	if c.lensRadius > 0 {
		sample := c.sampleLens(random)
		origin = origin.Add(
			c.right.Multiply(sample.X).Add(c.up.Multiply(sample.Y)))
	}
	return core.NewRay(origin, target.Sub(origin))
}

// sampleLens picks a uniformly random offset on the lens: a disk for a
// circular aperture, or a regular polygon sampled wedge by wedge.
func (c *Camera) sampleLens(random *rand.Rand) core.Vec3 {
	if c.apertureSides < 3 {
		return core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	}

	// Partition the polygon into congruent isosceles triangles with apex
	// at the center, sample one canonical triangle, and rotate the point
	// into a uniformly chosen wedge.
	wedge := 2 * math.Pi / float64(c.apertureSides)
	ax, ay := math.Cos(-wedge/2), math.Sin(-wedge/2)
	bx, by := math.Cos(wedge/2), math.Sin(wedge/2)

	s, t := random.Float64(), random.Float64()
	if s+t > 1 {
		// Fold points from the parallelogram's far half back into the
		// triangle.
		s, t = 1-s, 1-t
	}
	x := c.lensRadius * (s*ax + t*bx)
	y := c.lensRadius * (s*ay + t*by)

	rotation := wedge * float64(random.Intn(c.apertureSides))
	sin, cos := math.Sincos(rotation)
	return core.NewVec3(x*cos-y*sin, x*sin+y*cos, 0)
}
