package core

import "math/rand"

// RandomOnUnitSphere generates a uniformly distributed point on the unit
// sphere by normalizing a vector of independent Gaussian samples.
// See https://mathworld.wolfram.com/SpherePointPicking.html.
func RandomOnUnitSphere(random *rand.Rand) Vec3 {
	for {
		v := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		if norm := v.Length(); norm != 0 {
			return v.Divide(norm)
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the z=0
// plane using rejection sampling.
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
