package material

import (
	"math"
	"math/rand"
	"testing"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v        core.Vec3
		n        core.Vec3
		expected core.Vec3
	}{
		{"45 degrees", core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 0)},
		{"head on", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)},
		{"oblique", core.NewVec3(2, -1, 3), core.NewVec3(0, 1, 0), core.NewVec3(2, 1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reflect(tt.v, tt.n)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMetal_Scatter_PerfectMirror(t *testing.T) {
	albedo := core.NewColor(0.8, 0.6, 0.2)
	mat := NewMetal(albedo, 0)
	hit := geometry.NewIntersection(core.NewPoint3(0, 0, 0), core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewPoint3(-1, 1, 0), core.NewVec3(1, -1, 0))
	random := rand.New(rand.NewSource(42))

	scatters := mat.Scatter(rayIn, hit, random)
	if len(scatters) != 1 {
		t.Fatalf("Expected 1 scatter, got %d", len(scatters))
	}
	s := scatters[0]
	if s.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, s.Attenuation)
	}
	expected := core.NewVec3(1, 1, 0).Normalize()
	if s.Ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected reflection %v, got %v", expected, s.Ray.Direction)
	}
}

func TestMetal_Scatter_FuzzPerturbs(t *testing.T) {
	mat := NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.3)
	hit := geometry.NewIntersection(core.NewPoint3(0, 0, 0), core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewPoint3(-1, 1, 0), core.NewVec3(1, -1, 0))
	random := rand.New(rand.NewSource(42))

	mirror := core.NewVec3(1, 1, 0).Normalize()
	perturbed := false
	for i := 0; i < 100; i++ {
		scatters := mat.Scatter(rayIn, hit, random)
		if len(scatters) == 0 {
			continue
		}
		direction := scatters[0].Ray.Direction
		offAxis := direction.Subtract(mirror).Length()
		if offAxis > 1e-6 {
			perturbed = true
		}
		// Perturbation is bounded by the fuzz disk radius before
		// renormalization, so the scattered ray stays near the mirror
		// direction.
		angle := math.Acos(math.Min(direction.Dot(mirror), 1))
		if angle > math.Atan(mat.Fuzz)+1e-9 {
			t.Errorf("Iteration %d: scatter deviates %f rad from mirror direction", i, angle)
		}
	}
	if !perturbed {
		t.Error("Expected fuzz to perturb at least one reflection")
	}
}

func TestMetal_Scatter_GrazingAbsorption(t *testing.T) {
	// A grazing incidence with large fuzz perturbs some reflections back
	// under the surface; those must be absorbed rather than scattered.
	mat := NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.5)
	hit := geometry.NewIntersection(core.NewPoint3(0, 0, 0), core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewPoint3(-1, 0.001, 0), core.NewVec3(1, -0.001, 0))
	random := rand.New(rand.NewSource(42))

	absorbed := 0
	for i := 0; i < 200; i++ {
		scatters := mat.Scatter(rayIn, hit, random)
		switch len(scatters) {
		case 0:
			absorbed++
		case 1:
			if scatters[0].Ray.Direction.Dot(hit.Normal) <= 0 {
				t.Errorf("Iteration %d: scattered ray points into the surface", i)
			}
		default:
			t.Fatalf("Iteration %d: expected at most 1 scatter, got %d", i, len(scatters))
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing reflections to be absorbed")
	}
}

func TestDiskBasis(t *testing.T) {
	directions := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 1, 0).Normalize(),
		core.NewVec3(0.3, -0.8, 0.2).Normalize(),
	}

	for _, r := range directions {
		u, v := diskBasis(r)
		if math.Abs(u.Length()-1) > 1e-9 || math.Abs(v.Length()-1) > 1e-9 {
			t.Errorf("diskBasis(%v): expected unit basis vectors, got lengths %f, %f",
				r, u.Length(), v.Length())
		}
		if math.Abs(u.Dot(r)) > 1e-9 || math.Abs(v.Dot(r)) > 1e-9 || math.Abs(u.Dot(v)) > 1e-9 {
			t.Errorf("diskBasis(%v): expected mutually orthogonal basis, got %v, %v", r, u, v)
		}
	}
}
