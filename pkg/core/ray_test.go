package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewPoint3(0, 0, 0), NewVec3(0, 3, 4))

	if got := ray.Direction.Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", got)
	}
	expected := NewVec3(0, 0.6, 0.8)
	if ray.Direction != expected {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}

func TestRay_At(t *testing.T) {
	origin := NewPoint3(1, 0, -1)
	direction := NewVec3(0, 1, 1)
	ray := NewRay(origin, direction)

	if got := ray.At(0); got != origin {
		t.Errorf("Expected At(0) to be the origin, got %v", got)
	}

	// Directions are normalized, so the parameter is Euclidean distance.
	got := ray.At(direction.Length())
	expected := origin.Add(direction)
	if got.Sub(expected).Length() > 1e-12 {
		t.Errorf("Expected At(|d|) = origin + d, got %v", got)
	}
}
