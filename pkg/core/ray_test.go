package core

import (
	"math"
	"testing"
)

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(1, 2, 3))

	got := r.At(0.5)
	expected := NewVec3(1.5, 2.0, 2.5)

	tolerance := 1e-9
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRay_AtZero(t *testing.T) {
	origin := NewVec3(0.1, 0.2, 0.3)
	r := NewRay(origin, NewVec3(5, 5, 5))

	if got := r.At(0); got != origin {
		t.Errorf("At(0) should return the origin, got %v", got)
	}
}
