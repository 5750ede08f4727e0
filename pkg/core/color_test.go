package core

import (
	"math"
	"testing"
)

func TestLerp_Endpoints(t *testing.T) {
	white := NewVec3(1, 1, 1)
	blue := NewVec3(0.5, 0.7, 1.0)

	if got := Lerp(white, blue, 0); got != white {
		t.Errorf("Lerp at t=0: expected %v, got %v", white, got)
	}
	if got := Lerp(white, blue, 1); got != blue {
		t.Errorf("Lerp at t=1: expected %v, got %v", blue, got)
	}
}

func TestLerp_Midpoint(t *testing.T) {
	got := Lerp(NewVec3(0, 0, 0), NewVec3(1, 1, 1), 0.5)
	expected := NewVec3(0.5, 0.5, 0.5)

	tolerance := 1e-9
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestGammaCorrect(t *testing.T) {
	got := GammaCorrect(NewVec3(0.25, 1.0, 0.0))
	expected := NewVec3(0.5, 1.0, 0.0)

	tolerance := 1e-9
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRGBBytes(t *testing.T) {
	tests := []struct {
		name    string
		color   Vec3
		r, g, b uint8
	}{
		{"black", NewVec3(0, 0, 0), 0, 0, 0},
		{"white", NewVec3(1, 1, 1), 255, 255, 255},
		{"half gray", NewVec3(0.5, 0.5, 0.5), 127, 127, 127},
		{"over range clamps", NewVec3(2.0, -1.0, 1.5), 255, 0, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := RGBBytes(tt.color)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}
