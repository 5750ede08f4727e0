package core

import "math"

// Colors are linear-space Vec3 values with X=R, Y=G, Z=B.

// Lerp linearly interpolates between two colors: (1-t)*a + t*b
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Multiply(1.0 - t).Add(b.Multiply(t))
}

// GammaCorrect maps a linear color to gamma space with gamma 2
// (square root per channel), the transform applied before quantization
func GammaCorrect(c Vec3) Vec3 {
	return Vec3{
		X: math.Sqrt(c.X),
		Y: math.Sqrt(c.Y),
		Z: math.Sqrt(c.Z),
	}
}

// RGBBytes quantizes a color to three 8-bit channel values.
// Channels are clamped to [0,1] first, so the mapping is total and
// deterministic for any finite input.
func RGBBytes(c Vec3) (r, g, b uint8) {
	clamped := c.Clamp(0.0, 1.0)
	return uint8(255 * clamped.X), uint8(255 * clamped.Y), uint8(255 * clamped.Z)
}
