// Package geom provides shared color and scalar helpers for scene geometry.
package geom

import "math"

// Color is a normalized RGB color with components in [0,1].
type Color struct {
	R, G, B float64
}

// Lerp linearly interpolates between two colors.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}

// Scale multiplies all components by f, clamping to [0,1].
func (c Color) Scale(f float64) Color {
	return Color{
		R: Clamp01(c.R * f),
		G: Clamp01(c.G * f),
		B: Clamp01(c.B * f),
	}
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp clamps v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
