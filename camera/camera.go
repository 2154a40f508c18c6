// Package camera provides the orbiting 3D camera for the grove scene.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Default pose used before any tree exists and as the fallback when bounds
// computation fails.
const (
	DefaultTargetY = 2.2
	DefaultRadius  = 9.0
	DefaultHeight  = 3.5
	DefaultFovy    = 45.0
)

// Camera orbits the scene at a fixed radius and height, looking at a target
// derived from the current tree's bounding box.
type Camera struct {
	Target r3.Vec
	Radius float64
	Height float64
	Angle  float64 // Orbit angle in radians

	Fovy   float64
	Aspect float64
}

// New creates a camera in the default pose.
func New() *Camera {
	c := &Camera{Fovy: DefaultFovy, Aspect: 16.0 / 9.0}
	c.Reset()
	return c
}

// Reset returns the camera to the fixed default framing.
func (c *Camera) Reset() {
	c.Target = r3.Vec{Y: DefaultTargetY}
	c.Radius = DefaultRadius
	c.Height = DefaultHeight
}

// SetAspect records the host surface's aspect ratio. Called once per
// surface size report.
func (c *Camera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// Fit frames the camera to the given bounding box with a fixed vertical
// offset heuristic. A degenerate box (ok=false) falls back to the default
// pose.
func (c *Camera) Fit(boundsMin, boundsMax r3.Vec, ok bool) {
	if !ok {
		c.Reset()
		return
	}

	center := r3.Scale(0.5, r3.Add(boundsMin, boundsMax))
	extent := math.Max(boundsMax.Y-boundsMin.Y,
		math.Max(boundsMax.X-boundsMin.X, boundsMax.Z-boundsMin.Z))
	if extent <= 0 || math.IsNaN(extent) {
		c.Reset()
		return
	}

	c.Target = r3.Vec{X: center.X, Y: center.Y * 0.9, Z: center.Z}
	c.Radius = clamp(extent*2.2, 6, 30)
	c.Height = c.Target.Y*0.8 + 2
}

// Orbit advances the orbit angle by speed radians per second.
func (c *Camera) Orbit(dt, speed float64) {
	c.Angle = math.Mod(c.Angle+dt*speed, 2*math.Pi)
}

// Position returns the camera's world position for the current orbit angle.
func (c *Camera) Position() r3.Vec {
	return r3.Vec{
		X: c.Target.X + math.Cos(c.Angle)*c.Radius,
		Y: c.Target.Y + c.Height,
		Z: c.Target.Z + math.Sin(c.Angle)*c.Radius,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
