package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewDefaultPose(t *testing.T) {
	c := New()
	if c.Target.Y != DefaultTargetY || c.Radius != DefaultRadius || c.Height != DefaultHeight {
		t.Errorf("unexpected default pose: %+v", c)
	}
	if c.Fovy != DefaultFovy {
		t.Errorf("fovy %f, want %f", c.Fovy, DefaultFovy)
	}
}

func TestFitFramesBounds(t *testing.T) {
	c := New()
	c.Fit(r3.Vec{X: -1, Y: 0, Z: -1}, r3.Vec{X: 1, Y: 4, Z: 1}, true)

	if c.Target.X != 0 || c.Target.Z != 0 {
		t.Errorf("target should center laterally, got %+v", c.Target)
	}
	if want := 2.0 * 0.9; c.Target.Y != want {
		t.Errorf("target y %f, want %f", c.Target.Y, want)
	}
	if want := clamp(4*2.2, 6, 30); c.Radius != want {
		t.Errorf("radius %f, want %f", c.Radius, want)
	}
}

func TestFitClampsRadius(t *testing.T) {
	c := New()

	c.Fit(r3.Vec{}, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, true)
	if c.Radius != 6 {
		t.Errorf("tiny tree should clamp radius to 6, got %f", c.Radius)
	}

	c.Fit(r3.Vec{}, r3.Vec{X: 50, Y: 50, Z: 50}, true)
	if c.Radius != 30 {
		t.Errorf("huge tree should clamp radius to 30, got %f", c.Radius)
	}
}

func TestFitFallsBackOnDegenerateBounds(t *testing.T) {
	c := New()
	c.Fit(r3.Vec{X: 9}, r3.Vec{X: 99}, false)
	if c.Radius != DefaultRadius || c.Target.Y != DefaultTargetY {
		t.Errorf("expected default pose after invalid bounds, got %+v", c)
	}

	c.Fit(r3.Vec{X: 1, Y: 1, Z: 1}, r3.Vec{X: 1, Y: 1, Z: 1}, true)
	if c.Radius != DefaultRadius {
		t.Errorf("zero-extent box should fall back, got radius %f", c.Radius)
	}
}

func TestOrbitWraps(t *testing.T) {
	c := New()
	c.Orbit(1, math.Pi) // half a turn
	if math.Abs(c.Angle-math.Pi) > 1e-12 {
		t.Errorf("angle %f, want pi", c.Angle)
	}
	c.Orbit(3, math.Pi) // 1.5 more turns, wraps past 2pi
	if c.Angle < 0 || c.Angle >= 2*math.Pi {
		t.Errorf("angle %f outside [0, 2pi)", c.Angle)
	}
}

func TestPositionOnOrbitCircle(t *testing.T) {
	c := New()
	for _, angle := range []float64{0, 1, 2.5, 4, 6} {
		c.Angle = angle
		p := c.Position()
		dx := p.X - c.Target.X
		dz := p.Z - c.Target.Z
		if r := math.Hypot(dx, dz); math.Abs(r-c.Radius) > 1e-9 {
			t.Errorf("angle %f: horizontal distance %f, want %f", angle, r, c.Radius)
		}
		if p.Y != c.Target.Y+c.Height {
			t.Errorf("angle %f: height %f, want %f", angle, p.Y, c.Target.Y+c.Height)
		}
	}
}

func TestSetAspectIgnoresZeroHeight(t *testing.T) {
	c := New()
	before := c.Aspect
	c.SetAspect(800, 0)
	if c.Aspect != before {
		t.Error("zero height must not change aspect")
	}
	c.SetAspect(800, 400)
	if c.Aspect != 2 {
		t.Errorf("aspect %f, want 2", c.Aspect)
	}
}
