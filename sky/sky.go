// Package sky derives environmental lighting and celestial-body state from
// hour-of-day via a fixed keyframe table with linear interpolation.
package sky

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/geom"
)

// Keyframe holds the environment values at one hour of the day.
type Keyframe struct {
	Hour         float64
	Background   geom.Color
	Fog          geom.Color
	HemiSky      geom.Color // Upper ambient-light color
	HemiGround   geom.Color // Lower ambient-light color
	Ambient      float64    // Ambient-light intensity
	SunColor     geom.Color
	SunIntensity float64
}

// keyframes is ordered by hour and wraps: the 24h sample equals hour 0.
var keyframes = []Keyframe{
	{
		Hour:       0,
		Background: geom.Color{R: 0.03, G: 0.04, B: 0.10},
		Fog:        geom.Color{R: 0.04, G: 0.05, B: 0.11},
		HemiSky:    geom.Color{R: 0.18, G: 0.22, B: 0.38},
		HemiGround: geom.Color{R: 0.05, G: 0.05, B: 0.08},
		Ambient:    0.35, SunColor: geom.Color{R: 0.55, G: 0.62, B: 0.85}, SunIntensity: 0.25,
	},
	{
		Hour:       4.5,
		Background: geom.Color{R: 0.07, G: 0.07, B: 0.16},
		Fog:        geom.Color{R: 0.10, G: 0.08, B: 0.16},
		HemiSky:    geom.Color{R: 0.25, G: 0.24, B: 0.40},
		HemiGround: geom.Color{R: 0.07, G: 0.06, B: 0.09},
		Ambient:    0.40, SunColor: geom.Color{R: 0.70, G: 0.60, B: 0.75}, SunIntensity: 0.25,
	},
	{
		Hour:       6,
		Background: geom.Color{R: 0.78, G: 0.52, B: 0.36},
		Fog:        geom.Color{R: 0.82, G: 0.58, B: 0.42},
		HemiSky:    geom.Color{R: 0.85, G: 0.62, B: 0.48},
		HemiGround: geom.Color{R: 0.30, G: 0.24, B: 0.18},
		Ambient:    0.65, SunColor: geom.Color{R: 1.00, G: 0.62, B: 0.32}, SunIntensity: 0.65,
	},
	{
		Hour:       7.5,
		Background: geom.Color{R: 0.62, G: 0.78, B: 0.94},
		Fog:        geom.Color{R: 0.72, G: 0.82, B: 0.94},
		HemiSky:    geom.Color{R: 0.70, G: 0.82, B: 0.95},
		HemiGround: geom.Color{R: 0.35, G: 0.38, B: 0.30},
		Ambient:    0.90, SunColor: geom.Color{R: 1.00, G: 0.94, B: 0.80}, SunIntensity: 0.95,
	},
	{
		Hour:       12,
		Background: geom.Color{R: 0.46, G: 0.70, B: 0.96},
		Fog:        geom.Color{R: 0.62, G: 0.78, B: 0.95},
		HemiSky:    geom.Color{R: 0.62, G: 0.80, B: 0.98},
		HemiGround: geom.Color{R: 0.38, G: 0.42, B: 0.32},
		Ambient:    1.00, SunColor: geom.Color{R: 1.00, G: 0.98, B: 0.92}, SunIntensity: 1.10,
	},
	{
		Hour:       16.5,
		Background: geom.Color{R: 0.56, G: 0.68, B: 0.88},
		Fog:        geom.Color{R: 0.68, G: 0.72, B: 0.86},
		HemiSky:    geom.Color{R: 0.66, G: 0.72, B: 0.88},
		HemiGround: geom.Color{R: 0.34, G: 0.36, B: 0.28},
		Ambient:    0.90, SunColor: geom.Color{R: 1.00, G: 0.88, B: 0.68}, SunIntensity: 0.90,
	},
	{
		Hour:       18.5,
		Background: geom.Color{R: 0.88, G: 0.52, B: 0.28},
		Fog:        geom.Color{R: 0.86, G: 0.56, B: 0.34},
		HemiSky:    geom.Color{R: 0.90, G: 0.58, B: 0.36},
		HemiGround: geom.Color{R: 0.28, G: 0.20, B: 0.14},
		Ambient:    0.70, SunColor: geom.Color{R: 1.00, G: 0.55, B: 0.22}, SunIntensity: 0.60,
	},
	{
		Hour:       19.5,
		Background: geom.Color{R: 0.12, G: 0.10, B: 0.22},
		Fog:        geom.Color{R: 0.14, G: 0.11, B: 0.22},
		HemiSky:    geom.Color{R: 0.28, G: 0.24, B: 0.42},
		HemiGround: geom.Color{R: 0.08, G: 0.07, B: 0.10},
		Ambient:    0.45, SunColor: geom.Color{R: 0.70, G: 0.50, B: 0.65}, SunIntensity: 0.30,
	},
	{
		Hour:       21,
		Background: geom.Color{R: 0.04, G: 0.05, B: 0.12},
		Fog:        geom.Color{R: 0.05, G: 0.06, B: 0.13},
		HemiSky:    geom.Color{R: 0.20, G: 0.24, B: 0.40},
		HemiGround: geom.Color{R: 0.05, G: 0.05, B: 0.08},
		Ambient:    0.35, SunColor: geom.Color{R: 0.55, G: 0.62, B: 0.85}, SunIntensity: 0.25,
	},
}

// Keyframes returns a copy of the keyframe table.
func Keyframes() []Keyframe {
	out := make([]Keyframe, len(keyframes))
	copy(out, keyframes)
	return out
}

// State is the environment descriptor for one hour-of-day.
type State struct {
	Keyframe // Interpolated field values; Hour is the sampled hour

	Day       bool
	BodyPos   r3.Vec // Sun or moon position
	BodySize  float64
	BodyColor geom.Color
}

// Model samples environment state from the keyframe table.
type Model struct {
	cfg config.SkyConfig
}

// New creates a sky model with the given day/night window.
func New(cfg config.SkyConfig) *Model {
	return &Model{cfg: cfg}
}

// IsDay reports whether hour falls inside the day window.
func (m *Model) IsDay(hour float64) bool {
	return hour >= m.cfg.DayStart && hour < m.cfg.DayEnd
}

// At returns the interpolated environment state for hour in [0,24).
func (m *Model) At(hour float64) State {
	hour = wrapHour(hour)

	s := State{
		Keyframe: sample(hour),
		Day:      m.IsDay(hour),
	}
	s.Hour = hour

	if s.Day {
		// Sun sweeps a semicircle across the day window.
		p := (hour - m.cfg.DayStart) / (m.cfg.DayEnd - m.cfg.DayStart)
		s.BodyPos = arc(p, 14, 9)
		s.BodySize = 0.9
		s.BodyColor = geom.Color{R: 1.00, G: 0.92, B: 0.70}
	} else {
		// Moon sweeps its own lower arc across the night window.
		nightLen := 24 - (m.cfg.DayEnd - m.cfg.DayStart)
		p := wrapHour(hour-m.cfg.DayEnd) / nightLen
		s.BodyPos = arc(p, 12, 7)
		s.BodySize = 0.55
		s.BodyColor = geom.Color{R: 0.88, G: 0.90, B: 0.96}
	}

	return s
}

// sample linearly interpolates the keyframe table at hour. At an exact
// keyframe hour the keyframe's values are returned unchanged.
func sample(hour float64) Keyframe {
	last := len(keyframes) - 1

	// Wrap segment: last keyframe back to the first at 24h.
	if hour >= keyframes[last].Hour {
		span := 24 - keyframes[last].Hour + keyframes[0].Hour
		t := (hour - keyframes[last].Hour) / span
		return lerpKeyframes(keyframes[last], keyframes[0], t)
	}
	if hour < keyframes[0].Hour {
		span := 24 - keyframes[last].Hour + keyframes[0].Hour
		t := (hour + 24 - keyframes[last].Hour) / span
		return lerpKeyframes(keyframes[last], keyframes[0], t)
	}

	for i := 0; i < last; i++ {
		a, b := keyframes[i], keyframes[i+1]
		if hour >= a.Hour && hour < b.Hour {
			t := (hour - a.Hour) / (b.Hour - a.Hour)
			return lerpKeyframes(a, b, t)
		}
	}
	return keyframes[last]
}

func lerpKeyframes(a, b Keyframe, t float64) Keyframe {
	return Keyframe{
		Hour:         geom.Lerp(a.Hour, b.Hour, t),
		Background:   a.Background.Lerp(b.Background, t),
		Fog:          a.Fog.Lerp(b.Fog, t),
		HemiSky:      a.HemiSky.Lerp(b.HemiSky, t),
		HemiGround:   a.HemiGround.Lerp(b.HemiGround, t),
		Ambient:      geom.Lerp(a.Ambient, b.Ambient, t),
		SunColor:     a.SunColor.Lerp(b.SunColor, t),
		SunIntensity: geom.Lerp(a.SunIntensity, b.SunIntensity, t),
	}
}

// arc places a body on a semicircle: rises at -radius, peaks at height,
// sets at +radius.
func arc(p, radius, height float64) r3.Vec {
	angle := math.Pi * geom.Clamp01(p)
	return r3.Vec{
		X: -math.Cos(angle) * radius,
		Y: math.Sin(angle)*height + 1,
		Z: -6,
	}
}

// wrapHour maps any hour value into [0,24).
func wrapHour(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}
