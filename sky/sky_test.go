package sky

import (
	"testing"

	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/geom"
)

func testSkyCfg() config.SkyConfig {
	return config.SkyConfig{DayStart: 6.0, DayEnd: 19.5}
}

func TestExactKeyframeSamples(t *testing.T) {
	m := New(testSkyCfg())
	for _, kf := range Keyframes() {
		got := m.At(kf.Hour)
		if got.Ambient != kf.Ambient {
			t.Errorf("hour %.1f: ambient %f, want %f", kf.Hour, got.Ambient, kf.Ambient)
		}
		if got.Background != kf.Background {
			t.Errorf("hour %.1f: background %+v, want %+v", kf.Hour, got.Background, kf.Background)
		}
		if got.SunIntensity != kf.SunIntensity {
			t.Errorf("hour %.1f: sun intensity %f, want %f", kf.Hour, got.SunIntensity, kf.SunIntensity)
		}
	}
}

func TestMidpointInterpolation(t *testing.T) {
	m := New(testSkyCfg())

	// Halfway between the 7.5 and 12.0 keyframes.
	var a, b Keyframe
	for _, kf := range Keyframes() {
		switch kf.Hour {
		case 7.5:
			a = kf
		case 12:
			b = kf
		}
	}

	got := m.At(9.75)
	if want := geom.Lerp(a.Ambient, b.Ambient, 0.5); got.Ambient != want {
		t.Errorf("ambient at 9.75: %f, want %f", got.Ambient, want)
	}
	if want := a.Fog.Lerp(b.Fog, 0.5); got.Fog != want {
		t.Errorf("fog at 9.75: %+v, want %+v", got.Fog, want)
	}
}

func TestWrapSegment(t *testing.T) {
	m := New(testSkyCfg())

	// Between the 21.0 keyframe and the 0.0 keyframe the table wraps
	// through 24h; hour 22.5 is halfway through that 3h span.
	frames := Keyframes()
	last := frames[len(frames)-1]
	first := frames[0]

	got := m.At(22.5)
	if want := geom.Lerp(last.Ambient, first.Ambient, 0.5); got.Ambient != want {
		t.Errorf("ambient at 22.5: %f, want %f", got.Ambient, want)
	}

	// Same segment approached from below the first keyframe.
	if first.Hour > 0 {
		t.Fatalf("table expected to start at hour 0, starts at %f", first.Hour)
	}
}

func TestDayWindowBoundaries(t *testing.T) {
	m := New(testSkyCfg())
	tests := []struct {
		hour float64
		day  bool
	}{
		{0, false},
		{5.99, false},
		{6.0, true},
		{12, true},
		{19.49, true},
		{19.5, false},
		{23.5, false},
	}
	for _, tt := range tests {
		if got := m.IsDay(tt.hour); got != tt.day {
			t.Errorf("IsDay(%v) = %v, want %v", tt.hour, got, tt.day)
		}
	}
}

func TestCelestialBodySelection(t *testing.T) {
	m := New(testSkyCfg())

	day := m.At(12)
	if !day.Day {
		t.Fatal("noon should be day")
	}
	if day.BodySize != 0.9 {
		t.Errorf("sun size %f, want 0.9", day.BodySize)
	}

	night := m.At(23)
	if night.Day {
		t.Fatal("23h should be night")
	}
	if night.BodySize != 0.55 {
		t.Errorf("moon size %f, want 0.55", night.BodySize)
	}
}

func TestBodyArc(t *testing.T) {
	m := New(testSkyCfg())

	// Sun low in the east at dawn, high at solar midpoint, low in the
	// west before dusk.
	dawn := m.At(6.0)
	mid := m.At(6.0 + (19.5-6.0)/2)
	dusk := m.At(19.49)

	if dawn.BodyPos.X >= 0 {
		t.Errorf("dawn sun should rise at negative X, got %f", dawn.BodyPos.X)
	}
	if dusk.BodyPos.X <= 0 {
		t.Errorf("dusk sun should set at positive X, got %f", dusk.BodyPos.X)
	}
	if mid.BodyPos.Y <= dawn.BodyPos.Y || mid.BodyPos.Y <= dusk.BodyPos.Y {
		t.Errorf("midday sun should be highest: dawn %f, mid %f, dusk %f",
			dawn.BodyPos.Y, mid.BodyPos.Y, dusk.BodyPos.Y)
	}
}

func TestHourWrapping(t *testing.T) {
	m := New(testSkyCfg())
	a := m.At(25) // wraps to 1
	b := m.At(1)
	if a.Ambient != b.Ambient || a.Hour != b.Hour {
		t.Errorf("hour 25 should sample as hour 1: %+v vs %+v", a.Keyframe, b.Keyframe)
	}

	c := m.At(-2) // wraps to 22
	d := m.At(22)
	if c.Ambient != d.Ambient {
		t.Errorf("hour -2 should sample as hour 22: %f vs %f", c.Ambient, d.Ambient)
	}
}
