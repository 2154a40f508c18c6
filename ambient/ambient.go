// Package ambient manages night-only scene life: twinkling stars and
// drifting fireflies, stored as ECS entities. The whole field is created
// when night falls and dropped when day breaks.
package ambient

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
)

// Star is a fixed point on the sky dome with phase-offset twinkle.
type Star struct {
	X, Y, Z float32
	Phase   float32
	Speed   float32
	Base    float32 // Minimum brightness
	Size    float32
	Bright  float32 // Current brightness, updated per frame
}

// Firefly drifts on a per-axis sinusoid (independent frequency and phase
// per axis) and blinks on a rectified sine.
type Firefly struct {
	CX, CY, CZ          float32 // Drift center
	AmpX, AmpY, AmpZ    float32
	FreqX, FreqY, FreqZ float32
	PhX, PhY, PhZ       float32

	BlinkPhase float32
	BlinkSpeed float32

	X, Y, Z float32 // Current position, updated per frame
	Bright  float32 // Current blink brightness in [0,1]
}

// Glow tags the fireflies that drive real light pools.
type Glow struct{}

// Field owns the night entities. A nil *Field means daytime.
type Field struct {
	world *ecs.World

	starMapper *ecs.Map1[Star]
	starFilter *ecs.Filter1[Star]

	flyMapper *ecs.Map1[Firefly]
	litMapper *ecs.Map2[Firefly, Glow]
	flyFilter *ecs.Filter1[Firefly]
	litFilter *ecs.Filter2[Firefly, Glow]

	t float64
}

// NewField spawns stars and fireflies. The first litCount fireflies carry
// the Glow tag and drive point lights.
func NewField(starCount, flyCount, litCount int, rng *rand.Rand) *Field {
	world := ecs.NewWorld()

	f := &Field{
		world:      world,
		starMapper: ecs.NewMap1[Star](world),
		starFilter: ecs.NewFilter1[Star](world),
		flyMapper:  ecs.NewMap1[Firefly](world),
		litMapper:  ecs.NewMap2[Firefly, Glow](world),
		flyFilter:  ecs.NewFilter1[Firefly](world),
		litFilter:  ecs.NewFilter2[Firefly, Glow](world),
	}

	for i := 0; i < starCount; i++ {
		// Upper dome placement.
		az := rng.Float64() * 2 * math.Pi
		alt := 0.15 + rng.Float64()*1.35 // Radians above horizon
		dist := 22 + rng.Float64()*8
		star := Star{
			X:     float32(math.Cos(az) * math.Cos(alt) * dist),
			Y:     float32(math.Sin(alt) * dist),
			Z:     float32(math.Sin(az) * math.Cos(alt) * dist),
			Phase: rng.Float32() * 2 * math.Pi,
			Speed: 0.8 + rng.Float32()*2.2,
			Base:  0.25 + rng.Float32()*0.35,
			Size:  0.05 + rng.Float32()*0.06,
		}
		star.Bright = star.Base
		f.starMapper.NewEntity(&star)
	}

	for i := 0; i < flyCount; i++ {
		az := rng.Float64() * 2 * math.Pi
		dist := 1.2 + rng.Float64()*4
		fly := Firefly{
			CX:         float32(math.Cos(az) * dist),
			CY:         0.5 + rng.Float32()*2.2,
			CZ:         float32(math.Sin(az) * dist),
			AmpX:       0.4 + rng.Float32()*0.9,
			AmpY:       0.2 + rng.Float32()*0.5,
			AmpZ:       0.4 + rng.Float32()*0.9,
			FreqX:      0.3 + rng.Float32()*0.5,
			FreqY:      0.4 + rng.Float32()*0.6,
			FreqZ:      0.3 + rng.Float32()*0.5,
			PhX:        rng.Float32() * 2 * math.Pi,
			PhY:        rng.Float32() * 2 * math.Pi,
			PhZ:        rng.Float32() * 2 * math.Pi,
			BlinkPhase: rng.Float32() * 2 * math.Pi,
			BlinkSpeed: 1.2 + rng.Float32()*1.6,
		}
		fly.X, fly.Y, fly.Z = fly.CX, fly.CY, fly.CZ
		if i < litCount {
			f.litMapper.NewEntity(&fly, &Glow{})
		} else {
			f.flyMapper.NewEntity(&fly)
		}
	}

	return f
}

// Advance updates twinkle brightness, firefly positions and blink state.
func (f *Field) Advance(dt float64) {
	f.t += dt
	t := float32(f.t)

	starQuery := f.starFilter.Query()
	for starQuery.Next() {
		s := starQuery.Get()
		s.Bright = s.Base + (1-s.Base)*0.5*(1+float32(math.Sin(float64(t*s.Speed+s.Phase))))
	}

	flyQuery := f.flyFilter.Query()
	for flyQuery.Next() {
		fly := flyQuery.Get()
		fly.X = fly.CX + fly.AmpX*sinf(t*fly.FreqX+fly.PhX)
		fly.Y = fly.CY + fly.AmpY*sinf(t*fly.FreqY+fly.PhY)
		fly.Z = fly.CZ + fly.AmpZ*sinf(t*fly.FreqZ+fly.PhZ)

		// Rectified sine: dark half the cycle, so light pools vanish
		// while the firefly is off-phase.
		blink := sinf(t*fly.BlinkSpeed + fly.BlinkPhase)
		if blink < 0 {
			blink = 0
		}
		fly.Bright = blink
	}
}

// EachStar calls fn for every star.
func (f *Field) EachStar(fn func(Star)) {
	query := f.starFilter.Query()
	for query.Next() {
		fn(*query.Get())
	}
}

// EachFirefly calls fn for every firefly.
func (f *Field) EachFirefly(fn func(Firefly)) {
	query := f.flyFilter.Query()
	for query.Next() {
		fn(*query.Get())
	}
}

// EachLit calls fn for every light-driving firefly.
func (f *Field) EachLit(fn func(Firefly)) {
	query := f.litFilter.Query()
	for query.Next() {
		fly, _ := query.Get()
		fn(*fly)
	}
}

// Counts returns the number of stars and fireflies.
func (f *Field) Counts() (stars, flies int) {
	f.EachStar(func(Star) { stars++ })
	f.EachFirefly(func(Firefly) { flies++ })
	return stars, flies
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
