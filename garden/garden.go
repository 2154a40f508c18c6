// Package garden scatters ground decorations and khatm markers around the
// tree. Layout is keyed only to engagement level and a fixed seed, so the
// same stats always produce the same garden.
package garden

import (
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/geom"
)

const (
	// scatterSeed keys the placement stream; independent of the tree's
	// shape seed so the garden never reshuffles on a tree rebuild.
	scatterSeed = 1327

	// patchSeed keys the opensimplex density field gating tuft placement.
	patchSeed = 91

	// patchFreq is the noise sampling frequency over ground coordinates.
	patchFreq = 0.35

	// patchThreshold is the minimum density-field value at which a tuft
	// takes root.
	patchThreshold = 0.35
)

// Tuft is a clump of grass blades.
type Tuft struct {
	X, Z  float64
	Size  float64
	Angle float64
	Color geom.Color
}

// Flower is a single wildflower.
type Flower struct {
	X, Z  float64
	Size  float64
	Color geom.Color
}

// Shrub is a low rounded bush.
type Shrub struct {
	X, Z  float64
	Size  float64
	Color geom.Color
}

// Garden is the generated ground decoration set.
type Garden struct {
	Level   int
	Tufts   []Tuft
	Flowers []Flower
	Shrubs  []Shrub
}

// kindCounts maps a garden level to decoration counts.
type kindCounts struct {
	tufts, flowers, shrubs int
}

var levelCounts = []kindCounts{
	{6, 0, 0},
	{14, 2, 0},
	{26, 5, 1},
	{40, 9, 3},
	{60, 14, 5},
	{80, 20, 8},
}

var flowerColors = []geom.Color{
	{R: 0.92, G: 0.80, B: 0.25},
	{R: 0.88, G: 0.42, B: 0.52},
	{R: 0.62, G: 0.48, B: 0.85},
	{R: 0.95, G: 0.95, B: 0.90},
}

// Level discretizes totalMinutes against the configured thresholds.
func Level(totalMinutes int, thresholds []int) int {
	level := 0
	for _, t := range thresholds {
		if totalMinutes >= t {
			level++
		}
	}
	return level
}

// Build scatters decorations for the given engagement. vibrancy is the
// streak-normalized color factor in [0,1].
func Build(totalMinutes int, vibrancy float64, cfg config.GardenConfig) *Garden {
	level := Level(totalMinutes, cfg.MinuteLevels)
	counts := levelCounts[min(level, len(levelCounts)-1)]

	g := &Garden{Level: level}
	rng := rand.New(rand.NewSource(scatterSeed))
	patch := opensimplex.NewNormalized(patchSeed)

	grassDull := geom.Color{R: 0.35, G: 0.46, B: 0.22}
	grassVivid := geom.Color{R: 0.28, G: 0.62, B: 0.20}
	grass := grassDull.Lerp(grassVivid, vibrancy)

	// Tufts take root only where the density field is thick enough, so
	// the meadow grows in patches rather than an even sprinkle.
	attempts := counts.tufts * 6
	for i := 0; i < attempts && len(g.Tufts) < counts.tufts; i++ {
		x, z := scatter(rng, cfg)
		if patch.Eval2(x*patchFreq, z*patchFreq) < patchThreshold {
			continue
		}
		g.Tufts = append(g.Tufts, Tuft{
			X: x, Z: z,
			Size:  0.10 + rng.Float64()*0.12,
			Angle: rng.Float64() * 2 * math.Pi,
			Color: jitterColor(grass, rng, 0.05),
		})
	}

	for i := 0; i < counts.flowers; i++ {
		x, z := scatter(rng, cfg)
		g.Flowers = append(g.Flowers, Flower{
			X: x, Z: z,
			Size:  0.05 + rng.Float64()*0.05,
			Color: flowerColors[rng.Intn(len(flowerColors))],
		})
	}

	shrubDull := geom.Color{R: 0.26, G: 0.38, B: 0.18}
	shrubVivid := geom.Color{R: 0.20, G: 0.52, B: 0.17}
	shrub := shrubDull.Lerp(shrubVivid, vibrancy)
	for i := 0; i < counts.shrubs; i++ {
		x, z := scatter(rng, cfg)
		g.Shrubs = append(g.Shrubs, Shrub{
			X: x, Z: z,
			Size:  0.22 + rng.Float64()*0.2,
			Color: jitterColor(shrub, rng, 0.04),
		})
	}

	return g
}

// scatter picks a random position in the annulus around the tree.
func scatter(rng *rand.Rand, cfg config.GardenConfig) (x, z float64) {
	angle := rng.Float64() * 2 * math.Pi
	radius := cfg.InnerRadius + rng.Float64()*(cfg.OuterRadius-cfg.InnerRadius)
	return math.Cos(angle) * radius, math.Sin(angle) * radius
}

func jitterColor(c geom.Color, rng *rand.Rand, amount float64) geom.Color {
	j := (rng.Float64()*2 - 1) * amount
	return geom.Color{
		R: geom.Clamp01(c.R + j*0.5),
		G: geom.Clamp01(c.G + j),
		B: geom.Clamp01(c.B + j*0.3),
	}
}
