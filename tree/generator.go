package tree

import (
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/geom"
	"github.com/pthm-cable/grove/growth"
)

const (
	// embryoThreshold is the growth level below which only a seed marker
	// is emitted.
	embryoThreshold = 0.02

	// trunkGnarlScale damps per-section perturbation on the trunk so the
	// silhouette stays visually stable.
	trunkGnarlScale = 0.25

	// minUpward is the vertical direction component below which non-trunk
	// branches are nudged back toward upright.
	minUpward = 0.3

	// fruitSeed seeds the independent placement stream so fruit positions
	// do not shift when unrelated parameters change call counts.
	fruitSeed = 7919

	// blossomVerseRef is the memorization progress at which a blossom
	// reaches full size.
	blossomVerseRef = 20
)

var up = r3.Vec{Y: 1}

// segment is one work-queue entry: a branch yet to be meshed.
type segment struct {
	pos    r3.Vec
	dir    r3.Vec
	length float64
	radius float64
	level  int
}

// pathPoint is a meshed position along a segment with its local direction.
type pathPoint struct {
	pos    r3.Vec
	dir    r3.Vec
	radius float64
}

// Generate expands a parameter set into tree geometry. Generation is
// iterative with a hard iteration cap; on hitting the cap a partial model
// is returned rather than an error.
func Generate(p growth.Parameters, cfg config.TreeConfig, rng *rand.Rand) *Model {
	m := &Model{}

	if p.Growth < embryoThreshold {
		m.Embryo = true
		return m
	}

	leafBase := geom.Color{R: 0.24, G: 0.42, B: 0.16}
	leafVivid := geom.Color{R: 0.14, G: 0.62, B: 0.20}
	leafColor := leafBase.Lerp(leafVivid, p.Vibrancy)

	maxFull := int(math.Floor(p.Levels))
	levelFrac := p.Levels - float64(maxFull)

	queue := []segment{{
		pos:    r3.Vec{},
		dir:    leanedUp(rng, 0.04),
		length: p.TrunkLength,
		radius: p.TrunkRadius,
		level:  0,
	}}

	iterations := 0
	for len(queue) > 0 {
		iterations++
		if iterations > cfg.MaxIterations {
			slog.Warn("branch generation hit iteration cap, returning partial tree",
				"cap", cfg.MaxIterations,
				"queued", len(queue),
				"sections", len(m.Sections),
			)
			m.Truncated = true
			break
		}

		seg := queue[0]
		queue = queue[1:]

		if seg.length < cfg.MinLength || seg.radius < cfg.MinRadius {
			continue
		}

		path := m.meshSegment(seg, p, cfg, rng)
		tip := path[len(path)-1]

		// Fractional levels spawn a partial final generation so branch
		// count grows smoothly with the growth scalar.
		childLevel := seg.level + 1
		spawn := childLevel < maxFull || (childLevel == maxFull && rng.Float64() < levelFrac)

		children := 0
		if spawn {
			children = probRound(p.ChildrenPerNode, rng)
		}

		if children == 0 {
			m.Tips = append(m.Tips, Tip{Pos: tip.pos, Dir: tip.dir})
		}

		terminal := !spawn
		if terminal || childLevel >= maxFull {
			m.attachLeaves(tip, p, leafColor, rng)
		}

		for i := 0; i < children; i++ {
			// Children attach 70-100% along the parent, not just at the
			// very tip, to avoid a broom silhouette.
			at := path[attachIndex(len(path), rng)]
			az := 2*math.Pi*float64(i)/float64(children) + (rng.Float64()-0.5)
			pitch := p.BranchAngle * (0.7 + 0.6*rng.Float64())

			queue = append(queue, segment{
				pos:    at.pos,
				dir:    pitched(at.dir, az, pitch),
				length: seg.length * p.LengthFalloff * (0.85 + 0.3*rng.Float64()),
				radius: at.radius * p.RadiusFalloff * (0.85 + 0.3*rng.Float64()),
				level:  childLevel,
			})
		}
	}

	m.placeFruits(p)
	return m
}

// meshSegment emits tapered cylinder sections along a perturbed path and
// returns the path points.
func (m *Model) meshSegment(seg segment, p growth.Parameters, cfg config.TreeConfig, rng *rand.Rand) []pathPoint {
	sections := cfg.Sections
	if sections < 1 {
		sections = 1
	}

	gnarl := p.Gnarliness
	if seg.level == 0 {
		gnarl *= trunkGnarlScale
	}

	secLen := seg.length / float64(sections)
	pos := seg.pos
	dir := seg.dir

	path := make([]pathPoint, 0, sections+1)
	path = append(path, pathPoint{pos: pos, dir: dir, radius: seg.radius})

	for i := 0; i < sections; i++ {
		t0 := float64(i) / float64(sections)
		t1 := float64(i+1) / float64(sections)
		r0 := geom.Lerp(seg.radius, seg.radius*p.Taper, t0)
		r1 := geom.Lerp(seg.radius, seg.radius*p.Taper, t1)

		// Gnarliness: small random rotation about an axis perpendicular
		// to the current direction.
		axis := perpendicular(dir, rng)
		dir = r3.NewRotation((rng.Float64()*2-1)*gnarl, axis).Rotate(dir)

		// Twist: slow rotation about the segment's own axis.
		if p.Twist > 0 {
			dir = r3.NewRotation(p.Twist/float64(sections), seg.dir).Rotate(dir)
		}

		// Branches self-correct toward upright when drooping.
		if seg.level > 0 && dir.Y < minUpward {
			dir = r3.Unit(r3.Add(dir, r3.Scale(0.15, up)))
		}

		next := r3.Add(pos, r3.Scale(secLen, dir))
		m.Sections = append(m.Sections, Section{
			Start:       pos,
			End:         next,
			StartRadius: r0,
			EndRadius:   r1,
			Level:       seg.level,
		})
		m.grow(pos)
		m.grow(next)

		pos = next
		path = append(path, pathPoint{pos: pos, dir: dir, radius: r1})
	}

	return path
}

// attachLeaves scatters a small cloud of leaves around a tip, plus an
// optional bloom when blooms are enabled.
func (m *Model) attachLeaves(tip pathPoint, p growth.Parameters, base geom.Color, rng *rand.Rand) {
	count := 3 + int(p.LeafDensity*9)
	spread := p.LeafSize * 2.2

	for i := 0; i < count; i++ {
		offset := r3.Vec{
			X: (rng.Float64()*2 - 1) * spread,
			Y: (rng.Float64()*2 - 1) * spread * 0.7,
			Z: (rng.Float64()*2 - 1) * spread,
		}
		jitter := (rng.Float64() - 0.5) * 0.12
		m.Leaves = append(m.Leaves, Leaf{
			Pos:   r3.Add(tip.pos, offset),
			Size:  p.LeafSize * (0.7 + 0.6*rng.Float64()),
			Axis:  perpendicular(up, rng),
			Angle: rng.Float64() * math.Pi,
			Color: geom.Color{
				R: geom.Clamp01(base.R + jitter*0.4),
				G: geom.Clamp01(base.G + jitter),
				B: geom.Clamp01(base.B + jitter*0.3),
			},
		})
	}

	if p.BloomEnabled && rng.Float64() < 0.25*p.BloomIntensity {
		m.Blooms = append(m.Blooms, Bloom{
			Pos:  r3.Add(tip.pos, r3.Vec{Y: p.LeafSize * 0.5}),
			Size: p.LeafSize * (0.5 + 0.4*rng.Float64()),
		})
	}
}

// placeFruits hangs one decoration per fruit descriptor on a terminal tip,
// using an independent fixed-seed stream.
func (m *Model) placeFruits(p growth.Parameters) {
	if len(m.Tips) == 0 || len(p.Fruits) == 0 {
		return
	}

	frng := rand.New(rand.NewSource(fruitSeed))
	for _, f := range p.Fruits {
		tip := m.Tips[frng.Intn(len(m.Tips))]
		node := FruitNode{Pos: tip.Pos, SurahID: f.SurahID}
		if f.Status == growth.MemoComplete {
			node.Golden = true
			node.Size = 0.16
		} else {
			prog := math.Min(float64(f.Progress)/blossomVerseRef, 1)
			node.Size = (0.05 + 0.11*prog) * (0.5 + 0.5*p.Growth)
		}
		m.Fruits = append(m.Fruits, node)
	}
}

// probRound rounds n probabilistically so fractional children-per-node
// values yield smoothly increasing branch counts.
func probRound(n float64, rng *rand.Rand) int {
	base := int(math.Floor(n))
	if rng.Float64() < n-float64(base) {
		base++
	}
	return base
}

// attachIndex picks a path index 70-100% along a segment. Rounds to the
// nearest index so the band covers the tip itself.
func attachIndex(pathLen int, rng *rand.Rand) int {
	t := 0.7 + 0.3*rng.Float64()
	idx := int(math.Round(t * float64(pathLen-1)))
	if idx >= pathLen {
		idx = pathLen - 1
	}
	return idx
}

// leanedUp returns a nearly vertical unit vector with a tiny random lean.
func leanedUp(rng *rand.Rand, lean float64) r3.Vec {
	return r3.Unit(r3.Vec{
		X: (rng.Float64()*2 - 1) * lean,
		Y: 1,
		Z: (rng.Float64()*2 - 1) * lean,
	})
}

// pitched rotates dir outward by pitch at azimuth az around dir's frame.
func pitched(dir r3.Vec, az, pitch float64) r3.Vec {
	u := stablePerp(dir)
	v := r3.Cross(dir, u)
	lateral := r3.Add(r3.Scale(math.Cos(az), u), r3.Scale(math.Sin(az), v))
	return r3.Unit(r3.Add(r3.Scale(math.Cos(pitch), dir), r3.Scale(math.Sin(pitch), lateral)))
}

// perpendicular returns a random unit vector perpendicular to dir.
func perpendicular(dir r3.Vec, rng *rand.Rand) r3.Vec {
	u := stablePerp(dir)
	v := r3.Cross(dir, u)
	az := rng.Float64() * 2 * math.Pi
	return r3.Unit(r3.Add(r3.Scale(math.Cos(az), u), r3.Scale(math.Sin(az), v)))
}

// stablePerp returns a deterministic unit vector perpendicular to dir.
func stablePerp(dir r3.Vec) r3.Vec {
	ref := r3.Vec{X: 1}
	if math.Abs(dir.X) > 0.9 {
		ref = r3.Vec{Z: 1}
	}
	return r3.Unit(r3.Cross(dir, ref))
}
