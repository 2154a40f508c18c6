package growth

import (
	"math"
	"sort"

	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/geom"
)

// Source records how a parameter set was constructed.
type Source int

const (
	// SourceSnapshot means the parameters were derived from an engagement snapshot.
	SourceSnapshot Source = iota
	// SourceOverride means the parameters were supplied directly (developer mode).
	SourceOverride
)

// Fruit describes one memorization decoration to hang on a terminal tip.
type Fruit struct {
	SurahID  int
	Progress int // Verses rated good (or legacy memorized count)
	Status   MemoStatus
}

// Parameters is the continuous parameter set consumed by the branch
// generator. Every scalar is a clamped monotone function of the snapshot;
// identical snapshots always yield identical parameters.
type Parameters struct {
	Source Source

	// Overall growth driver in [0,1].
	Growth float64

	// Trunk and branching structure.
	TrunkLength     float64
	TrunkRadius     float64
	Levels          float64 // Continuous; fractional part spawns a partial generation
	ChildrenPerNode float64 // Continuous; probabilistically rounded
	BranchAngle     float64 // Radians outward pitch for children
	LengthFalloff   float64 // Child length multiplier
	RadiusFalloff   float64 // Child radius multiplier
	Taper           float64 // End/start radius ratio along one segment

	// Organic texture.
	Gnarliness float64 // Per-section random rotational perturbation
	Twist      float64 // Slow rotation around the segment axis

	// Foliage.
	LeafDensity float64
	LeafSize    float64
	Vibrancy    float64 // Color saturation driver, streak-based

	// Blooms.
	BloomEnabled   bool
	BloomIntensity float64

	// Shape seed; changes only at page/khatm granularity so the silhouette
	// is stable for a given progress level.
	Seed int64

	Fruits []Fruit
}

// FromSnapshot derives parameters from an engagement snapshot. All paths
// produce a valid parameter set; a zero snapshot yields a seed-stage tree.
func FromSnapshot(s Snapshot, cfg config.GrowthConfig) Parameters {
	pageNorm := norm(s.TotalPages, cfg.PageCeiling)
	minuteNorm := norm(s.TotalMinutes, cfg.MinuteCeiling)
	streakNorm := norm(s.DayStreak, cfg.StreakCeiling)
	khatmNorm := norm(s.Khatms, cfg.KhatmCeiling)

	g := geom.Clamp01(cfg.PageWeight*pageNorm + cfg.KhatmWeight*khatmNorm)

	p := Parameters{
		Source:          SourceSnapshot,
		Growth:          g,
		TrunkLength:     1.4 + g*4.6,
		TrunkRadius:     0.08 + g*0.34,
		Levels:          1.0 + g*4.5,
		ChildrenPerNode: 2.0 + g*1.8,
		BranchAngle:     0.5 + g*0.25,
		LengthFalloff:   0.62 + g*0.13,
		RadiusFalloff:   0.58 + g*0.12,
		Taper:           0.55 + g*0.2,
		Gnarliness:      0.12 + (1-g)*0.25,
		Twist:           g * 0.3,
		LeafDensity:     geom.Clamp01(cfg.MinuteLeafW*minuteNorm + cfg.PageLeafW*pageNorm),
		LeafSize:        0.10 + g*0.16,
		Vibrancy:        streakNorm,
		BloomEnabled:    s.Khatms >= 1,
		BloomIntensity:  khatmNorm,
		Seed:            int64(math.Floor(float64(s.TotalPages)*0.1 + float64(s.Khatms)*1000)),
	}

	// One fruit per surah still held in memory; decayed entries bear nothing.
	for id, entry := range s.Memo {
		if entry.Status == MemoDecayed {
			continue
		}
		p.Fruits = append(p.Fruits, Fruit{
			SurahID:  id,
			Progress: entry.Progress(),
			Status:   entry.Status,
		})
	}
	sortFruits(p.Fruits)

	return p
}

// Override tags a directly supplied parameter set as developer-provided.
// The values themselves are taken as-is; only the provenance changes.
func Override(p Parameters) Parameters {
	p.Source = SourceOverride
	return p
}

// sortFruits orders fruits by surah so map iteration order never leaks into
// placement.
func sortFruits(fruits []Fruit) {
	sort.Slice(fruits, func(i, j int) bool {
		return fruits[i].SurahID < fruits[j].SurahID
	})
}

// norm clamps value/ceiling to [0,1]. Negative values normalize to zero.
func norm(value, ceiling int) float64 {
	if ceiling <= 0 {
		return 0
	}
	return geom.Clamp01(float64(value) / float64(ceiling))
}
