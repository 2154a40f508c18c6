package growth

import (
	"reflect"
	"testing"

	"github.com/pthm-cable/grove/config"
)

func testGrowthCfg() config.GrowthConfig {
	return config.GrowthConfig{
		PageCeiling:   604,
		MinuteCeiling: 600,
		StreakCeiling: 30,
		KhatmCeiling:  10,
		PageWeight:    0.6,
		KhatmWeight:   0.4,
		MinuteLeafW:   0.7,
		PageLeafW:     0.3,
	}
}

func TestFromSnapshotDeterministic(t *testing.T) {
	snap := Snapshot{
		TotalPages:   250,
		TotalMinutes: 340,
		DayStreak:    12,
		Khatms:       2,
		Memo: map[int]MemoEntry{
			1:  {Status: MemoComplete, VersesMemorized: []int{1, 2, 3, 4, 5, 6, 7}},
			36: {Status: MemoActive, VerseConfidence: map[int]Confidence{1: ConfidenceGood, 2: ConfidenceWeak}},
		},
	}
	cfg := testGrowthCfg()

	a := FromSnapshot(snap, cfg)
	b := FromSnapshot(snap, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical snapshots produced different parameters:\n%+v\n%+v", a, b)
	}
}

func TestGrowthMonotonicInPages(t *testing.T) {
	cfg := testGrowthCfg()
	prev := FromSnapshot(Snapshot{TotalPages: 0, Khatms: 2}, cfg)
	for pages := 10; pages <= 700; pages += 10 {
		cur := FromSnapshot(Snapshot{TotalPages: pages, Khatms: 2}, cfg)
		if cur.Growth < prev.Growth {
			t.Errorf("growth decreased at pages=%d: %f -> %f", pages, prev.Growth, cur.Growth)
		}
		if cur.TrunkLength < prev.TrunkLength {
			t.Errorf("trunk length decreased at pages=%d: %f -> %f", pages, prev.TrunkLength, cur.TrunkLength)
		}
		if cur.TrunkRadius < prev.TrunkRadius {
			t.Errorf("trunk radius decreased at pages=%d: %f -> %f", pages, prev.TrunkRadius, cur.TrunkRadius)
		}
		prev = cur
	}
}

func TestGrowthBlendWeights(t *testing.T) {
	cfg := testGrowthCfg()

	// Full pages, no khatms: growth equals the page weight.
	p := FromSnapshot(Snapshot{TotalPages: 604}, cfg)
	if p.Growth != 0.6 {
		t.Errorf("expected growth 0.6 at full pages, got %f", p.Growth)
	}

	// Full pages and full khatms saturate growth.
	p = FromSnapshot(Snapshot{TotalPages: 604, Khatms: 10}, cfg)
	if p.Growth != 1.0 {
		t.Errorf("expected growth 1.0 at saturation, got %f", p.Growth)
	}
}

func TestGnarlinessInverseToGrowth(t *testing.T) {
	cfg := testGrowthCfg()
	young := FromSnapshot(Snapshot{TotalPages: 20}, cfg)
	old := FromSnapshot(Snapshot{TotalPages: 604, Khatms: 10}, cfg)
	if young.Gnarliness <= old.Gnarliness {
		t.Errorf("expected young tree gnarlier: young=%f old=%f", young.Gnarliness, old.Gnarliness)
	}
	if young.Twist >= old.Twist {
		t.Errorf("expected grown tree twistier: young=%f old=%f", young.Twist, old.Twist)
	}
}

func TestBloomGatedOnKhatms(t *testing.T) {
	cfg := testGrowthCfg()
	if p := FromSnapshot(Snapshot{TotalPages: 604}, cfg); p.BloomEnabled {
		t.Error("bloom enabled without any khatm")
	}
	p := FromSnapshot(Snapshot{TotalPages: 604, Khatms: 1}, cfg)
	if !p.BloomEnabled {
		t.Error("bloom not enabled after first khatm")
	}
	if p.BloomIntensity != 0.1 {
		t.Errorf("expected bloom intensity 0.1, got %f", p.BloomIntensity)
	}
}

func TestVibrancyFromStreakOnly(t *testing.T) {
	cfg := testGrowthCfg()
	a := FromSnapshot(Snapshot{TotalPages: 604, DayStreak: 15}, cfg)
	b := FromSnapshot(Snapshot{TotalPages: 10, DayStreak: 15}, cfg)
	if a.Vibrancy != b.Vibrancy {
		t.Errorf("vibrancy should depend on streak only: %f vs %f", a.Vibrancy, b.Vibrancy)
	}
	if a.Vibrancy != 0.5 {
		t.Errorf("expected vibrancy 0.5 at 15-day streak, got %f", a.Vibrancy)
	}
}

func TestFruitsExcludeDecayed(t *testing.T) {
	cfg := testGrowthCfg()
	snap := Snapshot{
		TotalPages: 100,
		Memo: map[int]MemoEntry{
			1:   {Status: MemoComplete, VersesMemorized: []int{1, 2, 3}},
			2:   {Status: MemoActive, VerseConfidence: map[int]Confidence{1: ConfidenceGood, 2: ConfidenceGood, 3: ConfidenceShaky}},
			114: {Status: MemoDecayed, VersesMemorized: []int{1, 2, 3, 4, 5, 6}},
		},
	}

	p := FromSnapshot(snap, cfg)
	if len(p.Fruits) != 2 {
		t.Fatalf("expected 2 fruits (decayed excluded), got %d", len(p.Fruits))
	}

	// Sorted by surah: entry 1 then entry 2.
	if p.Fruits[0].SurahID != 1 || p.Fruits[1].SurahID != 2 {
		t.Errorf("fruits not sorted by surah: %+v", p.Fruits)
	}
	if p.Fruits[0].Progress != 3 {
		t.Errorf("legacy schema progress: expected 3, got %d", p.Fruits[0].Progress)
	}
	if p.Fruits[1].Progress != 2 {
		t.Errorf("confidence schema counts good verses only: expected 2, got %d", p.Fruits[1].Progress)
	}
}

func TestSeedGranularity(t *testing.T) {
	cfg := testGrowthCfg()

	// Seed is stable within a 10-page band.
	a := FromSnapshot(Snapshot{TotalPages: 100}, cfg)
	b := FromSnapshot(Snapshot{TotalPages: 109}, cfg)
	if a.Seed != b.Seed {
		t.Errorf("seed changed within page band: %d vs %d", a.Seed, b.Seed)
	}

	c := FromSnapshot(Snapshot{TotalPages: 110}, cfg)
	if a.Seed == c.Seed {
		t.Error("seed should change at 10-page granularity")
	}

	d := FromSnapshot(Snapshot{TotalPages: 100, Khatms: 1}, cfg)
	if a.Seed == d.Seed {
		t.Error("seed should change with khatm count")
	}
}

func TestNegativeStatsClampToZero(t *testing.T) {
	cfg := testGrowthCfg()
	p := FromSnapshot(Snapshot{TotalPages: -50, TotalMinutes: -10, DayStreak: -3, Khatms: -1}, cfg)
	if p.Growth != 0 {
		t.Errorf("expected zero growth for negative stats, got %f", p.Growth)
	}
	if p.LeafDensity != 0 || p.Vibrancy != 0 {
		t.Errorf("expected zero foliage values, got density=%f vibrancy=%f", p.LeafDensity, p.Vibrancy)
	}
}

func TestOverrideTagging(t *testing.T) {
	cfg := testGrowthCfg()
	p := FromSnapshot(Snapshot{TotalPages: 300}, cfg)
	if p.Source != SourceSnapshot {
		t.Errorf("expected SourceSnapshot, got %v", p.Source)
	}
	o := Override(p)
	if o.Source != SourceOverride {
		t.Errorf("expected SourceOverride, got %v", o.Source)
	}
	if o.Growth != p.Growth {
		t.Errorf("override must not alter values: %f vs %f", o.Growth, p.Growth)
	}
}
