// Package scene owns the live scene graph: the tree, garden, badge and sky
// nodes, and the per-frame ambient motion that animates them.
package scene

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/pthm-cable/grove/ambient"
	"github.com/pthm-cable/grove/camera"
	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/garden"
	"github.com/pthm-cable/grove/growth"
	"github.com/pthm-cable/grove/sky"
	"github.com/pthm-cable/grove/tree"
)

// nightSeed keys ambient-field spawning so each nightfall lays out the
// same stars and fireflies.
const nightSeed = 4211

// Composer exclusively owns all scene nodes. Sub-generators are pure
// factories; the composer swaps whole groups in and out synchronously, so
// no half-built state is ever observable.
type Composer struct {
	cfg *config.Config

	snapshot     growth.Snapshot
	haveSnapshot bool
	override     *growth.Parameters

	params    growth.Parameters
	stageInfo growth.StageInfo

	treeModel   *tree.Model
	gardenModel *garden.Garden
	badges      []garden.Badge

	skyModel *sky.Model
	skyState sky.State
	night    *ambient.Field

	cam *camera.Camera

	// hourOverride < 0 means the system clock drives time-of-day.
	hourOverride float64
	clock        func() time.Time

	elapsed      float64
	swayX, swayZ float64
}

// NewComposer creates a composer with an empty scene and default camera.
func NewComposer(cfg *config.Config) *Composer {
	c := &Composer{
		cfg:          cfg,
		skyModel:     sky.New(cfg.Sky),
		cam:          camera.New(),
		hourOverride: -1,
		clock:        time.Now,
	}
	c.refreshSky()
	return c
}

// SetSnapshot replaces the engagement snapshot and rebuilds the scene
// groups whose inputs changed. A developer override, when active, keeps
// driving the tree until cleared.
func (c *Composer) SetSnapshot(s growth.Snapshot) {
	prev := c.snapshot
	first := !c.haveSnapshot
	c.snapshot = s
	c.haveSnapshot = true

	if c.override == nil && (first || growthChanged(prev, s)) {
		c.rebuildTree()
	}
	if first || prev.TotalMinutes != s.TotalMinutes || prev.DayStreak != s.DayStreak {
		c.rebuildGarden()
	}
	if first || prev.Khatms != s.Khatms {
		c.badges = garden.Badges(s.Khatms, c.cfg.Badges)
	}

	c.stageInfo = growth.ClassifyStage(s.TotalPages, s.Khatms)
}

// SetOverride installs (or, with nil, clears) a developer parameter
// override. The tree is rebuilt from the new source immediately.
func (c *Composer) SetOverride(p *growth.Parameters) {
	if p != nil {
		o := growth.Override(*p)
		c.override = &o
	} else {
		c.override = nil
	}
	c.rebuildTree()
}

// Override returns the active developer override, or nil.
func (c *Composer) Override() *growth.Parameters {
	return c.override
}

// SetHour installs an explicit hour-of-day override in [0,24).
func (c *Composer) SetHour(h float64) {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	c.hourOverride = h
	c.refreshSky()
}

// ClearHour returns time-of-day control to the system clock.
func (c *Composer) ClearHour() {
	c.hourOverride = -1
	c.refreshSky()
}

// HourOverride returns the active hour override, or a negative value when
// the clock drives time.
func (c *Composer) HourOverride() float64 {
	return c.hourOverride
}

// SetSurfaceSize records the host drawing surface dimensions.
func (c *Composer) SetSurfaceSize(width, height int) {
	c.cam.SetAspect(width, height)
}

// Advance runs one animation frame: sway, camera orbit, sky refresh and
// ambient life updates. dt is the elapsed time in seconds.
func (c *Composer) Advance(dt float64) {
	c.elapsed += dt

	// Two independent low-frequency sinusoids on two rotation axes.
	amt := c.cfg.Scene.SwayAmount
	c.swayX = math.Sin(c.elapsed*0.5) * amt
	c.swayZ = math.Sin(c.elapsed*0.31+1.7) * amt * 0.8

	c.cam.Orbit(dt, c.cfg.Scene.OrbitSpeed)

	c.refreshSky()
	if c.night != nil {
		c.night.Advance(dt)
	}
}

// refreshSky resamples the environment and toggles night elements when the
// day/night boundary is crossed.
func (c *Composer) refreshSky() {
	c.skyState = c.skyModel.At(c.effectiveHour())

	if c.skyState.Day {
		c.night = nil
		return
	}
	if c.night == nil {
		s := c.cfg.Scene
		c.night = ambient.NewField(s.StarCount, s.FireflyCount, s.LitFireflies,
			rand.New(rand.NewSource(nightSeed)))
	}
}

// rebuildTree regenerates the tree group from the active parameter source
// and reframes the camera to the new bounds.
func (c *Composer) rebuildTree() {
	if c.override != nil {
		c.params = *c.override
	} else {
		c.params = growth.FromSnapshot(c.snapshot, c.cfg.Growth)
	}

	rng := rand.New(rand.NewSource(c.params.Seed))
	c.treeModel = tree.Generate(c.params, c.cfg.Tree, rng)

	boundsMin, boundsMax, ok := c.treeModel.Bounds()
	if !ok {
		slog.Debug("tree bounds unavailable, camera using default framing")
	}
	c.cam.Fit(boundsMin, boundsMax, ok)
}

// rebuildGarden regenerates the ground decoration group.
func (c *Composer) rebuildGarden() {
	vibrancy := 0.0
	if c.cfg.Growth.StreakCeiling > 0 {
		vibrancy = math.Min(float64(c.snapshot.DayStreak)/float64(c.cfg.Growth.StreakCeiling), 1)
	}
	c.gardenModel = garden.Build(c.snapshot.TotalMinutes, vibrancy, c.cfg.Garden)
}

// effectiveHour returns the override hour, or the wall-clock hour.
func (c *Composer) effectiveHour() float64 {
	if c.hourOverride >= 0 {
		return c.hourOverride
	}
	now := c.clock()
	return float64(now.Hour()) + float64(now.Minute())/60 + float64(now.Second())/3600
}

// growthChanged reports whether the fields that shape the tree differ.
func growthChanged(a, b growth.Snapshot) bool {
	if a.TotalPages != b.TotalPages || a.Khatms != b.Khatms ||
		a.TotalMinutes != b.TotalMinutes || a.DayStreak != b.DayStreak {
		return true
	}
	return !memoEqual(a.Memo, b.Memo)
}

// memoEqual compares memo maps by entry status and progress, the two
// fields that reach the geometry.
func memoEqual(a, b map[int]growth.MemoEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for id, ea := range a {
		eb, ok := b[id]
		if !ok || ea.Status != eb.Status || ea.Progress() != eb.Progress() {
			return false
		}
	}
	return true
}

// Accessors for the renderer and host UI.

func (c *Composer) Params() growth.Parameters    { return c.params }
func (c *Composer) Stage() growth.StageInfo      { return c.stageInfo }
func (c *Composer) Snapshot() growth.Snapshot    { return c.snapshot }
func (c *Composer) Tree() *tree.Model            { return c.treeModel }
func (c *Composer) Garden() *garden.Garden       { return c.gardenModel }
func (c *Composer) Badges() []garden.Badge       { return c.badges }
func (c *Composer) Sky() sky.State               { return c.skyState }
func (c *Composer) Night() *ambient.Field        { return c.night }
func (c *Composer) Camera() *camera.Camera       { return c.cam }
func (c *Composer) Sway() (x, z float64)         { return c.swayX, c.swayZ }
