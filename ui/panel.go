// Package ui provides the interactive developer panel: snapshot sliders,
// an hour-of-day scrubber and a raw growth-parameter override mode.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/growth"
	"github.com/pthm-cable/grove/scene"
)

const (
	panelWidth  = 280
	sliderWidth = panelWidth - 70
)

// Panel is the immediate-mode developer control surface. Toggled with Tab.
type Panel struct {
	cfg     *config.Config
	visible bool

	snap growth.Snapshot

	hourOn bool
	hour   float32

	overrideOn bool
	ovGrowth   float32
	ovLevels   float32
	ovChildren float32
	ovGnarl    float32
	ovLeaf     float32
	ovBloom    float32
}

// NewPanel creates the panel seeded with the starting snapshot.
func NewPanel(cfg *config.Config, snap growth.Snapshot) *Panel {
	p := &Panel{cfg: cfg, snap: snap, hour: 12}
	base := growth.FromSnapshot(snap, cfg.Growth)
	p.ovGrowth = float32(base.Growth)
	p.ovLevels = float32(base.Levels)
	p.ovChildren = float32(base.ChildrenPerNode)
	p.ovGnarl = float32(base.Gnarliness)
	p.ovLeaf = float32(base.LeafDensity)
	p.ovBloom = float32(base.BloomIntensity)
	return p
}

// Draw handles input and renders the panel, pushing any edits into the
// composer. Must run between rl.BeginDrawing and rl.EndDrawing.
func (p *Panel) Draw(c *scene.Composer) {
	if rl.IsKeyPressed(rl.KeyTab) {
		p.visible = !p.visible
	}
	if !p.visible {
		rl.DrawText("[Tab] dev panel", int32(p.cfg.Screen.Width)-130, 10, 14, rl.Gray)
		return
	}

	x := float32(p.cfg.Screen.Width - panelWidth - 10)
	y := float32(10)

	rl.DrawRectangle(int32(x)-10, 0, panelWidth+20, int32(p.cfg.Screen.Height), rl.Fade(rl.Black, 0.55))
	rl.DrawText("Grove Dev Panel", int32(x), int32(y), 20, rl.RayWhite)
	y += 30

	y = p.snapshotControls(c, x, y)
	y = p.timeControls(c, x, y)
	p.overrideControls(c, x, y)
}

// snapshotControls edits the engagement snapshot directly.
func (p *Panel) snapshotControls(c *scene.Composer, x, y float32) float32 {
	rl.DrawText("Engagement", int32(x), int32(y), 16, rl.SkyBlue)
	y += 22

	changed := false

	pages := p.slider(x, &y, "Pages", float32(p.snap.TotalPages), 0, 1208)
	if int(pages) != p.snap.TotalPages {
		p.snap.TotalPages = int(pages)
		changed = true
	}

	minutes := p.slider(x, &y, "Minutes", float32(p.snap.TotalMinutes), 0, 2000)
	if int(minutes) != p.snap.TotalMinutes {
		p.snap.TotalMinutes = int(minutes)
		changed = true
	}

	streak := p.slider(x, &y, "Streak", float32(p.snap.DayStreak), 0, 60)
	if int(streak) != p.snap.DayStreak {
		p.snap.DayStreak = int(streak)
		changed = true
	}

	khatms := p.slider(x, &y, "Khatms", float32(p.snap.Khatms), 0, 15)
	if int(khatms) != p.snap.Khatms {
		p.snap.Khatms = int(khatms)
		changed = true
	}

	if changed {
		c.SetSnapshot(p.snap)
	}
	return y + 8
}

// timeControls scrubs the hour-of-day override.
func (p *Panel) timeControls(c *scene.Composer, x, y float32) float32 {
	rl.DrawText("Time of Day", int32(x), int32(y), 16, rl.SkyBlue)
	y += 22

	label := "Use Override"
	if p.hourOn {
		label = "Use Clock"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 24}, label) {
		p.hourOn = !p.hourOn
		if p.hourOn {
			c.SetHour(float64(p.hour))
		} else {
			c.ClearHour()
		}
	}
	y += 30

	if p.hourOn {
		hour := p.slider(x, &y, "Hour", p.hour, 0, 23.99)
		if hour != p.hour {
			p.hour = hour
			c.SetHour(float64(p.hour))
		}
	}
	return y + 8
}

// overrideControls toggles and edits a raw growth-parameter override.
func (p *Panel) overrideControls(c *scene.Composer, x, y float32) {
	rl.DrawText("Growth Override", int32(x), int32(y), 16, rl.SkyBlue)
	y += 22

	label := "Enable Override"
	if p.overrideOn {
		label = "Disable Override"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 140, Height: 24}, label) {
		p.overrideOn = !p.overrideOn
		if p.overrideOn {
			p.pushOverride(c)
		} else {
			c.SetOverride(nil)
		}
	}
	y += 30

	if !p.overrideOn {
		return
	}

	changed := false
	for _, s := range []struct {
		name     string
		val      *float32
		min, max float32
	}{
		{"Growth", &p.ovGrowth, 0, 1},
		{"Levels", &p.ovLevels, 1, 6},
		{"Children", &p.ovChildren, 1, 5},
		{"Gnarl", &p.ovGnarl, 0, 0.8},
		{"Leaves", &p.ovLeaf, 0, 1},
		{"Bloom", &p.ovBloom, 0, 1},
	} {
		v := p.slider(x, &y, s.name, *s.val, s.min, s.max)
		if v != *s.val {
			*s.val = v
			changed = true
		}
	}
	if changed {
		p.pushOverride(c)
	}
}

// pushOverride derives a full parameter set from the snapshot, overlays
// the slider values and installs it as the developer override.
func (p *Panel) pushOverride(c *scene.Composer) {
	params := growth.FromSnapshot(p.snap, p.cfg.Growth)
	params.Growth = float64(p.ovGrowth)
	params.Levels = float64(p.ovLevels)
	params.ChildrenPerNode = float64(p.ovChildren)
	params.Gnarliness = float64(p.ovGnarl)
	params.LeafDensity = float64(p.ovLeaf)
	params.BloomIntensity = float64(p.ovBloom)
	params.BloomEnabled = p.ovBloom > 0
	c.SetOverride(&params)
}

// slider draws one labeled slider row and returns the (possibly changed)
// value, advancing y past the row.
func (p *Panel) slider(x float32, y *float32, name string, val, min, max float32) float32 {
	rl.DrawText(name, int32(x), int32(*y+4), 14, rl.LightGray)
	v := gui.SliderBar(
		rl.Rectangle{X: x + 60, Y: *y, Width: sliderWidth - 60, Height: 18},
		"", "", val, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.1f", v), int32(x+sliderWidth+8), int32(*y+2), 14, rl.LightGray)
	*y += 26
	return v
}
