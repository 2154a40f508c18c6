package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/scene"
)

// drawHUD renders the stage banner and engagement summary.
func (r *SceneRenderer) drawHUD(c *scene.Composer) {
	info := c.Stage()
	snap := c.Snapshot()

	rl.DrawText(info.Stage.Name, 10, 10, 28, rl.RayWhite)
	if info.Next != nil {
		rl.DrawText(fmt.Sprintf("%.0f%% to %s", info.Progress*100, info.Next.Name),
			10, 44, 18, rl.LightGray)
	}

	rl.DrawText(fmt.Sprintf("Pages: %d  Minutes: %d  Streak: %d  Khatms: %d",
		snap.TotalPages, snap.TotalMinutes, snap.DayStreak, snap.Khatms),
		10, 70, 16, rl.LightGray)

	if p := c.Override(); p != nil {
		rl.DrawText("DEV OVERRIDE", 10, 92, 16, rl.Yellow)
	}
	if t := c.Tree(); t != nil && t.Truncated {
		rl.DrawText("partial tree (iteration cap)", 10, 112, 14, rl.Orange)
	}
}
