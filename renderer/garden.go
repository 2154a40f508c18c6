package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/garden"
	"github.com/pthm-cable/grove/geom"
	"github.com/pthm-cable/grove/sky"
)

var (
	stoneColor  = geom.Color{R: 0.55, G: 0.53, B: 0.50}
	accentColor = geom.Color{R: 0.92, G: 0.80, B: 0.35}
	stemColor   = geom.Color{R: 0.28, G: 0.46, B: 0.20}
)

// drawGarden renders ground decorations.
func (r *SceneRenderer) drawGarden(g *garden.Garden, env sky.State) {
	for _, t := range g.Tufts {
		pos := rl.Vector3{X: float32(t.X), Z: float32(t.Z)}
		// A tuft is a short cone of grass.
		rl.DrawCylinder(pos, 0, float32(t.Size)*0.4, float32(t.Size)*1.6, 5,
			toRL(shade(t.Color, env), 255))
	}

	for _, f := range g.Flowers {
		base := rl.Vector3{X: float32(f.X), Z: float32(f.Z)}
		head := rl.Vector3{X: float32(f.X), Y: float32(f.Size) * 2.4, Z: float32(f.Z)}
		rl.DrawCylinderEx(base, head, 0.012, 0.012, 4, toRL(shade(stemColor, env), 255))
		rl.DrawSphere(head, float32(f.Size), toRL(shade(f.Color, env), 255))
	}

	for _, s := range g.Shrubs {
		pos := rl.Vector3{X: float32(s.X), Y: float32(s.Size) * 0.55, Z: float32(s.Z)}
		rl.DrawSphere(pos, float32(s.Size), toRL(shade(s.Color, env), 255))
	}
}

// drawBadges renders the khatm marker ring.
func (r *SceneRenderer) drawBadges(badges []garden.Badge, env sky.State) {
	for _, b := range badges {
		pos := rl.Vector3{X: float32(b.X), Z: float32(b.Z)}
		color := stoneColor
		if b.Accent {
			color = accentColor
		}
		rl.DrawCylinder(pos, 0.10, 0.14, 0.12, 6, toRL(shade(color, env), 255))
		if b.Accent {
			glow := rl.Vector3{X: float32(b.X), Y: 0.12, Z: float32(b.Z)}
			rl.DrawSphere(glow, 0.22, rl.Fade(toRL(accentColor, 255), 0.22))
		}
	}
}
