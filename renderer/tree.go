package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/geom"
	"github.com/pthm-cable/grove/sky"
	"github.com/pthm-cable/grove/tree"
)

var (
	barkColor    = geom.Color{R: 0.38, G: 0.27, B: 0.16}
	embryoColor  = geom.Color{R: 0.45, G: 0.33, B: 0.20}
	sproutColor  = geom.Color{R: 0.30, G: 0.55, B: 0.22}
	bloomColor   = geom.Color{R: 0.96, G: 0.88, B: 0.93}
	goldenColor  = geom.Color{R: 0.94, G: 0.76, B: 0.22}
	blossomColor = geom.Color{R: 0.93, G: 0.62, B: 0.72}
)

// drawTree renders the branch mesh with the current sway applied.
func (r *SceneRenderer) drawTree(t *tree.Model, env sky.State, swayX, swayZ float64) {
	if t.Embryo {
		r.drawEmbryo(env)
		return
	}

	rl.PushMatrix()
	rl.Rotatef(float32(swayX*180/math.Pi), 1, 0, 0)
	rl.Rotatef(float32(swayZ*180/math.Pi), 0, 0, 1)

	bark := toRL(shade(barkColor, env), 255)
	for _, s := range t.Sections {
		rl.DrawCylinderEx(vec3(s.Start), vec3(s.End),
			float32(s.StartRadius), float32(s.EndRadius), 7, bark)
	}

	for _, leaf := range t.Leaves {
		size := float32(leaf.Size)
		rl.DrawModelEx(r.leafModel, vec3(leaf.Pos),
			vec3(leaf.Axis), float32(leaf.Angle*180/math.Pi),
			rl.Vector3{X: size, Y: size * 0.45, Z: size},
			toRL(shade(leaf.Color, env), 255))
	}

	for _, b := range t.Blooms {
		rl.DrawSphere(vec3(b.Pos), float32(b.Size), toRL(shade(bloomColor, env), 255))
	}

	for _, f := range t.Fruits {
		c := blossomColor
		if f.Golden {
			c = goldenColor
		}
		rl.DrawSphere(vec3(f.Pos), float32(f.Size), toRL(shade(c, env), 255))
		if f.Golden {
			// Soft halo marks a completed surah.
			rl.DrawSphere(vec3(f.Pos), float32(f.Size)*1.5, rl.Fade(toRL(goldenColor, 255), 0.18))
		}
	}

	rl.PopMatrix()
}

// drawEmbryo renders the seed-stage marker: a small mound with a sprout nub.
func (r *SceneRenderer) drawEmbryo(env sky.State) {
	rl.DrawSphere(rl.Vector3{Y: 0.04}, 0.14, toRL(shade(embryoColor, env), 255))
	rl.DrawSphere(rl.Vector3{Y: 0.18}, 0.05, toRL(shade(sproutColor, env), 255))
}
