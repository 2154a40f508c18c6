package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/ambient"
	"github.com/pthm-cable/grove/geom"
	"github.com/pthm-cable/grove/sky"
)

const groundRadius = 8.5

var (
	groundColor  = geom.Color{R: 0.30, G: 0.40, B: 0.22}
	fireflyColor = geom.Color{R: 0.98, G: 0.92, B: 0.45}
	starColor    = geom.Color{R: 0.95, G: 0.95, B: 1.00}
)

// drawGround renders the ground disc, tinted by the hemisphere light and
// fading into the fog color at the rim.
func (r *SceneRenderer) drawGround(env sky.State) {
	base := toRL(shade(groundColor, env).Lerp(env.HemiGround, 0.25), 255)
	rl.DrawCylinder(rl.Vector3{Y: -0.08}, groundRadius, groundRadius, 0.08, 32, base)

	// Fog skirt softens the ground edge into the horizon.
	rim := toRL(env.Fog, 255)
	rl.DrawCylinder(rl.Vector3{Y: -0.1}, groundRadius+3, groundRadius+3, 0.02, 32, rl.Fade(rim, 0.55))
}

// drawCelestialBody renders the sun or moon with a soft halo.
func (r *SceneRenderer) drawCelestialBody(env sky.State) {
	pos := vec3(env.BodyPos)
	body := toRL(env.BodyColor, 255)
	rl.DrawSphere(pos, float32(env.BodySize), body)
	rl.DrawSphere(pos, float32(env.BodySize)*1.6, rl.Fade(body, 0.20))
}

// drawNight renders stars, fireflies and the light pools driven by the
// glowing subset of fireflies.
func (r *SceneRenderer) drawNight(field *ambient.Field) {
	star := toRL(starColor, 255)
	field.EachStar(func(s ambient.Star) {
		pos := rl.Vector3{X: s.X, Y: s.Y, Z: s.Z}
		rl.DrawSphere(pos, s.Size, rl.Fade(star, s.Bright))
	})

	fly := toRL(fireflyColor, 255)
	field.EachFirefly(func(f ambient.Firefly) {
		pos := rl.Vector3{X: f.X, Y: f.Y, Z: f.Z}
		rl.DrawSphere(pos, 0.028, rl.Fade(fly, 0.25+0.75*f.Bright))
		if f.Bright > 0.05 {
			rl.DrawSphere(pos, 0.028+0.09*f.Bright, rl.Fade(fly, 0.18*f.Bright))
		}
	})

	// Light pools track their firefly's blink: no glow while off-phase.
	field.EachLit(func(f ambient.Firefly) {
		if f.Bright <= 0.05 {
			return
		}
		pool := rl.Vector3{X: f.X, Y: 0.015, Z: f.Z}
		rl.DrawCylinder(pool, 0.6*f.Bright, 0.6*f.Bright, 0.01, 16, rl.Fade(fly, 0.20*f.Bright))
	})
}
