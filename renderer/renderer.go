// Package renderer draws the composed scene with raylib. It owns the GPU
// resources (shared meshes) and nothing else; all scene state lives in the
// composer.
package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/grove/geom"
	"github.com/pthm-cable/grove/scene"
	"github.com/pthm-cable/grove/sky"
)

// SceneRenderer draws the grove scene each frame.
type SceneRenderer struct {
	leafModel   rl.Model
	initialized bool
}

// NewSceneRenderer creates an uninitialized renderer. Init must be called
// after the raylib window exists.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

// Init loads shared GPU resources. Safe to call more than once.
func (r *SceneRenderer) Init() {
	if r.initialized {
		return
	}
	mesh := rl.GenMeshSphere(1, 8, 10)
	r.leafModel = rl.LoadModelFromMesh(mesh)
	r.initialized = true
}

// Unload releases GPU resources. The renderer draws nothing afterwards.
func (r *SceneRenderer) Unload() {
	if !r.initialized {
		return
	}
	rl.UnloadModel(r.leafModel)
	r.initialized = false
}

// Draw renders one frame of the composed scene. Must be called between
// rl.BeginDrawing and rl.EndDrawing.
func (r *SceneRenderer) Draw(c *scene.Composer) {
	if !r.initialized {
		slog.Error("scene renderer used before Init, skipping frame")
		return
	}

	env := c.Sky()
	rl.ClearBackground(toRL(env.Background, 255))

	cam := c.Camera()
	rlCam := rl.Camera3D{
		Position:   vec3(cam.Position()),
		Target:     vec3(cam.Target),
		Up:         rl.Vector3{Y: 1},
		Fovy:       float32(cam.Fovy),
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(rlCam)

	r.drawGround(env)
	r.drawCelestialBody(env)
	if night := c.Night(); night != nil {
		r.drawNight(night)
	}
	if g := c.Garden(); g != nil {
		r.drawGarden(g, env)
	}
	r.drawBadges(c.Badges(), env)
	if t := c.Tree(); t != nil {
		swayX, swayZ := c.Sway()
		r.drawTree(t, env, swayX, swayZ)
	}

	rl.EndMode3D()

	r.drawHUD(c)
}

// shade applies the sky's ambient lighting to a material color.
func shade(c geom.Color, env sky.State) geom.Color {
	lit := c.Scale(0.35 + 0.65*env.Ambient)
	// A touch of sun color carries warm sunrise/sunset light onto surfaces.
	return lit.Lerp(env.SunColor, 0.08*env.SunIntensity)
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toRL(c geom.Color, alpha uint8) rl.Color {
	return rl.NewColor(
		uint8(geom.Clamp01(c.R)*255),
		uint8(geom.Clamp01(c.G)*255),
		uint8(geom.Clamp01(c.B)*255),
		alpha,
	)
}
