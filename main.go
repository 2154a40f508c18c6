package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/growth"
	"github.com/pthm-cable/grove/renderer"
	"github.com/pthm-cable/grove/scene"
	"github.com/pthm-cable/grove/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	snapshotPath := flag.String("snapshot", "", "Path to an engagement snapshot JSON file")
	pages := flag.Int("pages", 0, "Total pages read (ignored when -snapshot is set)")
	minutes := flag.Int("minutes", 0, "Total minutes spent")
	streak := flag.Int("streak", 0, "Current day streak")
	khatms := flag.Int("khatms", 0, "Completed read-throughs")
	hour := flag.Float64("hour", -1, "Hour-of-day override in [0,24) (-1 = system clock)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	snap, err := loadSnapshot(*snapshotPath, *pages, *minutes, *streak, *khatms)
	if err != nil {
		slog.Error("failed to load snapshot", "path", *snapshotPath, "error", err)
		os.Exit(1)
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Reading Grove")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	composer := scene.NewComposer(cfg)
	composer.SetSurfaceSize(cfg.Screen.Width, cfg.Screen.Height)
	composer.SetSnapshot(snap)
	if *hour >= 0 {
		composer.SetHour(*hour)
	}

	r := renderer.NewSceneRenderer()
	r.Init()
	defer r.Unload()

	panel := ui.NewPanel(cfg, snap)

	slog.Info("scene ready",
		"stage", composer.Stage().Stage.Name,
		"growth", composer.Params().Growth,
		"fruits", len(composer.Params().Fruits),
	)

	loop := scene.NewLoop(cfg.Scene.FrameCap)
	defer loop.Cancel()

	last := time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		if loop.Tick(now) {
			composer.Advance(now.Sub(last).Seconds())
			last = now
		}

		rl.BeginDrawing()
		r.Draw(composer)
		panel.Draw(composer)
		rl.EndDrawing()
	}
}

// loadSnapshot reads a snapshot JSON file, or assembles one from the stat
// flags when no file is given.
func loadSnapshot(path string, pages, minutes, streak, khatms int) (growth.Snapshot, error) {
	if path == "" {
		return growth.Snapshot{
			TotalPages:   pages,
			TotalMinutes: minutes,
			DayStreak:    streak,
			Khatms:       khatms,
		}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return growth.Snapshot{}, err
	}
	var snap growth.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return growth.Snapshot{}, err
	}
	return snap, nil
}
