package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Growth.PageCeiling != 604 {
		t.Errorf("page ceiling %d, want 604", cfg.Growth.PageCeiling)
	}
	if cfg.Growth.PageWeight+cfg.Growth.KhatmWeight != 1.0 {
		t.Errorf("growth weights should sum to 1, got %f",
			cfg.Growth.PageWeight+cfg.Growth.KhatmWeight)
	}
	if cfg.Tree.MaxIterations != 2000 {
		t.Errorf("max iterations %d, want 2000", cfg.Tree.MaxIterations)
	}
	if len(cfg.Garden.MinuteLevels) != 5 {
		t.Errorf("minute levels %v, want 5 thresholds", cfg.Garden.MinuteLevels)
	}
	if cfg.Sky.DayStart >= cfg.Sky.DayEnd {
		t.Errorf("day window inverted: %f..%f", cfg.Sky.DayStart, cfg.Sky.DayEnd)
	}
	if cfg.Scene.FrameCap != 30 {
		t.Errorf("frame cap %d, want 30", cfg.Scene.FrameCap)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grove.yaml")
	data := "growth:\n  page_ceiling: 300\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override file: %v", err)
	}
	if cfg.Growth.PageCeiling != 300 {
		t.Errorf("page ceiling %d, want overridden 300", cfg.Growth.PageCeiling)
	}
	// Untouched sections keep their defaults.
	if cfg.Tree.MaxIterations != 2000 {
		t.Errorf("max iterations %d, want default 2000", cfg.Tree.MaxIterations)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero page ceiling", "growth:\n  page_ceiling: 0\n", "page_ceiling"},
		{"zero iterations", "tree:\n  max_iterations: 0\n", "max_iterations"},
		{"inverted day window", "sky:\n  day_start: 20\n  day_end: 6\n", "day_start"},
		{"empty minute levels", "garden:\n  minute_levels: []\n", "minute_levels"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "grove.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/grove.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
