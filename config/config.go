// Package config provides configuration loading and access for the grove engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Growth GrowthConfig `yaml:"growth"`
	Tree   TreeConfig   `yaml:"tree"`
	Garden GardenConfig `yaml:"garden"`
	Badges BadgeConfig  `yaml:"badges"`
	Sky    SkyConfig    `yaml:"sky"`
	Scene  SceneConfig  `yaml:"scene"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GrowthConfig holds the snapshot-to-parameter mapping constants.
// The blend weights are product tuning values, not derived invariants.
type GrowthConfig struct {
	PageCeiling   int     `yaml:"page_ceiling"`   // Pages in one full read-through
	MinuteCeiling int     `yaml:"minute_ceiling"` // Minutes at which leaf density saturates
	StreakCeiling int     `yaml:"streak_ceiling"` // Days at which vibrancy saturates
	KhatmCeiling  int     `yaml:"khatm_ceiling"`  // Khatms at which structural growth saturates
	PageWeight    float64 `yaml:"page_weight"`    // Page share of the growth scalar
	KhatmWeight   float64 `yaml:"khatm_weight"`   // Khatm share of the growth scalar
	MinuteLeafW   float64 `yaml:"minute_leaf_weight"`
	PageLeafW     float64 `yaml:"page_leaf_weight"`
}

// TreeConfig holds branch generation limits.
type TreeConfig struct {
	MaxIterations int     `yaml:"max_iterations"` // Hard cap on work-queue pops
	MinLength     float64 `yaml:"min_length"`     // Segments shorter than this are dropped
	MinRadius     float64 `yaml:"min_radius"`     // Segments thinner than this are dropped
	Sections      int     `yaml:"sections"`       // Mesh sections per branch segment
}

// GardenConfig holds ground decoration parameters.
type GardenConfig struct {
	MinuteLevels []int   `yaml:"minute_levels"` // Thresholds splitting totalMinutes into levels
	InnerRadius  float64 `yaml:"inner_radius"`  // Scatter annulus inner edge
	OuterRadius  float64 `yaml:"outer_radius"`  // Scatter annulus outer edge
}

// BadgeConfig holds khatm marker parameters.
type BadgeConfig struct {
	MaxDisplay  int     `yaml:"max_display"`  // Marker count cap
	AccentEvery int     `yaml:"accent_every"` // Every Nth marker is accented
	Radius      float64 `yaml:"radius"`       // Base ring radius
	RadiusStep  float64 `yaml:"radius_step"`  // Alternating radius offset
}

// SkyConfig holds the day/night window.
type SkyConfig struct {
	DayStart float64 `yaml:"day_start"` // Hour at which day begins
	DayEnd   float64 `yaml:"day_end"`   // Hour at which night begins
}

// SceneConfig holds render loop and ambient life parameters.
type SceneConfig struct {
	FrameCap     int     `yaml:"frame_cap"`     // Max composer advances per second
	OrbitSpeed   float64 `yaml:"orbit_speed"`   // Camera radians per second
	SwayAmount   float64 `yaml:"sway_amount"`   // Tree sway amplitude in radians
	StarCount    int     `yaml:"star_count"`    // Night sky stars
	FireflyCount int     `yaml:"firefly_count"` // Drifting fireflies at night
	LitFireflies int     `yaml:"lit_fireflies"` // Fireflies that drive light pools
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Growth.PageCeiling <= 0 {
		return fmt.Errorf("growth.page_ceiling must be positive, got %d", c.Growth.PageCeiling)
	}
	if c.Tree.MaxIterations <= 0 {
		return fmt.Errorf("tree.max_iterations must be positive, got %d", c.Tree.MaxIterations)
	}
	if c.Sky.DayStart >= c.Sky.DayEnd {
		return fmt.Errorf("sky.day_start (%v) must precede sky.day_end (%v)", c.Sky.DayStart, c.Sky.DayEnd)
	}
	if len(c.Garden.MinuteLevels) == 0 {
		return fmt.Errorf("garden.minute_levels must not be empty")
	}
	return nil
}
