package garden

import (
	"math"

	"github.com/pthm-cable/grove/config"
)

// Badge is one khatm milestone marker on the ground ring.
type Badge struct {
	X, Z   float64
	Index  int  // 1-based khatm number
	Accent bool // Round-number milestone (every Nth)
}

// Badges arranges one marker per completed khatm evenly around a circle at
// alternating radii, capped at the configured display count.
func Badges(khatms int, cfg config.BadgeConfig) []Badge {
	count := min(khatms, cfg.MaxDisplay)
	if count <= 0 {
		return nil
	}

	out := make([]Badge, 0, count)
	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) - math.Pi/2
		radius := cfg.Radius + float64(i%2)*cfg.RadiusStep
		out = append(out, Badge{
			X:      math.Cos(angle) * radius,
			Z:      math.Sin(angle) * radius,
			Index:  i + 1,
			Accent: cfg.AccentEvery > 0 && (i+1)%cfg.AccentEvery == 0,
		})
	}
	return out
}
