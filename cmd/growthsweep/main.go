// Package main sweeps engagement statistics across a grid and writes the
// derived growth parameters and stages to CSV, for tuning the
// snapshot-to-parameter mapping offline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/grove/config"
	"github.com/pthm-cable/grove/growth"
)

// sweepRow is one CSV record of the parameter sweep.
type sweepRow struct {
	Pages       int     `csv:"pages"`
	Minutes     int     `csv:"minutes"`
	Streak      int     `csv:"streak"`
	Khatms      int     `csv:"khatms"`
	Stage       string  `csv:"stage"`
	Progress    float64 `csv:"progress"`
	Growth      float64 `csv:"growth"`
	TrunkLength float64 `csv:"trunk_length"`
	TrunkRadius float64 `csv:"trunk_radius"`
	Levels      float64 `csv:"levels"`
	Children    float64 `csv:"children_per_node"`
	Gnarliness  float64 `csv:"gnarliness"`
	LeafDensity float64 `csv:"leaf_density"`
	Vibrancy    float64 `csv:"vibrancy"`
	Bloom       float64 `csv:"bloom_intensity"`
	Seed        int64   `csv:"seed"`
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	outDir := flag.String("out", "sweep", "Output directory for params.csv")
	pageStep := flag.Int("page-step", 20, "Page sweep step size")
	maxKhatms := flag.Int("max-khatms", 10, "Khatm sweep upper bound")
	minutes := flag.Int("minutes", 300, "Fixed totalMinutes for the sweep")
	streak := flag.Int("streak", 15, "Fixed dayStreak for the sweep")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("loading config: %v", err)
	}
	cfg := config.Cfg()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	var rows []sweepRow
	for khatms := 0; khatms <= *maxKhatms; khatms++ {
		for pages := 0; pages <= cfg.Growth.PageCeiling; pages += *pageStep {
			snap := growth.Snapshot{
				TotalPages:   pages,
				TotalMinutes: *minutes,
				DayStreak:    *streak,
				Khatms:       khatms,
			}
			p := growth.FromSnapshot(snap, cfg.Growth)
			info := growth.ClassifyStage(pages, khatms)

			rows = append(rows, sweepRow{
				Pages:       pages,
				Minutes:     *minutes,
				Streak:      *streak,
				Khatms:      khatms,
				Stage:       info.Stage.Name,
				Progress:    info.Progress,
				Growth:      p.Growth,
				TrunkLength: p.TrunkLength,
				TrunkRadius: p.TrunkRadius,
				Levels:      p.Levels,
				Children:    p.ChildrenPerNode,
				Gnarliness:  p.Gnarliness,
				LeafDensity: p.LeafDensity,
				Vibrancy:    p.Vibrancy,
				Bloom:       p.BloomIntensity,
				Seed:        p.Seed,
			})
		}
	}

	outPath := filepath.Join(*outDir, "params.csv")
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("creating %s: %v", outPath, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(rows, f); err != nil {
		log.Fatalf("writing CSV: %v", err)
	}

	fmt.Printf("wrote %d rows to %s\n", len(rows), outPath)
}
