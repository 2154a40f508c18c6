package growth

import "github.com/pthm-cable/grove/geom"

// Stage is a named growth milestone.
type Stage struct {
	Name      string
	MinPages  int
	MinKhatms int
}

// stages is the ordered milestone ladder. Thresholds are non-decreasing;
// the classifier returns the last stage whose thresholds are both met.
var stages = []Stage{
	{Name: "Seed", MinPages: 0, MinKhatms: 0},
	{Name: "Sprout", MinPages: 10, MinKhatms: 0},
	{Name: "Young Tree", MinPages: 150, MinKhatms: 0},
	{Name: "Full Bloom", MinPages: 604, MinKhatms: 1},
	{Name: "Ancient Tree", MinPages: 604, MinKhatms: 10},
}

// Stages returns a copy of the milestone ladder.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// StageInfo is the classification result for one snapshot.
type StageInfo struct {
	Stage    Stage
	Next     *Stage  // nil at the terminal stage
	Progress float64 // Fraction toward Next in [0,1]; 1 at the terminal stage
}

// ClassifyStage returns the highest stage whose page and khatm thresholds
// are both satisfied, plus the fractional progress toward the next stage.
func ClassifyStage(totalPages, khatms int) StageInfo {
	idx := 0
	for i, s := range stages {
		if totalPages >= s.MinPages && khatms >= s.MinKhatms {
			idx = i
		}
	}

	cur := stages[idx]
	if idx == len(stages)-1 {
		return StageInfo{Stage: cur, Progress: 1}
	}

	next := stages[idx+1]
	info := StageInfo{Stage: cur, Next: &next}

	switch {
	case khatms < next.MinKhatms:
		// Khatms gate the next stage; measure against the khatm span.
		span := next.MinKhatms - cur.MinKhatms
		if span <= 0 {
			info.Progress = 1
		} else {
			info.Progress = geom.Clamp01(float64(khatms-cur.MinKhatms) / float64(span))
		}
	case next.MinPages == cur.MinPages:
		info.Progress = 1
	default:
		span := next.MinPages - cur.MinPages
		info.Progress = geom.Clamp01(float64(totalPages-cur.MinPages) / float64(span))
	}

	return info
}
