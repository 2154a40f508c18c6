// Package growth maps reading-engagement statistics to the continuous
// parameter set that drives tree generation, and classifies progress into
// named milestone stages.
package growth

// MemoStatus is the lifecycle state of a memorization entry.
type MemoStatus string

const (
	MemoActive   MemoStatus = "active"
	MemoComplete MemoStatus = "complete"
	MemoDecayed  MemoStatus = "decayed"
)

// Confidence is a per-verse recall rating.
type Confidence string

const (
	ConfidenceWeak  Confidence = "weak"
	ConfidenceShaky Confidence = "shaky"
	ConfidenceGood  Confidence = "good"
)

// MemoEntry is a per-surah memorization record. Newer records carry
// per-verse confidence ratings; older ones only a set of memorized verse
// numbers. Either field may be nil.
type MemoEntry struct {
	VerseConfidence map[int]Confidence `json:"verseConfidence,omitempty"`
	VersesMemorized []int              `json:"versesMemorized,omitempty"`
	Status          MemoStatus         `json:"status"`
}

// Progress returns the verse count that drives blossom sizing: verses rated
// good under the confidence schema, or the legacy memorized-verse count.
func (m MemoEntry) Progress() int {
	if m.VerseConfidence != nil {
		n := 0
		for _, c := range m.VerseConfidence {
			if c == ConfidenceGood {
				n++
			}
		}
		return n
	}
	return len(m.VersesMemorized)
}

// Snapshot is the engagement statistics input, immutable per render cycle.
// It is supplied fresh by the host on every relevant state change; the
// engine never mutates or persists it.
type Snapshot struct {
	TotalPages   int               `json:"totalPages"`
	TotalMinutes int               `json:"totalMinutes"`
	DayStreak    int               `json:"dayStreak"`
	Khatms       int               `json:"khatms"`
	Memo         map[int]MemoEntry `json:"memo,omitempty"`
}
