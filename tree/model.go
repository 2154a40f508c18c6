// Package tree builds the 3D branch geometry for one tree from a growth
// parameter set. Output is plain geometry data; drawing lives in renderer.
package tree

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/grove/geom"
)

// Section is one tapered cylindrical slice of a branch mesh.
type Section struct {
	Start, End  r3.Vec
	StartRadius float64
	EndRadius   float64
	Level       int
}

// Leaf is a single flattened-sphere leaf mesh.
type Leaf struct {
	Pos   r3.Vec
	Size  float64
	Axis  r3.Vec  // Tilt rotation axis
	Angle float64 // Tilt angle in radians
	Color geom.Color
}

// Bloom is a flower mesh attached near a branch tip.
type Bloom struct {
	Pos  r3.Vec
	Size float64
}

// FruitNode is a placed memorization decoration: a golden fruit for a
// completed surah, otherwise a blossom sized by memorization progress.
type FruitNode struct {
	Pos     r3.Vec
	Size    float64
	Golden  bool
	SurahID int
}

// Tip is the endpoint of a branch segment that spawned no children.
// Tips are plain coordinate records, never node handles, so they cannot
// dangle across a rebuild.
type Tip struct {
	Pos r3.Vec
	Dir r3.Vec
}

// Model is the generated tree geometry.
type Model struct {
	// Embryo is set when growth is near zero; only a seed marker is drawn.
	Embryo bool

	Sections []Section
	Leaves   []Leaf
	Blooms   []Bloom
	Fruits   []FruitNode
	Tips     []Tip

	// Truncated is set when generation hit the iteration cap and returned
	// a partial structure.
	Truncated bool

	boundsMin r3.Vec
	boundsMax r3.Vec
	hasBounds bool
}

// Bounds returns the axis-aligned bounding box of the branch geometry.
// ok is false for embryo or empty models.
func (m *Model) Bounds() (min, max r3.Vec, ok bool) {
	return m.boundsMin, m.boundsMax, m.hasBounds
}

// grow extends the bounding box to include p.
func (m *Model) grow(p r3.Vec) {
	if !m.hasBounds {
		m.boundsMin, m.boundsMax = p, p
		m.hasBounds = true
		return
	}
	if p.X < m.boundsMin.X {
		m.boundsMin.X = p.X
	}
	if p.Y < m.boundsMin.Y {
		m.boundsMin.Y = p.Y
	}
	if p.Z < m.boundsMin.Z {
		m.boundsMin.Z = p.Z
	}
	if p.X > m.boundsMax.X {
		m.boundsMax.X = p.X
	}
	if p.Y > m.boundsMax.Y {
		m.boundsMax.Y = p.Y
	}
	if p.Z > m.boundsMax.Z {
		m.boundsMax.Z = p.Z
	}
}
