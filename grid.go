package rip

import (
	"fmt"
	"strings"
)

// Grid is a fixed-dimension rectangular 3D array of non-negative integer
// cell labels. Label 0 means empty; label n >= 1 means solid and belonging
// to piece n. Storage is row-major, indexed x*height*width + y*width + z
// (spec.md §6's indexing convention, width == Z, height == Y) — kept
// identical to the original indexing formula (Voxels::operator[] in
// original_source/Voxels.cpp) so shipped sample files stay readable.
type Grid struct {
	dimX, dimY, dimZ int
	cells            []int

	accessCache map[Position]map[int]float64
}

// NewGrid allocates an empty (all-zero) grid of the given dimensions.
func NewGrid(x, y, z int) *Grid {
	return &Grid{
		dimX: x, dimY: y, dimZ: z,
		cells:       make([]int, x*y*z),
		accessCache: make(map[Position]map[int]float64),
	}
}

func (g *Grid) DimX() int { return g.dimX }
func (g *Grid) DimY() int { return g.dimY }
func (g *Grid) DimZ() int { return g.dimZ }

func (g *Grid) inRange(p Position) bool {
	return p.X >= 0 && p.X < g.dimX &&
		p.Y >= 0 && p.Y < g.dimY &&
		p.Z >= 0 && p.Z < g.dimZ
}

func (g *Grid) index(p Position) int {
	return p.X*g.dimY*g.dimZ + p.Y*g.dimZ + p.Z
}

// Label returns the label at p, or 0 if p is out of range. Out-of-range
// reads are deliberately lenient (spec.md §7) because neighbor/passage
// queries must tolerate probing beyond the grid.
func (g *Grid) Label(p Position) int {
	if !g.inRange(p) {
		return 0
	}
	return g.cells[g.index(p)]
}

// SetLabel writes a label at p. Out-of-range writes fail with
// ErrOutOfBounds. Any successful write invalidates the accessibility cache.
func (g *Grid) SetLabel(p Position, label int) error {
	if !g.inRange(p) {
		return fmt.Errorf("set label at %+v: %w", p, ErrOutOfBounds)
	}
	g.cells[g.index(p)] = label
	g.InvalidateAccessibilityCache()
	return nil
}

// Exists reports whether p is in range and labeled nonzero.
func (g *Grid) Exists(p Position) bool {
	return g.Label(p) != 0
}

// NeighborCount counts how many of p's 6 neighbors exist.
func (g *Grid) NeighborCount(p Position) int {
	n := 0
	for _, d := range Directions() {
		if g.Exists(p.Step(d)) {
			n++
		}
	}
	return n
}

// ExteriorFaceCount is 6 - NeighborCount(p).
func (g *Grid) ExteriorFaceCount(p Position) int {
	return 6 - g.NeighborCount(p)
}

// FreePassage walks from p along d while still in range. If any visited
// cell exists — and, when allowHigherLabels is true, has label <= the
// label at p — passage is blocked. allowHigherLabels treats
// higher-labeled voxels as already removed.
func (g *Grid) FreePassage(p Position, d Direction, allowHigherLabels bool) bool {
	base := g.Label(p)
	cur := p.Step(d)
	for g.inRange(cur) {
		lbl := g.Label(cur)
		if lbl != 0 {
			if !allowHigherLabels || lbl <= base {
				return false
			}
		}
		cur = cur.Step(d)
	}
	return true
}

// MaxLabel returns the highest label present in the grid, or 0 if empty.
func (g *Grid) MaxLabel() int {
	max := 0
	for _, v := range g.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// TotalSolidCount returns the number of nonzero cells.
func (g *Grid) TotalSolidCount() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// InvalidateAccessibilityCache clears the accessibility memoization table.
// Must be called (and is, by SetLabel) on every label write.
func (g *Grid) InvalidateAccessibilityCache() {
	g.accessCache = make(map[Position]map[int]float64)
}

// String renders the grid per spec.md §6: "Dimensions: XxYxZ\n" followed
// by one line per x-slice, each containing dimY rows of dimZ cells
// separated by a single space, cells printed '.' for empty or the decimal
// label otherwise.
func (g *Grid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dimensions: %dx%dx%d\n", g.dimX, g.dimY, g.dimZ)
	for x := 0; x < g.dimX; x++ {
		for y := 0; y < g.dimY; y++ {
			if y > 0 {
				b.WriteByte(' ')
			}
			for z := 0; z < g.dimZ; z++ {
				lbl := g.Label(Position{x, y, z})
				if lbl == 0 {
					b.WriteByte('.')
				} else {
					fmt.Fprintf(&b, "%d", lbl)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
