package rip

import "fmt"

// accessibilityWeight is W in spec.md §4.B.
const accessibilityWeight = 0.1

// Accessibility computes the depth-weighted "how buried is this voxel"
// score defined in spec.md §4.B:
//
//	accessibility(p, 0) = neighborCount(p)
//	accessibility(p, j) = accessibility(p, j-1) +
//	    W^j * sum_{d, exists(p.step(d))} accessibility(p.step(d), j-1)
//
// depth < 0 is a usage error (ErrDomainError). Results are memoized per
// (p, depth) on the grid; the cache is invalidated on every label write.
func (g *Grid) Accessibility(p Position, depth int) (float64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("accessibility depth %d: %w", depth, ErrDomainError)
	}
	return g.accessibility(p, depth), nil
}

func (g *Grid) accessibility(p Position, depth int) float64 {
	if byDepth, ok := g.accessCache[p]; ok {
		if v, ok := byDepth[depth]; ok {
			return v
		}
	}

	var v float64
	if depth == 0 {
		v = float64(g.NeighborCount(p))
	} else {
		v = g.accessibility(p, depth-1)
		weight := ipow(accessibilityWeight, depth)
		var sum float64
		for _, d := range Directions() {
			np := p.Step(d)
			if g.Exists(np) {
				sum += g.accessibility(np, depth-1)
			}
		}
		v += weight * sum
	}

	if g.accessCache[p] == nil {
		g.accessCache[p] = make(map[int]float64)
	}
	g.accessCache[p][depth] = v
	return v
}

func ipow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
