package rip

import "sort"

// OrientedPair is a candidate interlock: blockee is the voxel the new
// piece will reach by excluding blocker, which stays in the residual
// piece and prevents blockee (and its piece) from escaping.
type OrientedPair struct {
	Blocker Position
	Blockee Position
}

const blockingPairGenerationCap = 50
const inaccessiblePairsLimit = 10
const accessibilityDepth = 3

// FindBlockingPairs performs the bounded breadth-first walk of spec.md
// §4.E starting at seed.Pos. isSubsequentPiece gates the "both still
// unassigned" check, which only applies once piece construction is past
// the first piece. anchors mark voxels that can never be a blockee.
//
// The walk halts when the queue empties or 50 pairs have been emitted.
// The emitted pairs are sorted by ascending accessibility(blockee, 3) and
// truncated to the 10 most inaccessible ("inaccessible_pairs").
func (g *Grid) FindBlockingPairs(seed Seed, anchors []Position, isSubsequentPiece bool) ([]OrientedPair, error) {
	visited := map[Position]bool{seed.Pos: true}
	queue := []Position{seed.Pos}

	var pairs []OrientedPair

	for len(queue) > 0 && len(pairs) < blockingPairGenerationCap {
		pos := queue[0]
		queue = queue[1:]

		other := pos.Step(seed.NormalDir.Opposite())
		if g.Exists(pos) && g.Exists(other) && !containsPosition(anchors, other) {
			qualifies := true
			if isSubsequentPiece {
				qualifies = g.Label(pos) == 1 && g.Label(other) == 1
			}
			if qualifies {
				pairs = append(pairs, OrientedPair{Blocker: pos, Blockee: other})
				if len(pairs) >= blockingPairGenerationCap {
					break
				}
			}
		}

		for _, d := range Directions() {
			np := pos.Step(d)
			if np == seed.Pos || visited[np] || !g.Exists(np) {
				continue
			}
			visited[np] = true
			queue = append(queue, np)
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		ai, _ := g.Accessibility(pairs[i].Blockee, accessibilityDepth)
		aj, _ := g.Accessibility(pairs[j].Blockee, accessibilityDepth)
		return ai < aj
	})

	if len(pairs) > inaccessiblePairsLimit {
		pairs = pairs[:inaccessiblePairsLimit]
	}
	return pairs, nil
}
