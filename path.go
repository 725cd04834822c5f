package rip

import "sort"

// PotentialPiece is a candidate piece: a connected, duplicate-free set of
// voxels linking a seed to a blockee, tagged with the blocking voxel that
// produced it (spec.md §3).
type PotentialPiece struct {
	Voxels        []Position
	BlockingVoxel Position
}

// maxPathBound caps find_shortest_paths' otherwise-unbounded length
// search (spec.md §9's open question) at X+Y+Z steps. Paths longer than
// that are not searched for: when none is found within the bound,
// FindShortestPaths returns ErrNoPathFound, even on a grid where a longer
// path around obstacles exists.
func (g *Grid) maxPathBound() int {
	return g.dimX + g.dimY + g.dimZ
}

// isValidPathStep applies the four exclusion rules of spec.md §4.F to a
// candidate step np: it must exist, must not be the original seed
// (origin), must not be an anchor, and must not be the forbidden voxel
// (the blocker) or lie strictly beyond it along forbiddenDir.Opposite()
// (the line of cells behind the blocker).
func (g *Grid) isValidPathStep(np, origin, forbidden Position, forbiddenDir Direction, anchors []Position) bool {
	if !g.Exists(np) {
		return false
	}
	if np == origin {
		return false
	}
	if containsPosition(anchors, np) {
		return false
	}
	if np == forbidden {
		return false
	}
	if forbidden.CollinearWith(np, forbiddenDir.Opposite()) {
		return false
	}
	return true
}

// FindPaths enumerates every simple path from `from` to `to` of length
// <= maxLength respecting the exclusion rules above (spec.md §4.F). Each
// returned path is the sequence of steps taken after `from`, ending at
// `to` (it never includes `from` itself).
func (g *Grid) FindPaths(from, to, forbidden Position, forbiddenDir Direction, maxLength int, anchors []Position) [][]Position {
	return g.findPathsFrom(from, from, to, forbidden, forbiddenDir, maxLength, anchors)
}

func (g *Grid) findPathsFrom(cur, origin, to, forbidden Position, forbiddenDir Direction, maxLength int, anchors []Position) [][]Position {
	if cur == to {
		return [][]Position{{}}
	}
	if maxLength == 0 {
		return nil
	}

	var results [][]Position
	for _, d := range Directions() {
		np := cur.Step(d)
		if !g.isValidPathStep(np, origin, forbidden, forbiddenDir, anchors) {
			continue
		}
		if np == to {
			results = append(results, []Position{np})
			continue
		}
		for _, sub := range g.findPathsFrom(np, origin, to, forbidden, forbiddenDir, maxLength-1, anchors) {
			if containsPosition(sub, np) {
				continue // revisits np: not a simple path
			}
			path := make([]Position, 0, len(sub)+1)
			path = append(path, np)
			path = append(path, sub...)
			results = append(results, path)
		}
	}
	return results
}

// addUpwardVoxels extends path with every existing voxel strictly beyond
// any path voxel along removalDir, up to the grid edge, that is not
// already present. If any such voxel is an anchor, augmentation fails —
// a piece may never extrude through a voxel that pins the residual solid.
func (g *Grid) addUpwardVoxels(path []Position, removalDir Direction, anchors []Position) ([]Position, bool) {
	result := append([]Position{}, path...)
	for _, v := range path {
		cur := v.Step(removalDir)
		for g.inRange(cur) {
			if g.Exists(cur) {
				if containsPosition(anchors, cur) {
					return nil, false
				}
				if !containsPosition(result, cur) {
					result = append(result, cur)
				}
			}
			cur = cur.Step(removalDir)
		}
	}
	return result, true
}

// FindShortestPaths increases a length bound starting at 1; at each bound
// it runs FindPaths for every blocking pair, augments each raw path with
// addUpwardVoxels, and keeps only the paths that survive augmentation.
// The first bound yielding at least one survivor wins; all its survivors
// are packaged into PotentialPieces (seed appended, since it is always
// part of the piece) and returned sorted by ascending voxel count.
func (g *Grid) FindShortestPaths(seed Seed, pairs []OrientedPair, removalDir Direction, anchors []Position) ([]PotentialPiece, error) {
	bound := g.maxPathBound()
	for length := 1; length <= bound; length++ {
		var pieces []PotentialPiece
		for _, pair := range pairs {
			for _, raw := range g.FindPaths(seed.Pos, pair.Blockee, pair.Blocker, removalDir, length, anchors) {
				augmented, ok := g.addUpwardVoxels(raw, removalDir, anchors)
				if !ok {
					continue
				}
				voxels := augmented
				if !containsPosition(voxels, seed.Pos) {
					voxels = append(voxels, seed.Pos)
				}
				pieces = append(pieces, PotentialPiece{
					Voxels:        voxels,
					BlockingVoxel: pair.Blocker,
				})
			}
		}
		if len(pieces) > 0 {
			sort.SliceStable(pieces, func(i, j int) bool {
				return len(pieces[i].Voxels) < len(pieces[j].Voxels)
			})
			return pieces, nil
		}
	}
	return nil, ErrNoPathFound
}
