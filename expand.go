package rip

// blockerColumnAnchor walks from blocker along normalDir while the
// stepped-to cell still exists, returning the farthest such cell (or
// blocker itself if stepping once already leaves the existing region).
// spec.md §4.G: this protects the column above the blocker from being
// cannibalized for the duration of one expansion call.
func (g *Grid) blockerColumnAnchor(blocker Position, normalDir Direction) Position {
	last := blocker
	cur := blocker.Step(normalDir)
	for g.Exists(cur) {
		last = cur
		cur = cur.Step(normalDir)
	}
	return last
}

// Expand grows piece.Voxels until it reaches at least minSize by
// repeatedly attaching the first viable candidate neighbor (and its
// removal-direction extrusion), per spec.md §4.G. isFirstPiece relaxes
// the "label == 1" candidate restriction to "any existing label", since
// during the first piece's construction everything solid is still
// labeled 1 anyway. If no expansion is possible the piece is returned
// as-is, even if still under minSize.
func (g *Grid) Expand(piece PotentialPiece, anchors []Position, seed Seed, minSize int, isFirstPiece bool) PotentialPiece {
	colAnchor := g.blockerColumnAnchor(piece.BlockingVoxel, seed.NormalDir)
	expAnchors := append(append([]Position{}, anchors...), colAnchor)

	for len(piece.Voxels) < minSize {
		candidates := g.collectExpansionCandidates(piece.Voxels, expAnchors, seed.RemovalDir, isFirstPiece)
		if len(candidates) == 0 {
			break
		}

		expanded := false
		for _, c := range candidates {
			augmented, ok := g.addUpwardVoxels([]Position{c}, seed.RemovalDir, expAnchors)
			if !ok {
				continue
			}
			for _, v := range augmented {
				if !containsPosition(piece.Voxels, v) {
					piece.Voxels = append(piece.Voxels, v)
				}
			}
			expanded = true
			break
		}
		if !expanded {
			break
		}
	}
	return piece
}

// collectExpansionCandidates enumerates attachment candidates
// deterministically: outer loop over piece voxels in insertion order,
// inner loop over the fixed 6-direction list (spec.md §4.G).
func (g *Grid) collectExpansionCandidates(voxels []Position, anchors []Position, removalDir Direction, isFirstPiece bool) []Position {
	var candidates []Position
	for _, v := range voxels {
		for _, d := range Directions() {
			np := v.Step(d)
			if !g.Exists(np) {
				continue
			}
			lbl := g.Label(np)
			if !isFirstPiece && lbl != 1 {
				continue
			}
			if containsPosition(voxels, np) || containsPosition(candidates, np) {
				continue
			}
			if containsPosition(anchors, np) {
				continue
			}
			if anyCollinearWithAnchor(np, anchors, removalDir) {
				continue
			}
			candidates = append(candidates, np)
		}
	}
	return candidates
}

func anyCollinearWithAnchor(p Position, anchors []Position, removalDir Direction) bool {
	for _, a := range anchors {
		if p.SameColumn(a, removalDir) {
			return true
		}
	}
	return false
}
