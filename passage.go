package rip

// MovableDirection returns a direction in which every voxel of pieceID has
// free passage (higher-labeled voxels ignored, as they are assumed already
// removed). Ties are broken in canonical direction order. If no direction
// works the piece is stuck: an arbitrary direction (the first, +X) is
// returned alongside ErrStuckPiece for diagnostic purposes — construction
// is not aborted by this.
func (g *Grid) MovableDirection(pieceID int) (Direction, error) {
	for _, d := range Directions() {
		allFree := true
		for _, p := range g.piecePositions(pieceID) {
			if !g.FreePassage(p, d, true) {
				allFree = false
				break
			}
		}
		if allFree {
			return d, nil
		}
	}
	return XPos, ErrStuckPiece
}

func (g *Grid) piecePositions(pieceID int) []Position {
	var out []Position
	for x := 0; x < g.dimX; x++ {
		for y := 0; y < g.dimY; y++ {
			for z := 0; z < g.dimZ; z++ {
				p := Position{x, y, z}
				if g.Label(p) == pieceID {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

// FindAnchors returns, for every lateral direction perpendicular to both
// seed.NormalDir and seed.RemovalDir, the farthest existing voxel reached
// by walking from seed.Pos until leaving the grid. Anchors pin the
// residual solid: they must never be absorbed into the piece under
// construction (spec.md §4.C).
func (g *Grid) FindAnchors(seed Seed) []Position {
	var anchors []Position
	for _, d := range Directions() {
		if !d.PerpendicularTo(seed.NormalDir) || !d.PerpendicularTo(seed.RemovalDir) {
			continue
		}
		var last Position
		found := false
		cur := seed.Pos
		for g.inRange(cur) {
			if g.Exists(cur) {
				last = cur
				found = true
			}
			cur = cur.Step(d)
		}
		if found {
			anchors = append(anchors, last)
		}
	}
	return anchors
}

func containsPosition(set []Position, p Position) bool {
	for _, s := range set {
		if s == p {
			return true
		}
	}
	return false
}
