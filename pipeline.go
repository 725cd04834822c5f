package rip

// ConstructFirstPiece builds piece 1 (spec.md §4.D/§4.H) and relabels its
// voxels from 1 to 2. It returns the new label and the removal direction
// used, or an error if seed or path search fails.
func (g *Grid) ConstructFirstPiece(minSize int) (int, Direction, error) {
	seed, err := g.FirstSeed()
	if err != nil {
		return 0, 0, err
	}

	anchors := g.FindAnchors(seed)
	pairs, err := g.FindBlockingPairs(seed, anchors, false)
	if err != nil {
		return 0, 0, err
	}

	pieces, err := g.FindShortestPaths(seed, pairs, seed.RemovalDir, anchors)
	if err != nil {
		return 0, 0, err
	}

	piece := g.Expand(pieces[0], anchors, seed, minSize, true)

	const label = 2
	for _, v := range piece.Voxels {
		if err := g.SetLabel(v, label); err != nil {
			return 0, 0, err
		}
	}
	return label, seed.RemovalDir, nil
}

// buildSpine expands seed along its removal direction through adjacent
// still-unassigned voxels, forming the "spine" construct_subsequent_piece
// starts from (spec.md §4.H).
func (g *Grid) buildSpine(seed Seed) []Position {
	spine := []Position{seed.Pos}
	cur := seed.Pos.Step(seed.RemovalDir)
	for g.Label(cur) == 1 {
		spine = append(spine, cur)
		cur = cur.Step(seed.RemovalDir)
	}
	return spine
}

// spineHasFreePassage reports whether every voxel of spine still has free
// passage along d through cells that are either unassigned (label 1) or
// belong to the previous piece (label prevLabel) — the gate
// construct_subsequent_piece uses to decide which lateral directions are
// worth chasing a second interlock in.
func (g *Grid) spineHasFreePassage(spine []Position, d Direction, prevLabel int) bool {
	for _, v := range spine {
		cur := v.Step(d)
		for g.inRange(cur) {
			lbl := g.Label(cur)
			if lbl != 0 && lbl != 1 && lbl != prevLabel {
				return false
			}
			cur = cur.Step(d)
		}
	}
	return true
}

// ConstructSubsequentPiece builds the piece after prevPieceLabel (spec.md
// §4.D/§4.H): it picks a seed lateral to the previous piece, grows a
// spine along the removal direction, then for every direction other than
// the removal direction that the whole spine can still pass through freely, chases an
// additional interlock in that direction before expanding to minSize.
func (g *Grid) ConstructSubsequentPiece(prevPieceLabel int, minSize int, removalDirPrev Direction) (int, Direction, error) {
	seed, err := g.NextSeed(prevPieceLabel, removalDirPrev)
	if err != nil {
		return 0, 0, err
	}

	spine := g.buildSpine(seed)
	piece := PotentialPiece{Voxels: append([]Position{}, spine...), BlockingVoxel: seed.Pos}

	for _, d := range Directions() {
		if d == seed.RemovalDir {
			continue
		}
		if !g.spineHasFreePassage(spine, d, prevPieceLabel) {
			continue
		}

		lateralSeed := seed
		lateralSeed.NormalDir = d
		anchors := g.FindAnchors(lateralSeed)
		pairs, err := g.FindBlockingPairs(lateralSeed, anchors, true)
		if err != nil || len(pairs) == 0 {
			continue
		}
		morePieces, err := g.FindShortestPaths(lateralSeed, pairs, seed.RemovalDir, anchors)
		if err != nil || len(morePieces) == 0 {
			continue
		}
		best := morePieces[0]
		piece.BlockingVoxel = best.BlockingVoxel
		for _, v := range best.Voxels {
			if !containsPosition(piece.Voxels, v) {
				piece.Voxels = append(piece.Voxels, v)
			}
		}
	}

	anchors := g.FindAnchors(seed)
	piece = g.Expand(piece, anchors, seed, minSize, false)

	label := prevPieceLabel + 1
	for _, v := range piece.Voxels {
		if err := g.SetLabel(v, label); err != nil {
			return 0, 0, err
		}
	}
	return label, seed.RemovalDir, nil
}

// DesignateFinalPiece relabels every remaining label-1 (unassigned) voxel
// to MaxLabel()+1, giving the residual piece its id (spec.md §3/§4.H).
// It returns the new label.
func (g *Grid) DesignateFinalPiece() int {
	newLabel := g.MaxLabel() + 1
	for i, v := range g.cells {
		if v == 1 {
			g.cells[i] = newLabel
		}
	}
	g.InvalidateAccessibilityCache()
	return newLabel
}

// PieceRecord summarizes one constructed piece for a RunResult.
type PieceRecord struct {
	Label      int
	RemovalDir Direction
	Size       int
}

// RunResult is the outcome of a full decomposition Run.
type RunResult struct {
	RunID      string
	Pieces     []PieceRecord
	FinalLabel int
}

// Run orchestrates construction of numPieces pieces one at a time
// (spec.md §4.H / §5: piece k+1 begins only after piece k is fully
// written), then designates the residual piece. A nil logger falls back
// to a no-op one.
func Run(grid *Grid, numPieces int, minSize int, logger Logger) (RunResult, error) {
	if logger == nil {
		logger = NewNopLogger()
	}

	runID := newRunID()
	logger.Infof("starting decomposition run %s: target %d pieces, min size %d", runID, numPieces, minSize)

	var pieces []PieceRecord
	var removalDirPrev Direction

	for i := 1; i <= numPieces; i++ {
		var label int
		var dir Direction
		var err error

		if i == 1 {
			label, dir, err = grid.ConstructFirstPiece(minSize)
		} else {
			label, dir, err = grid.ConstructSubsequentPiece(i, minSize, removalDirPrev)
		}
		if err != nil {
			logger.Errorf("run %s: piece %d failed: %v", runID, i, err)
			return RunResult{RunID: runID, Pieces: pieces}, err
		}

		size := len(grid.piecePositions(label))
		logger.Debugf("run %s: piece %d -> label %d, removal dir %s, size %d", runID, i, label, dir, size)
		pieces = append(pieces, PieceRecord{Label: label, RemovalDir: dir, Size: size})
		removalDirPrev = dir
	}

	finalLabel := grid.DesignateFinalPiece()
	logger.Infof("run %s: complete, final residual piece label %d", runID, finalLabel)

	return RunResult{RunID: runID, Pieces: pieces, FinalLabel: finalLabel}, nil
}
