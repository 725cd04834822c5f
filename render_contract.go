package rip

import "github.com/go-gl/mathgl/mgl32"

// piecePalette is the six-color cycle spec.md §6 and
// original_source/VoxelPiece.cpp assign by piece id modulo 6.
var piecePalette = []mgl32.Vec3{
	{1, 0, 0}, // red
	{0, 1, 0}, // green
	{0, 0, 1}, // blue
	{1, 1, 0}, // yellow
	{1, 0, 1}, // magenta
	{0, 1, 1}, // cyan
}

// PieceProperties is the renderer contract of spec.md §6: the core
// computes these pure values and hands them to the (out of scope)
// visualizer, which owns all actual animation timing.
type PieceProperties struct {
	RGB               mgl32.Vec3
	MovementVector    mgl32.Vec3
	MovementStartTime float64
}

// PropertiesForPiece derives a piece's visual properties: color cycles by
// pieceID % 6 through piecePalette; the movement vector is the unit
// vector of movableDir (the piece's MovableDirection); and
// movementStartTime follows original_source/VoxelPiece.cpp's
// constructor exactly — 0-based spacing of 15 units per piece id, except
// piece id 1 (the very first piece removed) animates last, at
// (numPieces-1)*15.
func PropertiesForPiece(pieceID, numPieces int, movableDir Direction) PieceProperties {
	rgb := piecePalette[pieceID%len(piecePalette)]

	var start float64
	if pieceID == 1 {
		start = float64(numPieces-1) * 15
	} else {
		start = float64(pieceID-2) * 15
	}

	return PieceProperties{
		RGB:               rgb,
		MovementVector:    movableDir.Vector(),
		MovementStartTime: start,
	}
}
