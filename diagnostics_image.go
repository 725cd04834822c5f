package rip

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// diagnosticScale is how many output pixels each voxel cell occupies;
// puzzle grids are tens of voxels per side (spec.md §1), far too small to
// read as a 1px-per-cell PNG.
const diagnosticScale = 24

// sliceColor maps a cell label to a diagnostic color: gray for empty,
// otherwise the same six-color cycle the renderer contract uses.
func sliceColor(label int) color.NRGBA {
	if label == 0 {
		return color.NRGBA{40, 40, 40, 255}
	}
	rgb := piecePalette[label%len(piecePalette)]
	return color.NRGBA{
		R: uint8(rgb.X() * 255),
		G: uint8(rgb.Y() * 255),
		B: uint8(rgb.Z() * 255),
		A: 255,
	}
}

// ExportSliceImages writes one upscaled PNG per x-slice of g into dir,
// named "slice-%03d.png", for visual inspection of a decomposition —
// the out-of-scope interactive visualizer's non-interactive substitute.
// It returns the written file paths in slice order.
func (g *Grid) ExportSliceImages(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	var paths []string
	for x := 0; x < g.dimX; x++ {
		small := image.NewNRGBA(image.Rect(0, 0, g.dimZ, g.dimY))
		for y := 0; y < g.dimY; y++ {
			for z := 0; z < g.dimZ; z++ {
				small.SetNRGBA(z, y, sliceColor(g.Label(Position{x, y, z})))
			}
		}

		scaled := image.NewNRGBA(image.Rect(0, 0, g.dimZ*diagnosticScale, g.dimY*diagnosticScale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), small, small.Bounds(), draw.Over, nil)

		path := filepath.Join(dir, fmt.Sprintf("slice-%03d.png", x))
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", path, err)
		}
		if err := png.Encode(f, scaled); err != nil {
			f.Close()
			return nil, fmt.Errorf("encoding %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
