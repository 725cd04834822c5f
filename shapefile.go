package rip

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseShapeFile reads the external shape file format (spec.md §6): a
// first line of three positive integers "X Y Z", then a stream of '.'
// (empty) / 'x' (solid) tokens with all whitespace ignored. The first
// X*Y*Z tokens are consumed in scan order (x outermost, y middle, z
// innermost) — the same order the grid's linear index uses. Fewer or
// more tokens than X*Y*Z, a malformed dimension line, or any character
// besides '.'/'x' is ErrBadInput.
func ParseShapeFile(r io.Reader) (*Grid, error) {
	reader := bufio.NewReader(r)

	dimLine, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading dimension line: %w", err)
	}
	fields := strings.Fields(dimLine)
	if len(fields) != 3 {
		return nil, fmt.Errorf("dimension line %q: expected 3 integers: %w", dimLine, ErrBadInput)
	}

	dims := make([]int, 3)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("dimension line %q: %q is not a positive integer: %w", dimLine, f, ErrBadInput)
		}
		dims[i] = v
	}
	dimX, dimY, dimZ := dims[0], dims[1], dims[2]

	rest, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading shape body: %w", err)
	}

	var tokens []byte
	for _, b := range rest {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '.', 'x':
			tokens = append(tokens, b)
		default:
			return nil, fmt.Errorf("unexpected character %q in shape body: %w", string(b), ErrBadInput)
		}
	}

	want := dimX * dimY * dimZ
	if len(tokens) != want {
		return nil, fmt.Errorf("shape body has %d tokens, want %d: %w", len(tokens), want, ErrBadInput)
	}

	grid := NewGrid(dimX, dimY, dimZ)
	i := 0
	for x := 0; x < dimX; x++ {
		for y := 0; y < dimY; y++ {
			for z := 0; z < dimZ; z++ {
				if tokens[i] == 'x' {
					if err := grid.SetLabel(Position{x, y, z}, 1); err != nil {
						return nil, err
					}
				}
				i++
			}
		}
	}
	return grid, nil
}

// WriteShapeFile serializes g back to the external shape file format,
// using the same x-slice/y-row/z-contiguous layout as Grid.String so the
// two formats stay visually aligned; any nonzero label is written as 'x'.
func (g *Grid) WriteShapeFile() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d\n", g.dimX, g.dimY, g.dimZ)
	for x := 0; x < g.dimX; x++ {
		for y := 0; y < g.dimY; y++ {
			if y > 0 {
				b.WriteByte(' ')
			}
			for z := 0; z < g.dimZ; z++ {
				if g.Label(Position{x, y, z}) != 0 {
					b.WriteByte('x')
				} else {
					b.WriteByte('.')
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SampleCube returns the built-in 3x3x3 fully solid sample shape used by
// the CLI when invoked with zero arguments (spec.md §6), with every
// voxel labeled 1 (unassigned).
func SampleCube() *Grid {
	g := NewGrid(3, 3, 3)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				_ = g.SetLabel(Position{x, y, z}, 1)
			}
		}
	}
	return g
}
