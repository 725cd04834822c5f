// Command rip cuts a solid voxel shape into a sequence of interlocking
// pieces and prints the labeled result. Argument parsing, the shape file
// format, and logging are peripheral plumbing around the core pipeline
// (spec.md §1) — this file is intentionally thin.
package main

import (
	"fmt"
	"os"

	"github.com/printfn/rip"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := rip.NewDefaultLogger("rip", false)

	var grid *rip.Grid
	switch len(args) {
	case 0:
		grid = rip.SampleCube()
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			logger.Errorf("opening %s: %v", args[0], err)
			return 1
		}
		defer f.Close()
		g, err := rip.ParseShapeFile(f)
		if err != nil {
			logger.Errorf("parsing %s: %v", args[0], err)
			return 1
		}
		grid = g
	default:
		fmt.Fprintln(os.Stderr, "usage: rip [shape-file]")
		grid = rip.SampleCube()
	}

	cfg := rip.DefaultRunConfig()
	minSize := cfg.MinSize(grid)

	result, err := rip.Run(grid, cfg.NumPieces, minSize, logger)
	if err != nil {
		logger.Errorf("decomposition failed: %v", err)
		return 1
	}

	fmt.Print(grid.String())
	logger.Infof("run %s produced %d pieces plus residual piece %d",
		result.RunID, len(result.Pieces), result.FinalLabel)
	return 0
}
