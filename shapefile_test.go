package rip

import (
	"errors"
	"strings"
	"testing"
)

func TestParseShapeFile_Valid(t *testing.T) {
	g, err := ParseShapeFile(strings.NewReader("2 1 2\nx..x\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.DimX() != 2 || g.DimY() != 1 || g.DimZ() != 2 {
		t.Fatalf("dimensions = %d,%d,%d, want 2,1,2", g.DimX(), g.DimY(), g.DimZ())
	}
	if g.Label(Position{0, 0, 0}) != 1 {
		t.Error("(0,0,0) should be solid")
	}
	if g.Label(Position{0, 0, 1}) != 0 {
		t.Error("(0,0,1) should be empty")
	}
	if g.Label(Position{1, 0, 0}) != 0 {
		t.Error("(1,0,0) should be empty")
	}
	if g.Label(Position{1, 0, 1}) != 1 {
		t.Error("(1,0,1) should be solid")
	}
}

func TestParseShapeFile_RoundTripsThroughWriteShapeFile(t *testing.T) {
	g, err := ParseShapeFile(strings.NewReader("2 1 2\nx..x\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	serialized := g.WriteShapeFile()

	g2, err := ParseShapeFile(strings.NewReader(serialized))
	if err != nil {
		t.Fatalf("re-parsing serialized shape file: %v", err)
	}
	if g2.DimX() != g.DimX() || g2.DimY() != g.DimY() || g2.DimZ() != g.DimZ() {
		t.Fatal("round trip changed dimensions")
	}
	for x := 0; x < g.DimX(); x++ {
		for y := 0; y < g.DimY(); y++ {
			for z := 0; z < g.DimZ(); z++ {
				p := Position{x, y, z}
				if (g.Label(p) != 0) != (g2.Label(p) != 0) {
					t.Fatalf("round trip changed solidity at %v", p)
				}
			}
		}
	}
}

func TestParseShapeFile_WrongDimensionCount(t *testing.T) {
	_, err := ParseShapeFile(strings.NewReader("2 2\nxxxx\n"))
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}

func TestParseShapeFile_WrongTokenCount(t *testing.T) {
	_, err := ParseShapeFile(strings.NewReader("2 1 2\nxx\n"))
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}

func TestParseShapeFile_InvalidCharacter(t *testing.T) {
	_, err := ParseShapeFile(strings.NewReader("2 1 2\nxy.x\n"))
	if !errors.Is(err, ErrBadInput) {
		t.Fatalf("expected ErrBadInput, got %v", err)
	}
}

func TestSampleCube_IsFullySolid27(t *testing.T) {
	g := SampleCube()
	if g.TotalSolidCount() != 27 {
		t.Errorf("SampleCube().TotalSolidCount() = %d, want 27", g.TotalSolidCount())
	}
}
