package rip

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRunConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	if cfg.NumPieces != 4 {
		t.Errorf("NumPieces = %d, want 4", cfg.NumPieces)
	}
	if cfg.MinSizeFraction != 4 {
		t.Errorf("MinSizeFraction = %d, want 4", cfg.MinSizeFraction)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadRunConfig_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	contents := "shape_file: shapes/sample.txt\nnum_pieces: 6\nmin_size_fraction: 3\ndebug: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("LoadRunConfig() error: %v", err)
	}
	if cfg.ShapeFile != "shapes/sample.txt" {
		t.Errorf("ShapeFile = %q, want shapes/sample.txt", cfg.ShapeFile)
	}
	if cfg.NumPieces != 6 {
		t.Errorf("NumPieces = %d, want 6", cfg.NumPieces)
	}
	if cfg.MinSizeFraction != 3 {
		t.Errorf("MinSizeFraction = %d, want 3", cfg.MinSizeFraction)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadRunConfig_AppliesDefaultsForZeroFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("LoadRunConfig() error: %v", err)
	}
	if cfg.NumPieces != DefaultRunConfig().NumPieces {
		t.Errorf("NumPieces = %d, want default %d", cfg.NumPieces, DefaultRunConfig().NumPieces)
	}
	if cfg.MinSizeFraction != DefaultRunConfig().MinSizeFraction {
		t.Errorf("MinSizeFraction = %d, want default %d", cfg.MinSizeFraction, DefaultRunConfig().MinSizeFraction)
	}
}

func TestLoadRunConfig_MissingFile(t *testing.T) {
	_, err := LoadRunConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error loading a nonexistent config file")
	}
}

func TestRunConfig_MinSize(t *testing.T) {
	g := solidCube(4) // 64 solid voxels
	cfg := RunConfig{MinSizeFraction: 4}
	if got := cfg.MinSize(g); got != 16 {
		t.Errorf("MinSize() = %d, want 16", got)
	}

	zero := RunConfig{MinSizeFraction: 0}
	if got := zero.MinSize(g); got != g.TotalSolidCount() {
		t.Errorf("MinSize() with no fraction = %d, want %d", got, g.TotalSolidCount())
	}
}
