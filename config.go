package rip

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the YAML-backed configuration for one decomposition run.
// It mirrors the teacher's pattern of small typed config values threaded
// through a constructor (e.g. LoggingModule{Prefix, Debug}): a handful of
// plain fields, no nesting, defaults applied after load.
type RunConfig struct {
	// ShapeFile is a path to a shape file (spec.md §6). Empty means use
	// the built-in sample cube.
	ShapeFile string `yaml:"shape_file"`

	// NumPieces is how many pieces to cut before designating the residual.
	NumPieces int `yaml:"num_pieces"`

	// MinSizeFraction sets each piece's minimum size as
	// total_solid_count() / MinSizeFraction (spec.md §4.G's "typically
	// total_solid_count() / 4").
	MinSizeFraction int `yaml:"min_size_fraction"`

	// Debug toggles DefaultLogger's debug-level output.
	Debug bool `yaml:"debug"`
}

// DefaultRunConfig returns the values the reference CLI uses for its
// built-in sample (spec.md §6: zero arguments -> built-in sample shape).
func DefaultRunConfig() RunConfig {
	return RunConfig{
		NumPieces:       4,
		MinSizeFraction: 4,
		Debug:           false,
	}
}

// LoadRunConfig reads a YAML RunConfig from path, applying
// DefaultRunConfig for any zero-valued numeric field.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.NumPieces <= 0 {
		cfg.NumPieces = DefaultRunConfig().NumPieces
	}
	if cfg.MinSizeFraction <= 0 {
		cfg.MinSizeFraction = DefaultRunConfig().MinSizeFraction
	}
	return cfg, nil
}

// MinSize computes the minimum piece size for a grid under this config
// (spec.md §4.G).
func (c RunConfig) MinSize(grid *Grid) int {
	if c.MinSizeFraction <= 0 {
		return grid.TotalSolidCount()
	}
	return grid.TotalSolidCount() / c.MinSizeFraction
}
