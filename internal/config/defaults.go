package config

import (
	_ "embed"
)

//go:embed defaults/hyperdrop.yaml
var defaultHyperdropYAML []byte

// DefaultHyperdropConfig returns the default configuration: a 10x20 board,
// 800ms gravity and 100 points per row.
func DefaultHyperdropConfig() HyperdropConfig {
	return HyperdropConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			DropIntervalMs: 800,
		},
		Scoring: ScoringConfig{
			LinePoints: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHyperdropYAML
}
