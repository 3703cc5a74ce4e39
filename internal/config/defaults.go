package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the classic setup: a 20x10 board, one
// gravity step per second and 100 points per cleared row.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			TickIntervalMS: 1000,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 100,
		},
		Display: DisplayConfig{
			Theme:     "classic",
			CellWidth: 2,
		},
	}
}
