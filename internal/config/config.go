// Package config provides YAML-based configuration loading and speed
// presets for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlockfallConfig contains all tunable parameters of a blockfall session.
type BlockfallConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig sets the playfield size in cells.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig sets the gravity period.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// ScoringConfig sets the points awarded per cleared row.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// DisplayConfig controls how the terminal frontend draws the board.
type DisplayConfig struct {
	Theme     string   `yaml:"theme"`      // Registered theme ID
	CellWidth int      `yaml:"cell_width"` // Terminal columns per grid cell (1 or 2)
	Palette   []string `yaml:"palette"`    // Optional override: seven color names for piece colors 1..7
}

// TickInterval returns the gravity period as a duration.
func (c BlockfallConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// Limits enforced by Validate.
const (
	MinBoardSize      = 4
	MinTickIntervalMS = 50
	PaletteSize       = 7
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c BlockfallConfig) Validate() error {
	var errs []error
	if c.Board.Rows < MinBoardSize {
		errs = append(errs, fmt.Errorf("board.rows must be at least %d, got %d", MinBoardSize, c.Board.Rows))
	}
	if c.Board.Cols < MinBoardSize {
		errs = append(errs, fmt.Errorf("board.cols must be at least %d, got %d", MinBoardSize, c.Board.Cols))
	}
	if c.Timing.TickIntervalMS < MinTickIntervalMS {
		errs = append(errs, fmt.Errorf("timing.tick_interval_ms must be at least %d, got %d", MinTickIntervalMS, c.Timing.TickIntervalMS))
	}
	if c.Scoring.PointsPerLine < 1 {
		errs = append(errs, fmt.Errorf("scoring.points_per_line must be positive, got %d", c.Scoring.PointsPerLine))
	}
	if c.Display.CellWidth != 1 && c.Display.CellWidth != 2 {
		errs = append(errs, fmt.Errorf("display.cell_width must be 1 or 2, got %d", c.Display.CellWidth))
	}
	if n := len(c.Display.Palette); n != 0 && n != PaletteSize {
		errs = append(errs, fmt.Errorf("display.palette must list %d colors, got %d", PaletteSize, n))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// SpeedPreset is a named fixed gravity speed.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
)

// TickIntervalForPreset returns the gravity period in milliseconds for a
// preset. Unknown presets report false.
func TickIntervalForPreset(preset SpeedPreset) (int, bool) {
	switch preset {
	case SpeedEasy:
		return 1000, true
	case SpeedNormal:
		return 700, true
	case SpeedHard:
		return 400, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset overrides the tick interval with the preset's value.
func ApplySpeedPreset(cfg *BlockfallConfig, preset SpeedPreset) error {
	ms, ok := TickIntervalForPreset(preset)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Timing.TickIntervalMS = ms
	return nil
}
