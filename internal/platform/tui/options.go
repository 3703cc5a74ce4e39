package tui

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/session"
)

// NewOptions builds model options from a loaded configuration. The theme is
// looked up in the registry and the optional palette is applied on top.
// Store, Logger and Clock are left for the caller.
func NewOptions(cfg config.BlockfallConfig, seed int64) (Options, error) {
	theme, err := ResolveTheme(cfg.Display)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Session: session.Config{
			Game: blockfall.Config{
				Rows:          cfg.Board.Rows,
				Cols:          cfg.Board.Cols,
				PointsPerLine: cfg.Scoring.PointsPerLine,
				Seed:          seed,
			},
			TickInterval: cfg.TickInterval(),
		},
		Theme:     theme,
		CellWidth: cfg.Display.CellWidth,
	}, nil
}

// ResolveTheme returns the configured theme with its palette override.
func ResolveTheme(d config.DisplayConfig) (registry.Theme, error) {
	id := d.Theme
	if id == "" {
		id = registry.DefaultTheme
	}
	theme, err := registry.Get(id)
	if err != nil {
		return registry.Theme{}, err
	}
	if len(d.Palette) == 0 {
		return theme, nil
	}
	theme, err = theme.WithPalette(d.Palette)
	if err != nil {
		return registry.Theme{}, fmt.Errorf("display.palette: %w", err)
	}
	return theme, nil
}
