package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func TestNewOptionsFromDefaults(t *testing.T) {
	opts, err := NewOptions(config.DefaultBlockfallConfig(), 42)
	if err != nil {
		t.Fatal(err)
	}

	g := opts.Session.Game
	if g.Rows != 20 || g.Cols != 10 || g.PointsPerLine != 100 || g.Seed != 42 {
		t.Errorf("unexpected game config: %+v", g)
	}
	if opts.Session.TickInterval != time.Second {
		t.Errorf("expected 1s tick, got %v", opts.Session.TickInterval)
	}
	if opts.Theme.ID != registry.DefaultTheme {
		t.Errorf("expected %q theme, got %q", registry.DefaultTheme, opts.Theme.ID)
	}
	if opts.CellWidth != 2 {
		t.Errorf("expected cell width 2, got %d", opts.CellWidth)
	}
}

func TestResolveThemeErrors(t *testing.T) {
	if _, err := ResolveTheme(config.DisplayConfig{Theme: "neon"}); err == nil {
		t.Error("unknown theme should fail")
	}

	bad := config.DisplayConfig{Palette: []string{"red", "green", "blue", "yellow", "cyan", "magenta", "plaid"}}
	if _, err := ResolveTheme(bad); err == nil {
		t.Error("unknown palette color should fail")
	}
}

func TestResolveThemePalette(t *testing.T) {
	d := config.DisplayConfig{
		Theme:   "mono",
		Palette: []string{"red", "green", "blue", "yellow", "cyan", "magenta", "white"},
	}
	theme, err := ResolveTheme(d)
	if err != nil {
		t.Fatal(err)
	}
	if theme.ID != "mono+custom" {
		t.Errorf("expected custom theme ID, got %q", theme.ID)
	}
}
