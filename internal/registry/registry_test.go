package registry

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

func TestBuiltinThemesRegistered(t *testing.T) {
	list := List()
	want := []string{"classic", "mono", "muted"}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, expected %v", list, want)
	}
	for i, info := range list {
		if info.ID != want[i] {
			t.Errorf("List()[%d] = %q, expected %q", i, info.ID, want[i])
		}
		if info.Title == "" {
			t.Errorf("theme %q has no title", info.ID)
		}
	}
	if !Exists(DefaultTheme) {
		t.Errorf("default theme %q not registered", DefaultTheme)
	}
}

func TestGetUnknownTheme(t *testing.T) {
	if _, err := Get("neon"); err == nil {
		t.Error("Get of unknown theme should fail")
	}
	if Exists("neon") {
		t.Error("Exists should be false for unknown theme")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Theme{ID: "classic"})
}

func TestClassicColorsAreDistinct(t *testing.T) {
	th, err := Get("classic")
	if err != nil {
		t.Fatal(err)
	}
	seen := map[core.Color]bool{}
	for id := blockfall.ColorID(1); id <= blockfall.NumColors; id++ {
		c := th.Color(id)
		if seen[c] {
			t.Errorf("color %d reuses %v", id, c)
		}
		seen[c] = true
	}
	if th.Color(200) != core.ColorDefault {
		t.Error("out of range color should fall back to default")
	}
}

func TestWithPalette(t *testing.T) {
	base, _ := Get("mono")
	names := []string{"red", "green", "blue", "yellow", "cyan", "magenta", "orange"}

	custom, err := base.WithPalette(names)
	if err != nil {
		t.Fatalf("WithPalette: %v", err)
	}
	if custom.Color(1) != core.ColorRed || custom.Color(7) != core.ColorOrange {
		t.Errorf("palette not applied: %v", custom.Pieces)
	}
	if base.Color(1) != core.ColorBrightWhite {
		t.Error("base theme should be unchanged")
	}

	if _, err := base.WithPalette(names[:3]); err == nil {
		t.Error("short palette should fail")
	}
	bad := append([]string(nil), names...)
	bad[2] = "teal"
	if _, err := base.WithPalette(bad); err == nil {
		t.Error("unknown color should fail")
	}
}
