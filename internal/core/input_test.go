package core

import (
	"testing"
	"time"
)

func TestActionStringRoundTrip(t *testing.T) {
	for a := ActionNone; a <= ActionQuit; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("Jump"); ok {
		t.Error("unknown action should not parse")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"orange", ColorOrange, true},
		{" Bright-Cyan ", ColorBrightCyan, true},
		{"default", ColorDefault, true},
		{"teal", ColorDefault, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseColor(%q) = %v, %v", tt.name, got, ok)
		}
	}
	if ColorGray.String() != "gray" {
		t.Errorf("ColorGray.String() = %q", ColorGray.String())
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickInterval != time.Second {
		t.Errorf("default tick = %v", cfg.TickInterval)
	}
	cfg.Seed = 42
	if cfg.ResolveSeed() != 42 {
		t.Error("explicit seed should be kept")
	}
	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 {
		t.Error("zero seed should be replaced")
	}
}
