package registry

import "github.com/vovakirdan/blockfall/internal/core"

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "classic"

func init() {
	Register(Theme{
		ID:    "classic",
		Title: "Classic",
		Pieces: [...]core.Color{
			core.ColorGray,
			core.ColorBrightRed,
			core.ColorBrightCyan,
			core.ColorBrightGreen,
			core.ColorBrightMagenta,
			core.ColorOrange,
			core.ColorBrightYellow,
			core.ColorBrightBlue,
		},
		Border: core.ColorWhite,
		Text:   core.ColorBrightWhite,
		Accent: core.ColorBrightYellow,
	})

	Register(Theme{
		ID:    "muted",
		Title: "Muted",
		Pieces: [...]core.Color{
			core.ColorGray,
			core.ColorRed,
			core.ColorCyan,
			core.ColorGreen,
			core.ColorMagenta,
			core.ColorYellow,
			core.ColorBlue,
			core.ColorWhite,
		},
		Border: core.ColorGray,
		Text:   core.ColorWhite,
		Accent: core.ColorCyan,
	})

	Register(Theme{
		ID:    "mono",
		Title: "Monochrome",
		Pieces: [...]core.Color{
			core.ColorGray,
			core.ColorBrightWhite,
			core.ColorBrightWhite,
			core.ColorBrightWhite,
			core.ColorBrightWhite,
			core.ColorBrightWhite,
			core.ColorBrightWhite,
			core.ColorBrightWhite,
		},
		Border: core.ColorWhite,
		Text:   core.ColorWhite,
		Accent: core.ColorBrightWhite,
	})
}
