package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// runMenu shows the start menu, runs what the player picks and returns to
// the menu until they quit.
func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rt := terminalConfig()
	themeID := cfg.Display.Theme
	if themeID == "" {
		themeID = registry.DefaultTheme
	}
	speed := config.SpeedPreset(flagDifficulty)
	if speed == "" {
		speed = config.SpeedEasy
	}

	for {
		res, err := tui.RunMenu(rt, themeID, speed)
		if err != nil {
			return err
		}
		rt = res.Config
		themeID, speed = res.ThemeID, res.Speed

		switch res.Choice {
		case tui.MenuPlay:
			game := cfg
			game.Display.Theme = themeID
			if err := config.ApplySpeedPreset(&game, speed); err != nil {
				return err
			}
			if err := playOnce(game, store, logger, rt); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			rt.Seed = 0 // Fresh seed for the next game

		case tui.MenuRecordings:
			theme, err := tui.ResolveTheme(cfg.Display)
			if err != nil {
				return err
			}
			if err := tui.RunRecordings(store, theme, rt.ScreenW, rt.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			return nil
		}
	}
}
