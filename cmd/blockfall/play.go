package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate clockwise
  Down, S          - Soft drop
  R                - Restart
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Finished games are saved to the recordings database and can be replayed
with 'blockfall replay <id>'.

Difficulty options:
  easy   - One row per second
  normal - Faster gravity
  hard   - Fastest gravity

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save finished games")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	var store *storage.Store
	if !flagNoRecord {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	return playOnce(cfg, store, logger, terminalConfig())
}

// playOnce runs one interactive session until the player quits.
func playOnce(cfg config.BlockfallConfig, store *storage.Store, logger *log.Logger, rt core.RuntimeConfig) error {
	opts, err := tui.NewOptions(cfg, rt.ResolveSeed())
	if err != nil {
		return err
	}
	opts.Store = store
	opts.Logger = logger
	logger.Debug("starting game", "seed", opts.Session.Game.Seed, "theme", opts.Theme.ID)
	return tui.Run(opts, rt)
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	return rt
}

// openStore opens the recordings database. A failure is reported and the
// game continues without recording.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open recordings database: %v\n", err)
		return nil
	}
	return store
}
