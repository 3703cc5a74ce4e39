// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                    - Start menu
//	blockfall play               - Play a game directly
//	blockfall serve              - Start SSH server for remote play
//	blockfall themes             - List color themes
//	blockfall recordings         - Browse finished games
//	blockfall replay <id>        - Re-simulate a recording and print its board
//
// Global flags:
//
//	--tick <ms>          - Gravity period in milliseconds (overrides config)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--db <path>          - Recordings database (default: ~/.blockfall/recordings.db)
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Speed preset: easy, normal, hard
//	--theme <id>         - Color theme
//	--log <path>         - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// Global flags
	flagTickMS     int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces onto a grid one row per tick. Fill a row to
clear it and score; the game ends when a new piece has no room.

Available commands:
  play        - Play a game directly
  serve       - Start SSH server for remote play
  themes      - Show all color themes
  recordings  - Browse finished games
  replay      - Re-simulate a recording

Run without a command to open the start menu.

Examples:
  blockfall
  blockfall play --difficulty hard
  blockfall play --seed 42 --theme mono
  blockfall serve --ssh :2222
  blockfall replay 3`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Gravity period in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/recordings.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Speed preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme ID (see 'blockfall themes')")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(recordingsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.BlockfallConfig, error) {
	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagDifficulty)); err != nil {
			return cfg, err
		}
	}
	if flagTickMS != 0 {
		cfg.Timing.TickIntervalMS = flagTickMS
	}
	if flagTheme != "" {
		cfg.Display.Theme = flagTheme
	}
	return cfg, cfg.Validate()
}

// newLogger returns a debug logger writing to --log, or a discarding one.
// The terminal belongs to the game while it runs, so logs never go there.
// The returned close func is always non-nil.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
