package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagColor bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recording and print its final board",
	Long: `Rebuild a finished game from its seed and move journal, then print the
final board and score. The replay is deterministic: it always reaches the
same board the player saw.

Examples:
  blockfall replay 3
  blockfall replay 3 --color`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagColor, "color", false, "Print the board with colors")
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recording id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	rec, err := store.Recording(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no recording #%d (see 'blockfall recordings --plain')", id)
	}
	if err != nil {
		return err
	}

	g, err := rec.Replay()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme, err := tui.ResolveTheme(cfg.Display)
	if err != nil {
		return err
	}

	f := g.Frame()
	screen := core.NewScreen(tui.FrameSize(f.Rows, f.Cols, cfg.Display.CellWidth))
	tui.DrawFrame(screen, f, theme, cfg.Display.CellWidth)

	fmt.Printf("Recording #%d  seed %d  recorded %s\n\n", rec.ID, rec.Seed, rec.CreatedAt.Format("2006-01-02 15:04"))
	if flagColor {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}
	fmt.Printf("\nScore %d  Lines %d  Pieces %d  Moves %d\n", g.Score(), g.Lines(), g.Snapshot().Pieces, len(rec.Journal))
	return nil
}
