package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "Browse finished games",
	Long: `Open an interactive browser of saved recordings. Each recording is
re-simulated from its seed and move journal to show the final board.

Examples:
  blockfall recordings
  blockfall recordings --plain --limit 5
  blockfall recordings delete 3
  blockfall recordings clear`,
	Args: cobra.NoArgs,
	RunE: runRecordings,
}

var recordingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordingsDelete,
}

var recordingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recordings",
	Args:  cobra.NoArgs,
	RunE:  runRecordingsClear,
}

func init() {
	recordingsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list instead of the browser")
	recordingsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recordings to print with --plain")

	recordingsCmd.AddCommand(recordingsDeleteCmd)
	recordingsCmd.AddCommand(recordingsClearCmd)
}

func runRecordings(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	if !flagPlain {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		theme, err := tui.ResolveTheme(cfg.Display)
		if err != nil {
			return err
		}
		rt := terminalConfig()
		return tui.RunRecordings(store, theme, rt.ScreenW, rt.ScreenH)
	}

	recs, err := store.Recordings(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving recordings: %w", err)
	}

	fmt.Println("Recordings")
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println("No recordings yet.")
		fmt.Println()
		fmt.Println("Finish a game with 'blockfall play' to record one.")
		return nil
	}

	fmt.Printf("  %-5s  %-7s  %-8s  %-7s  %-5s  %s\n", "ID", "Board", "Moves", "Score", "Lines", "Date")
	fmt.Printf("  %-5s  %-7s  %-8s  %-7s  %-5s  %s\n", "--", "-----", "-----", "-----", "-----", "----")
	for _, rec := range recs {
		score, lines := "?", "?"
		if g, err := rec.Replay(); err == nil {
			score, lines = strconv.Itoa(g.Score()), strconv.Itoa(g.Lines())
		}
		fmt.Printf("  %-5d  %-7s  %-8d  %-7s  %-5s  %s\n",
			rec.ID,
			fmt.Sprintf("%dx%d", rec.Cols, rec.Rows),
			len(rec.Journal),
			score,
			lines,
			rec.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

func runRecordingsDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recording id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteRecording(id); err != nil {
		return err
	}
	fmt.Printf("Deleted recording #%d\n", id)
	return nil
}

func runRecordingsClear(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	if err := store.ClearRecordings(); err != nil {
		return err
	}
	fmt.Println("All recordings deleted.")
	return nil
}
