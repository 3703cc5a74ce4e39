package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all color themes",
	Long:  `Shows every color theme registered in blockfall.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := registry.List()

	fmt.Println("Available themes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		maxIDLen = max(maxIDLen, len(t.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, t := range themes {
		marker := ""
		if t.ID == registry.DefaultTheme {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, t.ID, t.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'blockfall play --theme <id>' to use a theme.")
}
