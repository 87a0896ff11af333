package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all difficulties",
	Long:  `Shows every configured difficulty with its board size and mine count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	diffs := registry.List()

	if len(diffs) == 0 {
		fmt.Println("No difficulties configured.")
		return
	}

	fmt.Println("Difficulties:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, d := range diffs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %-7s  %s\n", maxIDLen, "ID", "Name", "Size", "Mines")
	fmt.Printf("  %-*s  %-14s  %-7s  %s\n", maxIDLen, "--", "----", "----", "-----")

	for _, d := range diffs {
		size := fmt.Sprintf("%dx%d", d.Width, d.Height)
		fmt.Printf("  %-*s  %-14s  %-7s  %d\n", maxIDLen, d.ID, d.Name, size, d.Mines)
	}

	fmt.Println()
	fmt.Println("Run 'minesweeper play <id>' to play a board.")
}
