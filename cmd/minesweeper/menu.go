package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the difficulty menu",
	Long: `Start minesweeper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
After a round ends, Esc returns to the menu and R plays again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  minesweeper menu
  minesweeper menu --sound=false
  minesweeper menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runTUI(nil)
}
