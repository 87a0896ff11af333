package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best times",
	Long: `Display the fastest wins for a difficulty, or a summary for
every difficulty when none is given.

Examples:
  minesweeper scores
  minesweeper scores expert --limit 20
  minesweeper scores --tui
  minesweeper scores beginner --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of times to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse best times interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the difficulty")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("open results database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(registry.Default(), store, width, height)
		return err
	}

	if len(args) == 0 {
		return printSummary(store)
	}

	d, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'minesweeper list' to see difficulties", err)
	}

	if flagScoresClear {
		if err := store.ClearResults(d.ID); err != nil {
			return fmt.Errorf("clear results: %w", err)
		}
		logger.Info("results cleared", "difficulty", d.ID)
		fmt.Printf("Cleared results for %s.\n", d.Name)
		return nil
	}

	results, err := store.BestTimes(d.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve best times: %w", err)
	}

	fmt.Printf("Best Times - %s\n", d)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minesweeper play %s' to set the first time!\n", d.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, formatSeconds(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetStats(d.ID); err == nil {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d  Win rate: %.0f%%\n", stats.Played, stats.Won, stats.WinRate()*100)
	}
	return nil
}

// printSummary prints played/won counts and the best time per difficulty.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllStats()
	if err != nil {
		return fmt.Errorf("retrieve stats: %w", err)
	}

	fmt.Println("Summary")
	fmt.Println()
	fmt.Printf("  %-14s  %-6s  %-4s  %-6s  %s\n", "Difficulty", "Played", "Won", "Rate", "Best")
	fmt.Printf("  %-14s  %-6s  %-4s  %-6s  %s\n", "----------", "------", "---", "----", "----")

	for _, d := range registry.List() {
		st, ok := all[d.ID]
		if !ok {
			fmt.Printf("  %-14s  %-6d  %-4d  %-6s  %s\n", d.Name, 0, 0, "-", "-")
			continue
		}
		best := "-"
		if st.Won > 0 {
			best = formatSeconds(st.BestTime)
		}
		rate := fmt.Sprintf("%.0f%%", st.WinRate()*100)
		fmt.Printf("  %-14s  %-6d  %-4d  %-6s  %s\n", d.Name, st.Played, st.Won, rate, best)
	}
	return nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
