package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagWidth  int
	flagHeight int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a board",
	Long: `Start a round on the given difficulty, or on a custom board when
--width, --height and --mines are set.

Controls:
  Arrows/hjkl    - Move cursor
  Space/Enter    - Reveal cell (reveal a number to chord)
  F/M            - Toggle flag
  Mouse          - Left reveals, right flags
  R              - Replay (after a round)
  Esc            - Back to menu (after a round)
  Ctrl+S         - Save screenshot
  Q/Ctrl+C       - Quit

Examples:
  minesweeper play beginner
  minesweeper play expert --seed 42
  minesweeper play --width 20 --height 12 --mines 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
}

func runPlay(_ *cobra.Command, args []string) error {
	d, err := pickDifficulty(args)
	if err != nil {
		return err
	}
	return runTUI(&d)
}

// pickDifficulty resolves the board from the argument or the custom flags.
func pickDifficulty(args []string) (engine.Difficulty, error) {
	custom := flagWidth != 0 || flagHeight != 0 || flagMines != 0
	switch {
	case custom && len(args) > 0:
		return engine.Difficulty{}, errors.New("give a difficulty or --width/--height/--mines, not both")
	case custom:
		d := engine.Custom(flagWidth, flagHeight, flagMines)
		if err := d.Validate(); err != nil {
			return engine.Difficulty{}, err
		}
		return d, nil
	case len(args) == 0:
		if d, err := registry.Get(engine.Beginner.ID); err == nil {
			return d, nil
		}
		return engine.Beginner, nil
	}

	d, err := registry.Get(args[0])
	if err != nil {
		return engine.Difficulty{}, fmt.Errorf("%w\nRun 'minesweeper list' to see difficulties", err)
	}
	return d, nil
}

// runTUI opens the store and runs a local session. A non-nil start skips
// the menu.
func runTUI(start *engine.Difficulty) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appConfig.TickRate,
		Seed:     flagSeed,
		Sound:    appConfig.Sound,
	}

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - rounds still play
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Registry: registry.Default(),
		Store:    store,
		Logger:   logger,
		Bell:     tui.NewBell(os.Stdout, cfg.Sound),
		Config:   cfg,
		Player:   os.Getenv("USER"),
		Start:    start,
	})
}
