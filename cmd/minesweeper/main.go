// minesweeper is the classic mine-clearing puzzle for the terminal.
//
// Usage:
//
//	minesweeper                   - Start the menu
//	minesweeper list              - List difficulties
//	minesweeper play <difficulty> - Play a board directly
//	minesweeper scores [id]       - Show best times
//	minesweeper serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.minesweeper/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.minesweeper/scores.db)
//	--sound             - Ring the terminal bell on clicks and explosions
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagEnvFile  string
	flagSeed     int64
	flagDBPath   string
	flagSound    bool
	flagLogLevel string
	flagLogFile  string
)

var (
	appConfig config.Config
	logger    = log.New(io.Discard)
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper - clear the minefield in your terminal",
	Long: `Minesweeper is the classic puzzle: reveal every safe cell without
stepping on a mine. Numbers count the mines around a cell.

Available commands:
  list     - Show all difficulties
  play     - Play a board directly
  menu     - Interactive menu (default)
  scores   - View best times
  serve    - Start SSH server for remote play

Examples:
  minesweeper
  minesweeper play expert
  minesweeper play --width 20 --height 12 --mines 30
  minesweeper serve --ssh :2222
  minesweeper scores beginner`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to .env file with MINESWEEPER_* overrides")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", true, "Ring the terminal bell on game events")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env and config, applies flag overrides, fills the
// difficulty registry and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return fmt.Errorf("load %s: %w", flagEnvFile, err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("sound") {
		cfg.Sound = flagSound
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	appConfig = cfg

	for _, d := range cfg.Difficulties {
		if registry.Exists(d.ID) {
			continue
		}
		if err := registry.Register(d); err != nil {
			return err
		}
	}

	// The TUI owns the terminal, so interactive modes log to a file and
	// only the server logs to stderr.
	var out io.Writer = io.Discard
	path := flagLogFile
	if cmd.Name() == "serve" {
		out = os.Stderr
	} else if path == "" && isInteractive(cmd) {
		path = config.UserPath("minesweeper.log")
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
	})
	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		logger.SetLevel(level)
	}

	logger.Debug("config loaded", "difficulties", len(cfg.Difficulties), "db", cfg.DBPath, "sound", cfg.Sound)
	return nil
}

// isInteractive reports whether cmd runs the full-screen TUI.
func isInteractive(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "minesweeper", "menu", "play":
		return true
	case "scores":
		return flagScoresTUI
	}
	return false
}
