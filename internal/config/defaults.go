package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration.
func DefaultConfig() Config {
	return Config{
		Difficulties: engine.Presets(),
		Sound:        true,
		TickRate:     10,
		DBPath:       "~/.minesweeper/scores.db",
		LogLevel:     "info",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
