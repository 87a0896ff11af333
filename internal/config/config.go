// Package config provides YAML-based configuration loading for the
// minesweeper CLI, the TUI and the SSH server.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// ErrInvalid is returned by Validate for an unusable configuration.
var ErrInvalid = errors.New("invalid config")

// Config contains all runtime settings.
type Config struct {
	Difficulties []engine.Difficulty `yaml:"difficulties"`
	Sound        bool                `yaml:"sound"`
	TickRate     int                 `yaml:"tick_rate"` // Status bar refreshes per second
	DBPath       string              `yaml:"db_path"`
	LogLevel     string              `yaml:"log_level"`
}

// Validate checks every difficulty and the scalar settings.
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulties", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Difficulties))
	for _, d := range c.Difficulties {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: duplicate difficulty %q", ErrInvalid, d.ID)
		}
		seen[d.ID] = true
	}

	if c.TickRate < 1 || c.TickRate > 60 {
		return fmt.Errorf("%w: tick_rate %d out of range [1, 60]", ErrInvalid, c.TickRate)
	}
	return nil
}

// Difficulty returns the configured difficulty with the given ID.
func (c Config) Difficulty(id string) (engine.Difficulty, bool) {
	for _, d := range c.Difficulties {
		if d.ID == id {
			return d, true
		}
	}
	return engine.Difficulty{}, false
}
