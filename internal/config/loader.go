package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvDB       = "MINESWEEPER_DB"
	EnvSound    = "MINESWEEPER_SOUND"
	EnvTickRate = "MINESWEEPER_TICK_RATE"
	EnvLogLevel = "MINESWEEPER_LOG_LEVEL"
)

// Load loads the configuration, applies environment overrides and validates
// the result.
// Search order: customPath -> ~/.minesweeper/config.yaml -> ./configs/minesweeper.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/minesweeper.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from path. Missing files are ignored.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overrides cfg with MINESWEEPER_* environment variables.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvDB); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv(EnvSound); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean: %w", EnvSound, err)
		}
		cfg.Sound = b
	}
	if v, ok := os.LookupEnv(EnvTickRate); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", EnvTickRate, err)
		}
		cfg.TickRate = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return nil
}

// UserDir returns ~/.minesweeper, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minesweeper")
}

// UserPath returns a path inside ~/.minesweeper, or empty if home is unavailable.
func UserPath(name string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
