package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// isolate points HOME at an empty directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{EnvDB, EnvSound, EnvTickRate, EnvLogLevel} {
		t.Setenv(k, "")
	}
	return home
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	def := DefaultConfig()

	if len(cfg.Difficulties) != len(def.Difficulties) {
		t.Fatalf("got %d difficulties, want %d", len(cfg.Difficulties), len(def.Difficulties))
	}
	for i := range def.Difficulties {
		if cfg.Difficulties[i] != def.Difficulties[i] {
			t.Errorf("difficulty %d = %+v, want %+v", i, cfg.Difficulties[i], def.Difficulties[i])
		}
	}
	if cfg.Sound != def.Sound || cfg.TickRate != def.TickRate || cfg.DBPath != def.DBPath {
		t.Errorf("Load() = %+v, want %+v", cfg, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
difficulties:
  - {id: tiny, name: Tiny, width: 5, height: 5, mines: 3}
sound: false
tick_rate: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Difficulties) != 1 || cfg.Difficulties[0].ID != "tiny" {
		t.Errorf("Difficulties = %+v", cfg.Difficulties)
	}
	if cfg.Sound || cfg.TickRate != 4 {
		t.Errorf("Sound=%v TickRate=%d", cfg.Sound, cfg.TickRate)
	}
	if cfg.DBPath != DefaultConfig().DBPath {
		t.Errorf("unset db_path should keep the default, got %q", cfg.DBPath)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".minesweeper", "config.yaml"), "tick_rate: 2\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 2 {
		t.Errorf("TickRate = %d, want 2 from user config", cfg.TickRate)
	}
	if len(cfg.Difficulties) != 3 {
		t.Errorf("difficulties should fall back to defaults, got %d", len(cfg.Difficulties))
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad yaml", "difficulties: [", false},
		{"too many mines", "difficulties:\n  - {id: x, name: X, width: 4, height: 4, mines: 7}\n", true},
		{"duplicate id", "difficulties:\n  - {id: a, name: A, width: 9, height: 9, mines: 10}\n  - {id: a, name: B, width: 9, height: 9, mines: 10}\n", true},
		{"tick rate", "tick_rate: 0\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			writeFile(t, path, tc.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if tc.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDB, "/tmp/x.db")
	t.Setenv(EnvSound, "false")
	t.Setenv(EnvTickRate, "5")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.Sound || cfg.TickRate != 5 || cfg.LogLevel != "debug" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}

	t.Setenv(EnvSound, "loud")
	if _, err := Load(""); err == nil {
		t.Error("non-boolean MINESWEEPER_SOUND should fail")
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "MINESWEEPER_TEST_DOTENV=42\n")
	t.Setenv("MINESWEEPER_TEST_DOTENV", "")
	os.Unsetenv("MINESWEEPER_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}
	if got := os.Getenv("MINESWEEPER_TEST_DOTENV"); got != "42" {
		t.Errorf("MINESWEEPER_TEST_DOTENV = %q, want 42", got)
	}
}

func TestConfigDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	d, ok := cfg.Difficulty("expert")
	if !ok || d != engine.Expert {
		t.Errorf("Difficulty(expert) = %+v, %v", d, ok)
	}
	if _, ok := cfg.Difficulty("nightmare"); ok {
		t.Error("unknown difficulty reported as present")
	}
}
