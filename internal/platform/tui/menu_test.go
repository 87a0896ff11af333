package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, key string) MenuModel {
	t.Helper()
	next, _ := m.Update(keyMsg(key))
	return next.(MenuModel)
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(testRegistry(t), nil, nil, core.DefaultConfig())

	want := []MenuItemKind{MenuPlay, MenuPlay, MenuPlay, MenuCustom, MenuSound, MenuScores, MenuQuit}
	if len(m.items) != len(want) {
		t.Fatalf("items = %d, want %d", len(m.items), len(want))
	}
	for i, k := range want {
		if m.items[i].Kind != k {
			t.Errorf("items[%d].Kind = %v, want %v", i, m.items[i].Kind, k)
		}
	}

	view := m.View()
	for _, s := range []string{"M I N E S W E E P E R", "Beginner", "9x9, 10 mines", "Sound: OFF"} {
		if !strings.Contains(view, s) {
			t.Errorf("View() missing %q", s)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(testRegistry(t), nil, nil, core.DefaultConfig())

	m = updateMenu(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamp at 0", m.cursor)
	}
	for i := 0; i < 20; i++ {
		m = updateMenu(t, m, "down")
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want clamp at %d", m.cursor, len(m.items)-1)
	}

	m = updateMenu(t, m, "enter")
	if !m.IsQuitting() {
		t.Error("selecting Quit should quit")
	}
	if m.Selected() != nil {
		t.Error("Quit should not select an item")
	}
}

func TestMenuSelectDifficulty(t *testing.T) {
	m := NewMenuModel(testRegistry(t), nil, nil, core.DefaultConfig())
	m = updateMenu(t, m, "down")
	m = updateMenu(t, m, "down")
	m = updateMenu(t, m, " ")

	sel := m.Selected()
	if sel == nil || sel.Kind != MenuPlay || sel.Difficulty.ID != engine.Expert.ID {
		t.Fatalf("Selected() = %+v, want expert", sel)
	}
}

func TestMenuSoundToggle(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf, false)
	m := NewMenuModel(testRegistry(t), nil, bell, core.DefaultConfig())

	for m.items[m.cursor].Kind != MenuSound {
		m = updateMenu(t, m, "down")
	}

	m = updateMenu(t, m, "enter")
	if !bell.Enabled() || buf.String() != "\a" {
		t.Errorf("enabling sound: enabled=%v output=%q", bell.Enabled(), buf.String())
	}
	if !strings.Contains(m.View(), "Sound: ON") {
		t.Error("View() should show sound on")
	}

	m = updateMenu(t, m, "enter")
	if bell.Enabled() || buf.String() != "\a" {
		t.Errorf("disabling sound: enabled=%v output=%q", bell.Enabled(), buf.String())
	}
	if m.Selected() != nil {
		t.Error("toggling sound should not select an item")
	}
}

func TestMenuShowsBestTime(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveResult(storage.Result{DifficultyID: "beginner", Width: 9, Height: 9, Mines: 10, Won: true, Duration: 8 * time.Second}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	m := NewMenuModel(testRegistry(t), store, nil, core.DefaultConfig())
	if !strings.Contains(m.View(), "best 8.0s") {
		t.Error("View() should show the beginner best time")
	}
}
