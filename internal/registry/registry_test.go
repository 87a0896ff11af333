package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

func TestRegisterAndList(t *testing.T) {
	r := New()
	for _, d := range engine.Presets() {
		if err := r.Register(d); err != nil {
			t.Fatalf("Register(%s) failed: %v", d.ID, err)
		}
	}

	got := r.List()
	want := []string{"beginner", "intermediate", "expert"}
	if len(got) != len(want) {
		t.Fatalf("List() returned %d entries, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List()[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRegisterRejects(t *testing.T) {
	tests := []struct {
		name string
		d    engine.Difficulty
	}{
		{"duplicate", engine.Beginner},
		{"too many mines", engine.Difficulty{ID: "dense", Name: "Dense", Width: 5, Height: 5, Mines: 20}},
		{"too wide", engine.Difficulty{ID: "wide", Name: "Wide", Width: engine.MaxWidth + 1, Height: 5, Mines: 5}},
		{"empty id", engine.Difficulty{Name: "Nameless", Width: 9, Height: 9, Mines: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			r.MustRegister(engine.Beginner)
			if err := r.Register(tc.d); err == nil {
				t.Errorf("Register(%+v) succeeded, want error", tc.d)
			}
			if r.Len() != 1 {
				t.Errorf("rejected difficulty was stored, Len() = %d", r.Len())
			}
		})
	}
}

func TestGet(t *testing.T) {
	r := New()
	r.MustRegister(engine.Expert)

	d, err := r.Get("expert")
	if err != nil {
		t.Fatalf("Get(expert) failed: %v", err)
	}
	if d != engine.Expert {
		t.Errorf("Get(expert) = %+v", d)
	}
	if !r.Exists("expert") || r.Exists("beginner") {
		t.Error("Exists() mismatch")
	}

	_, err = r.Get("beginner")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Get(beginner) error = %v, want ErrUnknown", err)
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r := New()
	r.MustRegister(engine.Beginner)

	defer func() {
		if recover() == nil {
			t.Error("MustRegister did not panic on duplicate")
		}
	}()
	r.MustRegister(engine.Beginner)
}
