package tui

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

func TestBellPlayCue(t *testing.T) {
	tests := []struct {
		cue  engine.Cue
		want string
	}{
		{engine.CueClick, "\a"},
		{engine.CueFlag, "\a"},
		{engine.CueExplosion, "\a\a"},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			var buf bytes.Buffer
			b := NewBell(&buf, true)
			b.PlayCue(tc.cue)
			if buf.String() != tc.want {
				t.Errorf("PlayCue(%v) wrote %q, want %q", tc.cue, buf.String(), tc.want)
			}
			if b.Played() != 1 {
				t.Errorf("Played() = %d, want 1", b.Played())
			}
		})
	}
}

func TestBellToggle(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, false)

	b.PlayCue(engine.CueClick)
	if buf.Len() != 0 || b.Played() != 0 {
		t.Fatal("disabled bell should stay silent")
	}

	if !b.Toggle() || !b.Enabled() {
		t.Fatal("Toggle() should enable the bell")
	}
	b.PlayCue(engine.CueClick)
	if buf.String() != "\a" {
		t.Errorf("output = %q, want one bell", buf.String())
	}

	if b.Toggle() {
		t.Error("second Toggle() should disable the bell")
	}
}

func TestBellNilWriter(t *testing.T) {
	b := NewBell(nil, true)
	b.PlayCue(engine.CueExplosion)
	if b.Played() != 0 {
		t.Error("bell without a writer should not count cues")
	}
}
