package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// Bell plays cues on the terminal bell. Each cue is written in a single
// Write so it never splits a frame the renderer is flushing.
type Bell struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
	played  int
}

// NewBell creates a bell writing to w. A nil writer makes it silent.
func NewBell(w io.Writer, enabled bool) *Bell {
	return &Bell{w: w, enabled: enabled}
}

// PlayCue rings the bell: once for clicks and flags, twice for an explosion.
func (b *Bell) PlayCue(c engine.Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled || b.w == nil {
		return
	}
	seq := "\a"
	if c == engine.CueExplosion {
		seq = "\a\a"
	}
	//nolint:errcheck // Sound is best-effort
	io.WriteString(b.w, seq)
	b.played++
}

// Enabled reports whether cues are audible.
func (b *Bell) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// Toggle flips sound on or off and returns the new setting.
func (b *Bell) Toggle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = !b.enabled
	return b.enabled
}

// Played returns how many cues reached the writer.
func (b *Bell) Played() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.played
}

var _ engine.CueSink = (*Bell)(nil)
