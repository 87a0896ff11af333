// Package minesweeper adapts the board engine to the terminal platform:
// it lays the board out on a core.Screen, turns an input frame into
// engine actions and draws the result.
package minesweeper

import (
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// Game is one player's minesweeper front end: a session plus a keyboard
// cursor and the current screen layout.
type Game struct {
	session *engine.Session
	cursor  engine.Coord
	layout  Layout

	screenW int
	screenH int
}

// New creates a game in the menu state. Options are passed to the session.
func New(cfg core.RuntimeConfig, opts ...engine.Option) *Game {
	if cfg.Seed != 0 {
		opts = append([]engine.Option{engine.WithSeed(cfg.Seed)}, opts...)
	}
	g := &Game{
		session: engine.NewSession(opts...),
		screenW: cfg.ScreenW,
		screenH: cfg.ScreenH,
	}
	g.relayout()
	return g
}

// Start begins a round on the given difficulty with the cursor centred.
func (g *Game) Start(d engine.Difficulty) error {
	if err := g.session.SelectDifficulty(d); err != nil {
		return err
	}
	g.cursor = engine.C(d.Width/2, d.Height/2)
	g.relayout()
	return nil
}

// Replay restarts the current difficulty.
func (g *Game) Replay() error {
	return g.Start(g.session.Difficulty())
}

// Resize adapts the layout to a new screen size. The round is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.relayout()
}

func (g *Game) relayout() {
	d := g.session.Difficulty()
	g.layout = NewLayout(g.screenW, g.screenH, d.Width, d.Height)
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var changed bool

	switch st := g.session.State(); {
	case !g.layout.Fits:
		// Nothing is clickable until the board fits.
	case st == engine.StatePlaying:
		changed = g.stepPlaying(in)
	case st.Over():
		changed = g.stepOver(in)
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) stepPlaying(in core.InputFrame) bool {
	d := g.session.Difficulty()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, d.Width-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, d.Height-1)

	changed := false
	if in.Has(core.ActionReveal) {
		changed = g.session.Apply(engine.Action{Kind: engine.ActionReveal, At: g.cursor}) || changed
	}
	if in.Has(core.ActionFlag) {
		changed = g.session.Apply(engine.Action{Kind: engine.ActionFlag, At: g.cursor}) || changed
	}

	for _, p := range in.Clicks {
		if g.session.State() != engine.StatePlaying {
			break
		}
		c, ok := g.layout.CellAt(p.X, p.Y)
		if !ok {
			continue
		}
		g.cursor = c
		kind := engine.ActionReveal
		if p.Button == core.PointerSecondary {
			kind = engine.ActionFlag
		}
		changed = g.session.Apply(engine.Action{Kind: kind, At: c}) || changed
	}
	return changed
}

func (g *Game) stepOver(in core.InputFrame) bool {
	if in.Has(core.ActionRestart) {
		return g.Replay() == nil
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
		g.session.Acknowledge()
		return true
	}
	for _, p := range in.Clicks {
		if p.Button == core.PointerPrimary && g.layout.PlayAgain.Contains(p.X, p.Y) {
			g.session.Acknowledge()
			return true
		}
	}
	return false
}

// State summarises the round for the platform.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Playing:  st == engine.StatePlaying,
		GameOver: st.Over(),
		Won:      st == engine.StateWon,
		Elapsed:  g.session.Elapsed(),
	}
}

// Session returns the underlying session.
func (g *Game) Session() *engine.Session { return g.session }

// Cursor returns the keyboard cursor position.
func (g *Game) Cursor() engine.Coord { return g.cursor }

// Layout returns the current screen layout.
func (g *Game) Layout() Layout { return g.layout }
