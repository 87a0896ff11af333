package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// State is the session's position in the menu/play/result cycle.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateLost
	StateWon
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Over reports whether the state is a finished round.
func (s State) Over() bool {
	return s == StateLost || s == StateWon
}

// Session is one player's game: the engine plus the state machine
// Menu -> Playing -> Lost|Won -> Menu.
//
// A Session has a single writer. It is not safe for concurrent use.
type Session struct {
	engine     *Engine
	state      State
	difficulty Difficulty
	sink       CueSink
	now        func() time.Time
	started    time.Time
	ended      time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for mine placement.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.engine.rng = rng
	}
}

// WithSeed seeds mine placement deterministically.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithCueSink routes cues to sink. A nil sink discards them.
func WithCueSink(sink CueSink) Option {
	return func(s *Session) {
		if sink == nil {
			sink = NopSink{}
		}
		s.sink = sink
	}
}

// WithClock replaces time.Now for round timing.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates a session in the menu state.
func NewSession(opts ...Option) *Session {
	s := &Session{
		engine:     NewEngine(nil),
		state:      StateMenu,
		difficulty: Beginner,
		sink:       NopSink{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectDifficulty starts a new round on the given board.
func (s *Session) SelectDifficulty(d Difficulty) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("engine: select difficulty: %w", err)
	}
	s.difficulty = d
	s.engine.ResetBoard(d.Width, d.Height)
	s.started = time.Time{}
	s.ended = time.Time{}
	s.state = StatePlaying
	s.sink.PlayCue(CueClick)
	return nil
}

// Replay restarts the current difficulty with a fresh layout.
func (s *Session) Replay() error {
	return s.SelectDifficulty(s.difficulty)
}

// Acknowledge returns a finished round to the menu.
func (s *Session) Acknowledge() {
	if s.state.Over() {
		s.state = StateMenu
		s.sink.PlayCue(CueClick)
	}
}

// Apply performs a player action. Input is ignored outside an active round
// and for out-of-bounds cells. Returns true if the board changed.
func (s *Session) Apply(a Action) bool {
	if s.state != StatePlaying || s.engine.GameOver() {
		return false
	}
	if !s.engine.Board().InBounds(a.At) {
		return false
	}

	switch a.Kind {
	case ActionReveal:
		return s.reveal(a.At)
	case ActionFlag:
		return s.toggleFlag(a.At)
	}
	return false
}

func (s *Session) reveal(c Coord) bool {
	cell := s.engine.Cell(c)

	switch {
	case cell.Hidden():
		if s.engine.FirstClick() {
			s.engine.PlaceMines(c, s.difficulty.Mines)
			s.started = s.now()
		}
		res := s.engine.RevealCell(c)
		if res.Detonated {
			s.finish()
			return true
		}
		s.sink.PlayCue(CueClick)
		s.checkWin()
		return res.Opened > 0

	case cell.Numbered():
		res := s.engine.ChordReveal(c)
		if !res.Chorded {
			return false
		}
		s.sink.PlayCue(CueClick)
		if res.Detonated {
			s.finish()
			return true
		}
		s.checkWin()
		return res.Opened > 0
	}
	return false
}

func (s *Session) toggleFlag(c Coord) bool {
	if _, changed := s.engine.ToggleFlag(c); !changed {
		return false
	}
	s.sink.PlayCue(CueFlag)
	return true
}

func (s *Session) checkWin() {
	if s.engine.CheckForWin() {
		s.finish()
	}
}

// finish moves a round the engine has ended into Lost or Won.
func (s *Session) finish() {
	s.ended = s.now()
	if s.engine.PlayerWon() {
		s.state = StateWon
		s.sink.PlayCue(CueFlag)
		return
	}
	s.state = StateLost
	s.sink.PlayCue(CueExplosion)
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Difficulty returns the difficulty of the current or last round.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Engine exposes the underlying engine for read access.
func (s *Session) Engine() *Engine { return s.engine }

// Board returns the current board. Callers must treat it as read-only.
func (s *Session) Board() *Board { return s.engine.Board() }

// Cell returns a copy of the cell at c.
func (s *Session) Cell(c Coord) Cell { return s.engine.Cell(c) }

// FlagCount returns the number of flagged cells.
func (s *Session) FlagCount() int { return s.engine.FlagCount() }

// MinesLeft returns mines minus flags. Negative when over-flagged.
func (s *Session) MinesLeft() int { return s.difficulty.Mines - s.engine.FlagCount() }

// Elapsed returns the round time, measured from the first reveal.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.started.IsZero():
		return 0
	case !s.ended.IsZero():
		return s.ended.Sub(s.started)
	default:
		return s.now().Sub(s.started)
	}
}
