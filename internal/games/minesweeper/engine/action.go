package engine

// ActionKind distinguishes the two board actions a player can take.
type ActionKind int

const (
	ActionReveal ActionKind = iota // Primary click: reveal, or chord on a number
	ActionFlag                     // Secondary click: toggle flag
)

// String returns a human-readable name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Action is a player intent aimed at one cell.
type Action struct {
	Kind ActionKind
	At   Coord
}

// Reveal returns a reveal action at (x, y).
func Reveal(x, y int) Action {
	return Action{Kind: ActionReveal, At: C(x, y)}
}

// Flag returns a flag-toggle action at (x, y).
func Flag(x, y int) Action {
	return Action{Kind: ActionFlag, At: C(x, y)}
}
