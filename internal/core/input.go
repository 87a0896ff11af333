package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // K, Up arrow - move cursor up
	ActionDown           // J, Down arrow - move cursor down
	ActionLeft           // H, Left arrow - move cursor left
	ActionRight          // L, Right arrow - move cursor right
	ActionReveal         // Space - reveal (or chord) the cell under the cursor
	ActionFlag           // F - toggle flag under the cursor
	ActionConfirm        // Enter - confirm selection / play again
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - replay the same difficulty
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerButton identifies which mouse button produced a click.
type PointerButton int

const (
	PointerPrimary   PointerButton = iota // Left button
	PointerSecondary                      // Right button
)

// Pointer is an edge-triggered mouse click in screen cells.
type Pointer struct {
	X, Y   int
	Button PointerButton
}

// InputFrame represents the input gathered between two game steps.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Clicks holds pointer presses in arrival order.
	Clicks []Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click appends a pointer press to the frame.
func (f *InputFrame) Click(x, y int, b PointerButton) {
	f.Clicks = append(f.Clicks, Pointer{X: x, Y: y, Button: b})
}

// Empty reports whether the frame carries no input.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
