package engine

// Cue is a presentation hint emitted after a meaningful action.
type Cue int

const (
	CueClick     Cue = iota // Safe reveal, chord, menu selection
	CueExplosion            // Mine detonated
	CueFlag                 // Flag toggled, round won
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueExplosion:
		return "explosion"
	case CueFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// CueSink receives cues. Implementations must return promptly and never
// fail the caller; a sink with no audio simply drops them.
type CueSink interface {
	PlayCue(Cue)
}

// CueFunc adapts a plain function to CueSink.
type CueFunc func(Cue)

// PlayCue calls f(c).
func (f CueFunc) PlayCue(c Cue) {
	f(c)
}

// NopSink discards every cue.
type NopSink struct{}

// PlayCue does nothing.
func (NopSink) PlayCue(Cue) {}
