package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic mine layouts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // HUD refreshes per second (clock display)
	Seed     int64 // RNG seed; 0 means seed from the clock in the platform layer
	Sound    bool  // Whether cues reach the terminal bell
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0,
		Sound:    true,
	}
}

// GameState summarises a round for the platform layer.
type GameState struct {
	Playing  bool          // A round is in progress
	GameOver bool          // The round has ended
	Won      bool          // The round ended with every safe cell revealed
	Elapsed  time.Duration // Time since the first reveal
}

// StepResult is returned by Game.Step() after input is applied.
type StepResult struct {
	State   GameState
	Changed bool // The board changed this step
}
