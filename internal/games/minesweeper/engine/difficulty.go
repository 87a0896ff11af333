package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidDifficulty is returned for board parameters that cannot host a
// round: dimensions outside the board capacity, or too many mines to leave
// room for the first-click safe zone.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty is an immutable board preset.
type Difficulty struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mines  int    `yaml:"mines"`
}

// Built-in presets.
var (
	Beginner     = Difficulty{ID: "beginner", Name: "Beginner", Width: 9, Height: 9, Mines: 10}
	Intermediate = Difficulty{ID: "intermediate", Name: "Intermediate", Width: 16, Height: 16, Mines: 40}
	Expert       = Difficulty{ID: "expert", Name: "Expert", Width: 30, Height: 16, Mines: 99}
)

// Presets returns the built-in difficulties in menu order.
func Presets() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Expert}
}

// Custom builds an ad-hoc difficulty. It is not validated.
func Custom(width, height, mines int) Difficulty {
	return Difficulty{
		ID:     "custom",
		Name:   fmt.Sprintf("Custom %dx%d", width, height),
		Width:  width,
		Height: height,
		Mines:  mines,
	}
}

// Validate checks that the difficulty fits the board and that mine
// placement can always terminate: Mines < Width*Height - SafeZoneSize.
func (d Difficulty) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDifficulty)
	}
	if d.Width < 1 || d.Width > MaxWidth {
		return fmt.Errorf("%w: %s: width %d out of range [1, %d]", ErrInvalidDifficulty, d.ID, d.Width, MaxWidth)
	}
	if d.Height < 1 || d.Height > MaxHeight {
		return fmt.Errorf("%w: %s: height %d out of range [1, %d]", ErrInvalidDifficulty, d.ID, d.Height, MaxHeight)
	}
	if d.Mines < 1 {
		return fmt.Errorf("%w: %s: needs at least one mine", ErrInvalidDifficulty, d.ID)
	}
	if limit := d.MaxMines(); d.Mines > limit {
		return fmt.Errorf("%w: %s: %d mines on %dx%d, at most %d allowed",
			ErrInvalidDifficulty, d.ID, d.Mines, d.Width, d.Height, limit)
	}
	return nil
}

// MaxMines returns the largest valid mine count for the board size.
func (d Difficulty) MaxMines() int {
	return d.Width*d.Height - SafeZoneSize - 1
}

// Cells returns the board area.
func (d Difficulty) Cells() int {
	return d.Width * d.Height
}

// String returns "Name (WxH, N mines)".
func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", d.Name, d.Width, d.Height, d.Mines)
}
