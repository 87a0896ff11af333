package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
)

// customValues holds the form fields. The form keeps pointers into it, so it
// lives behind a pointer that survives model copies.
type customValues struct {
	width  string
	height string
	mines  string
}

// CustomModel asks for a custom board size and mine count.
type CustomModel struct {
	form   *huh.Form
	values *customValues
}

// NewCustomModel creates the custom difficulty form, prefilled from d.
func NewCustomModel(d engine.Difficulty, width int) CustomModel {
	v := &customValues{
		width:  strconv.Itoa(d.Width),
		height: strconv.Itoa(d.Height),
		mines:  strconv.Itoa(d.Mines),
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title("Custom board").
			Description(fmt.Sprintf("Up to %dx%d. Leave room for the first click.", engine.MaxWidth, engine.MaxHeight)),
		huh.NewInput().Title("Width").Value(&v.width).
			Validate(rangeValidator(1, engine.MaxWidth)),
		huh.NewInput().Title("Height").Value(&v.height).
			Validate(rangeValidator(1, engine.MaxHeight)),
		huh.NewInput().Title("Mines").Value(&v.mines).
			Validate(func(s string) error {
				_, err := v.difficulty(s)
				return err
			}),
	)).
		WithShowHelp(true).
		WithTheme(huh.ThemeCharm())
	if width > 0 {
		form = form.WithWidth(min(width, 60))
	}

	return CustomModel{form: form, values: v}
}

// rangeValidator accepts integers in [lo, hi].
func rangeValidator(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// difficulty builds the custom difficulty with mines taken from s.
func (v *customValues) difficulty(mines string) (engine.Difficulty, error) {
	w, errW := strconv.Atoi(v.width)
	h, errH := strconv.Atoi(v.height)
	m, errM := strconv.Atoi(mines)
	if errW != nil || errH != nil || errM != nil {
		return engine.Difficulty{}, fmt.Errorf("width, height and mines must be numbers")
	}
	if w < 1 || w > engine.MaxWidth || h < 1 || h > engine.MaxHeight {
		return engine.Difficulty{}, fmt.Errorf("fix the board size first")
	}
	d := engine.Custom(w, h, m)
	if err := d.Validate(); err != nil {
		if d.MaxMines() < 1 {
			return d, fmt.Errorf("board is too small, need more than %d cells", engine.SafeZoneSize+1)
		}
		return d, fmt.Errorf("must be between 1 and %d", d.MaxMines())
	}
	return d, nil
}

// Init initializes the form.
func (m CustomModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update forwards messages to the form. Commands are dropped once the form
// has finished so a completed form never quits the program.
func (m CustomModel) Update(msg tea.Msg) (CustomModel, tea.Cmd) {
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	if m.Done() {
		return m, nil
	}
	return m, cmd
}

// View renders the form.
func (m CustomModel) View() string {
	return m.form.View()
}

// Done reports whether the form was submitted or aborted.
func (m CustomModel) Done() bool {
	return m.form.State != huh.StateNormal
}

// Result returns the chosen difficulty. ok is false if the form was aborted
// or the values are invalid.
func (m CustomModel) Result() (engine.Difficulty, bool) {
	if m.form.State != huh.StateCompleted {
		return engine.Difficulty{}, false
	}
	d, err := m.values.difficulty(m.values.mines)
	return d, err == nil
}
