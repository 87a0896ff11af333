package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// MenuItemKind identifies what a menu entry does.
type MenuItemKind int

const (
	MenuPlay MenuItemKind = iota
	MenuCustom
	MenuSound
	MenuScores
	MenuQuit
)

// MenuItem is one selectable menu entry.
type MenuItem struct {
	Kind       MenuItemKind
	Title      string
	Difficulty engine.Difficulty // Set for MenuPlay
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	bell      *Bell
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new menu listing the registered difficulties.
func NewMenuModel(reg *registry.Registry, store *storage.Store, bell *Bell, cfg core.RuntimeConfig) MenuModel {
	diffs := reg.List()
	items := make([]MenuItem, 0, len(diffs)+4)
	for _, d := range diffs {
		items = append(items, MenuItem{Kind: MenuPlay, Title: d.Name, Difficulty: d})
	}
	items = append(items,
		MenuItem{Kind: MenuCustom, Title: "Custom..."},
		MenuItem{Kind: MenuSound},
		MenuItem{Kind: MenuScores, Title: "High Scores"},
		MenuItem{Kind: MenuQuit, Title: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		bell:      bell,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, nil

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.Kind {
		case MenuSound:
			if m.bell != nil && m.bell.Toggle() {
				m.bell.PlayCue(engine.CueClick)
			}
		case MenuQuit:
			m.quitting = true
		default:
			m.selected = &item
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M I N E S W E E P E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Select a difficulty"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := m.itemLabel(item)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// itemLabel formats a menu entry, with board size and best time for presets.
func (m MenuModel) itemLabel(item MenuItem) string {
	switch item.Kind {
	case MenuPlay:
		d := item.Difficulty
		label := fmt.Sprintf("%-13s %dx%d, %d mines", d.Name, d.Width, d.Height, d.Mines)
		if m.store != nil {
			if best, ok, err := m.store.BestTime(d.ID); err == nil && ok {
				label += fmt.Sprintf("  best %s", formatDuration(best))
			}
		}
		return label
	case MenuSound:
		if m.bell != nil && m.bell.Enabled() {
			return "Sound: ON"
		}
		return "Sound: OFF"
	default:
		return item.Title
	}
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
