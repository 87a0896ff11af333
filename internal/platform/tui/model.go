package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper/engine"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// helpRows is the height of the key help line under the board.
const helpRows = 1

// view is the screen currently shown.
type view int

const (
	viewMenu view = iota
	viewCustom
	viewGame
	viewScores
)

// Options configures a Model.
type Options struct {
	Registry *registry.Registry
	Store    *storage.Store // Optional; results are not saved without it
	Logger   *log.Logger    // Optional
	Bell     *Bell          // Optional; silent without it
	Config   core.RuntimeConfig
	Player   string             // Recorded in logs
	Start    *engine.Difficulty // Skip the menu and start this board

	// ScreenshotDir overrides where ctrl+s writes screenshots.
	ScreenshotDir string
	// NoScreenshots disables ctrl+s.
	NoScreenshots bool
}

// Model is the Bubble Tea model for a full minesweeper session:
// menu -> board -> menu, plus the custom board form and best times.
type Model struct {
	reg       *registry.Registry
	store     *storage.Store
	logger    *log.Logger
	bell      *Bell
	config    core.RuntimeConfig
	player    string
	sessionID string
	shotDir   string

	view   view
	menu   MenuModel
	custom CustomModel
	scores ScoreboardModel

	game       *minesweeper.Game
	screen     *core.Screen
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model

	lastCustom engine.Difficulty
	start      *engine.Difficulty
	resultSent bool // Result saved for the finished round
	ticking    bool
	quitting   bool
}

// NewModel creates a session model. It opens on the menu unless
// opts.Start names a board.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bell := opts.Bell
	if bell == nil {
		bell = NewBell(nil, false)
	}
	shotDir := opts.ScreenshotDir
	if opts.NoScreenshots {
		shotDir = ""
	} else if shotDir == "" {
		shotDir = config.UserPath("screenshots")
	}

	sessionID := uuid.NewString()
	gameH := max(cfg.ScreenH-helpRows, 0)

	m := Model{
		reg:        reg,
		store:      opts.Store,
		logger:     logger.With("session", sessionID[:8]),
		bell:       bell,
		config:     cfg,
		player:     opts.Player,
		sessionID:  sessionID,
		shotDir:    shotDir,
		menu:       NewMenuModel(reg, opts.Store, bell, cfg),
		game:       minesweeper.New(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: gameH, Seed: cfg.Seed}, engine.WithCueSink(bell)),
		screen:     core.NewScreen(cfg.ScreenW, gameH),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		lastCustom: engine.Custom(engine.Beginner.Width, engine.Beginner.Height, engine.Beginner.Mines),
		start:      opts.Start,
	}
	m.help.Width = cfg.ScreenW

	if m.start != nil {
		if err := m.game.Start(*m.start); err != nil {
			m.logger.Error("cannot start round", "difficulty", m.start.ID, "error", err)
		} else {
			m.view = viewGame
			m.ticking = true
			m.logRoundStart()
		}
	}

	return m
}

// Init starts the clock when the session opens on a board.
func (m Model) Init() tea.Cmd {
	if m.view == viewGame {
		return tickCmd(m.config.TickRate)
	}
	return nil
}

// Update handles messages and routes them to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		// Nothing to step: the board only changes on input. The tick exists
		// so View picks up the running clock.
		if m.view != viewGame {
			m.ticking = false
			return m, nil
		}
		return m, tickCmd(m.config.TickRate)
	}

	switch m.view {
	case viewCustom:
		return m.updateCustom(msg)
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// handleResize processes window resize events for every view.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gameH := max(msg.Height-helpRows, 0)
	m.screen.Resize(msg.Width, gameH)
	m.game.Resize(msg.Width, gameH)
	m.help.Width = msg.Width

	menu, _ := m.menu.Update(msg)
	if mm, ok := menu.(MenuModel); ok {
		m.menu = mm
	}

	var cmd tea.Cmd
	switch m.view {
	case viewScores:
		scores, _ := m.scores.Update(msg)
		if sm, ok := scores.(ScoreboardModel); ok {
			m.scores = sm
		}
	case viewCustom:
		m.custom, cmd = m.custom.Update(msg)
	}
	return m, cmd
}

// updateMenu handles updates when in menu mode.
func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.menu = m.freshMenu()

	switch selected.Kind {
	case MenuPlay:
		return m.startRound(selected.Difficulty)
	case MenuCustom:
		m.custom = NewCustomModel(m.lastCustom, m.config.ScreenW)
		m.view = viewCustom
		return m, m.custom.Init()
	case MenuScores:
		m.scores = NewScoreboardModel(m.reg, m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scores.Init()
	}
	return m, cmd
}

// updateCustom handles the custom board form. Esc leaves it at any time.
func (m Model) updateCustom(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return m.backToMenu(), nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.custom, cmd = m.custom.Update(msg)
	if !m.custom.Done() {
		return m, cmd
	}

	d, ok := m.custom.Result()
	if !ok {
		return m.backToMenu(), nil
	}
	m.lastCustom = d
	return m.startRound(d)
}

// updateScores handles the best times screen.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if sm, ok := newScores.(ScoreboardModel); ok {
		m.scores = sm
	}
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu(), nil
	}
	return m, cmd
}

// updateGame maps input to a frame and steps the board immediately.
func (m Model) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.inputFrame.Clear()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
			m.saveScreenshot()
			return m, nil
		}
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
	default:
		return m, nil
	}

	if m.inputFrame.Empty() {
		return m, nil
	}

	prev := m.game.Session().State()
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	switch st := m.game.Session().State(); {
	case st == engine.StatePlaying:
		if prev.Over() {
			m.logRoundStart()
		}
		m.resultSent = false
	case st.Over():
		m.recordResult()
	case st == engine.StateMenu:
		return m.backToMenu(), nil
	}

	return m, nil
}

// startRound begins a round and switches to the board.
func (m Model) startRound(d engine.Difficulty) (tea.Model, tea.Cmd) {
	if err := m.game.Start(d); err != nil {
		m.logger.Error("cannot start round", "difficulty", d.ID, "error", err)
		return m.backToMenu(), nil
	}
	m.view = viewGame
	m.resultSent = false
	m.logRoundStart()

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

func (m Model) backToMenu() Model {
	m.view = viewMenu
	m.menu = m.freshMenu()
	return m
}

// freshMenu rebuilds the menu so best times are current. The cursor
// position is kept.
func (m Model) freshMenu() MenuModel {
	menu := NewMenuModel(m.reg, m.store, m.bell, m.config)
	menu.cursor = m.menu.cursor
	return menu
}

func (m Model) logRoundStart() {
	d := m.game.Session().Difficulty()
	m.logger.Info("round started", "player", m.player, "difficulty", d.ID, "size", fmt.Sprintf("%dx%d", d.Width, d.Height), "mines", d.Mines)
}

// recordResult saves a finished round once. Failures are logged and the
// session carries on.
func (m *Model) recordResult() {
	if m.resultSent {
		return
	}
	m.resultSent = true

	s := m.game.Session()
	d := s.Difficulty()
	won := s.State() == engine.StateWon
	elapsed := s.Elapsed()
	m.logger.Info("round finished", "player", m.player, "difficulty", d.ID, "won", won, "time", formatDuration(elapsed))
	m.logger.Debug("final board", "board", "\n"+s.Snapshot().String())

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		DifficultyID: d.ID,
		Width:        d.Width,
		Height:       d.Height,
		Mines:        d.Mines,
		Won:          won,
		Duration:     elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// saveScreenshot saves the current board to a text file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.Session().Difficulty().ID, timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the active view.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewCustom:
		return m.custom.View()
	case viewScores:
		return m.scores.View()
	case viewGame:
		m.game.Render(m.screen)
		return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
	default:
		return m.menu.View()
	}
}

// Game returns the board front end, for tests and tooling.
func (m Model) Game() *minesweeper.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
