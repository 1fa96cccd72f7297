package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paranoid/internal/core"
	"github.com/vovakirdan/paranoid/internal/registry"
	"github.com/vovakirdan/paranoid/internal/storage"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateScores
)

// SessionModel manages the full session flow: menu -> game -> scoreboard
// -> menu. This is the top-level model for local play and SSH sessions.
type SessionModel struct {
	store  *storage.Store          // Run history, may be nil
	scores *storage.HighScoreTable // High-score table, may be nil
	config core.RuntimeConfig

	state      sessionState
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(store *storage.Store, scores *storage.HighScoreTable, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		scores: scores,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so every screen starts at the right size
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is showing.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay, ChoiceDemo:
		id := "paranoid"
		if m.menu.Choice() == ChoiceDemo {
			id = "paranoid_demo"
		}
		g, err := registry.Create(id)
		if err != nil {
			// Registration happens in init, so this cannot normally fail
			return m, cmd
		}

		m.config = m.menu.Config()
		gameModel := NewGameModel(g, m.store, m.scores, m.config)
		m.gameModel = &gameModel
		m.state = stateGame
		return m, m.gameModel.Init()

	case ChoiceScores:
		m.config = m.menu.Config()
		return m.enterScoreboard()
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		wantScores := m.gameModel.WantsScoreboard()
		m.gameModel = nil

		if wantScores {
			return m.enterScoreboard()
		}
		return m.enterMenu()
	}

	return m, cmd
}

// updateScores handles updates while the scoreboard is showing.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		return m.enterMenu()
	}

	return m, cmd
}

func (m SessionModel) enterMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config)
	m.state = stateMenu
	return m, m.menu.Init()
}

func (m SessionModel) enterScoreboard() (tea.Model, tea.Cmd) {
	sb := NewScoreboardModel(m.scores, m.config.ScreenW, m.config.ScreenH)
	m.scoreboard = &sb
	m.state = stateScores
	return m, m.scoreboard.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.gameModel.View()
	case stateScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the full menu/game/scoreboard flow locally.
func RunSession(store *storage.Store, scores *storage.HighScoreTable, cfg core.RuntimeConfig) error {
	model := NewSessionModel(store, scores, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
