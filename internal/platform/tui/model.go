package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paranoid/internal/core"
	"github.com/vovakirdan/paranoid/internal/registry"
	"github.com/vovakirdan/paranoid/internal/storage"
)

// GameModel is the Bubble Tea model for one game run. When the run ends
// with a qualifying score it switches into name entry before handing off.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store          // Run history, may be nil
	scores     *storage.HighScoreTable // High-score table, may be nil
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	demo       bool
	startTime  time.Time
	lastTick   time.Time

	nameEntry bool
	nameInput textinput.Model

	// standalone models quit the program instead of handing back
	standalone bool

	quitting   bool
	backToMenu bool
	showScores bool
	runSaved   bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(g registry.Game, store *storage.Store, scores *storage.HighScoreTable, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		scores:     scores,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		demo:       g.ID() == "paranoid_demo",
		startTime:  time.Now(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if !m.gameState.GameOver {
			m.game.Reset(m.config)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	if m.nameEntry {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Name entry swallows everything so names can contain binding letters
	if m.nameEntry {
		return m.handleNameEntryKey(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back out of the demo or a finished game with B or Esc
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.demo || m.gameState.GameOver || m.gameState.Paused) {
		return m.finish(false)
	}

	// Any key ends a demo
	if m.demo {
		return m.finish(false)
	}

	return m, nil
}

func (m GameModel) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			name = "???"
		}
		if m.scores != nil {
			//nolint:errcheck // Best-effort save, the session continues regardless
			m.scores.Add(name, m.gameState.Level, m.gameState.Score)
		}
		m.nameEntry = false
		return m.finish(true)

	case "esc":
		m.nameEntry = false
		return m.finish(false)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// finish hands control back: to the session's menu or scoreboard, or out
// of the program entirely when running standalone.
func (m GameModel) finish(wantScores bool) (tea.Model, tea.Cmd) {
	m.backToMenu = true
	m.showScores = wantScores
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// The menu handoff can leave the menu's tick loop in flight alongside
	// ours; duplicates arriving early are dropped instead of reissued.
	now := time.Time(msg)
	interval := time.Second / time.Duration(m.config.TickRate)
	if now.Sub(m.lastTick) < interval/2 {
		return m, nil
	}
	m.lastTick = now

	if m.nameEntry {
		return m, tickCmd(m.config.TickRate)
	}

	// Restart with a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver && !m.demo {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.startTime = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Terminal sessions have no audio sink; sound events are dropped here
	_ = result.Sounds

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true

		if m.demo {
			m.inputFrame.Clear()
			return m.finish(false)
		}

		if m.scores != nil && m.scores.Qualifies(m.gameState.Score) {
			m.nameEntry = true
			m.nameInput = newNameInput()
			m.inputFrame.Clear()
			return m, tea.Batch(textinput.Blink, tickCmd(m.config.TickRate))
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished session in the history database.
func (m *GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		Mode:         m.game.ID(),
		LevelReached: m.gameState.Level,
		Score:        m.gameState.Score,
		Duration:     int(time.Since(m.startTime).Seconds()),
	})
}

func newNameInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()
	return ti
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".paranoid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game, or the name-entry screen after a qualifying run.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.nameEntry {
		return m.nameEntryView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

func (m GameModel) nameEntryView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Render("NEW HIGH SCORE")

	result := fmt.Sprintf("%d points, level %d", m.gameState.Score, m.gameState.Level)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("enter: save    esc: skip")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			title, "", result, "", m.nameInput.View(), "", hint))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the run ended and control should return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsScoreboard returns true if the scoreboard should be shown next.
func (m GameModel) WantsScoreboard() bool {
	return m.showScores
}

// Run starts a standalone Bubble Tea program for a single game.
func Run(g registry.Game, store *storage.Store, scores *storage.HighScoreTable, cfg core.RuntimeConfig) error {
	model := NewGameModel(g, store, scores, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
