package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paranoid/internal/core"
	"github.com/vovakirdan/paranoid/internal/game"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDemo
	ChoiceScores
	ChoiceQuit
)

var menuItems = []struct {
	label  string
	choice MenuChoice
}{
	{"Play", ChoicePlay},
	{"Watch demo", ChoiceDemo},
	{"High scores", ChoiceScores},
	{"Quit", ChoiceQuit},
}

// MenuModel is the Bubble Tea model for the main menu. Screensaver balls
// bounce behind the menu text, driven by the same tick loop as the game.
type MenuModel struct {
	cursor    int
	config    core.RuntimeConfig
	screen    *core.Screen
	attract   *game.Attract
	keyMapper *KeyMapper
	choice    MenuChoice
	lastTick  time.Time
	quitting  bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return MenuModel{
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		attract:   game.NewAttract(time.Now().UnixNano()),
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the tick loop for the background animation.
func (m MenuModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		// A screen handoff can leave a second tick loop in flight;
		// duplicates arriving early are dropped instead of reissued.
		now := time.Time(msg)
		interval := time.Second / time.Duration(m.config.TickRate)
		if now.Sub(m.lastTick) < interval/2 {
			return m, nil
		}
		m.lastTick = now

		m.attract.Update(1.0 / float64(m.config.TickRate))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].choice
		if m.choice == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit // Exit menu to act on the choice
	}

	return m, nil
}

// View renders the menu over the screensaver.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.attract.Render(m.screen)

	h := m.screen.Height()
	top := h/2 - len(menuItems) - 3
	if top < 1 {
		top = 1
	}

	m.screen.DrawTextCentered(top, "P A R A N O I D")
	for i, item := range menuItems {
		label := "  " + item.label
		if i == m.cursor {
			label = "> " + item.label
		}
		m.screen.DrawTextCentered(top+2+i, label)
	}
	m.screen.DrawTextCentered(top+3+len(menuItems), "up/down: navigate   enter: select   q: quit")

	return RenderScreen(m.screen)
}

// Choice returns what the user picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, possibly updated by a resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
