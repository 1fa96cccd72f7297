package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paranoid/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up", "down", "left", "right", "enter", "esc", "ctrl+c", " ":
		switch s {
		case "up":
			return tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			return tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			return tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			return tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			return tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			return tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			return tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{" ", core.ActionFire, false},
		{"enter", core.ActionConfirm, false},
		{"b", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, c := range cases {
		action, quit := km.MapKey(keyMsg(c.key))
		if action != c.action || quit != c.quit {
			t.Errorf("MapKey(%q) = %v/%v, want %v/%v", c.key, action, quit, c.action, c.quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("a"), &frame); quit {
		t.Error("Movement key reported as quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("Frame missing the mapped action")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("Quit key not reported")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key    string
		action MenuAction
	}{
		{"w", MenuActionUp},
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"s", MenuActionDown},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"b", MenuActionBack},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"ctrl+c", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, c := range cases {
		if got := km.MapKeyToMenuAction(keyMsg(c.key)); got != c.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", c.key, got, c.action)
		}
	}
}
