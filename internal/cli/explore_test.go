package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/fabricgen/pkg/pipeline"
)

func newTestModel(t *testing.T) GridModel {
	t.Helper()
	chip, _, err := pipeline.Generate(pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return NewGridModel(chip)
}

func press(m GridModel, keys ...string) GridModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(GridModel)
	}
	return m
}

func TestGridModelMove(t *testing.T) {
	m := newTestModel(t)
	if m.X != 1 || m.Y != 1 {
		t.Fatalf("start = (%d,%d), want (1,1)", m.X, m.Y)
	}

	m = press(m, "right", "right", "down")
	if m.X != 3 || m.Y != 2 {
		t.Errorf("after moves = (%d,%d), want (3,2)", m.X, m.Y)
	}

	m = press(m, "h", "h", "h", "h", "h", "k", "k", "k")
	if m.X != 0 || m.Y != 0 {
		t.Errorf("cursor should clamp at (0,0), got (%d,%d)", m.X, m.Y)
	}

	for i := 0; i < 10; i++ {
		m = press(m, "l", "j")
	}
	if m.X != 6 || m.Y != 6 {
		t.Errorf("cursor should clamp at (6,6), got (%d,%d)", m.X, m.Y)
	}
}

func TestGridModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestGridModelDetail(t *testing.T) {
	m := newTestModel(t)

	// (2,1) is a channel tile joined to the switch tile on its right and
	// across the top left corner.
	m = press(m, "right")
	detail := m.detail()
	if !strings.Contains(detail, "X2Y1") || !strings.Contains(detail, "QCB") {
		t.Errorf("detail = %q", detail)
	}
	if !strings.Contains(detail, "nodes 2") {
		t.Errorf("channel tile should be in 2 nodes: %q", detail)
	}

	m = press(m, "left", "left")
	if !strings.Contains(m.detail(), "empty tile") {
		t.Errorf("NULL tile detail = %q", m.detail())
	}

	if view := m.View(); !strings.Contains(view, "test EX1 7x7") {
		t.Errorf("view missing title:\n%s", view)
	}
}
