package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/games/snake"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapFrame(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Intent
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.MoveUp},
		{"w", runes("w"), core.MoveUp},
		{"s", runes("s"), core.MoveDown},
		{"a", runes("a"), core.MoveLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.MoveRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Shoot},
		{"p", runes("p"), core.TogglePause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.TogglePause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Start},
		{"r", runes("r"), core.Reset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := keys.Frame(tt.msg)
			if !f.Has(tt.want) {
				t.Errorf("Frame(%q) missing %v", tt.msg.String(), tt.want)
			}
		})
	}
}

func TestGameKeyMapCells(t *testing.T) {
	keys := DefaultGameKeyMap()
	for n := 1; n <= 9; n++ {
		f := keys.Frame(runes(string(rune('0' + n))))
		cell, ok := f.Cell()
		if !ok || cell != n-1 {
			t.Errorf("key %d: Cell() = %d, %v", n, cell, ok)
		}
	}
	if !keys.Frame(runes("x")).Empty() {
		t.Error("unbound keys should produce an empty frame")
	}
}

func newTestModel(g *snake.Game) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.TickRate = 1000
	return NewModel(g, nil, cfg, nil)
}

func TestModelStartsTicking(t *testing.T) {
	g := snake.New()
	m := newTestModel(g)
	head := g.Body()[0]

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if m.session.State().Phase != phase.Playing {
		t.Fatalf("phase = %v, expected Playing", m.session.State().Phase)
	}

	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatal("expected a TickMsg")
	}
	next, cmd = m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		t.Error("play continues, so the next tick should be scheduled")
	}
	if g.Body()[0] == head {
		t.Error("a tick should move the snake")
	}

	// The same tick delivered twice must not move the snake again.
	moved := g.Body()[0]
	m.Update(msg)
	if g.Body()[0] != moved {
		t.Error("replayed tick ran an update")
	}
}

func TestModelIgnoresOtherSessions(t *testing.T) {
	m := newTestModel(snake.New())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(TickMsg{Session: "someone-else"})
	if cmd != nil {
		t.Error("ticks from another session must be dropped")
	}
	_, cmd = m.Update(DeferredMsg{Session: "someone-else", ID: 1})
	if cmd != nil {
		t.Error("deferrals from another session must be dropped")
	}
}

func TestModelBackOnlyOutsidePlay(t *testing.T) {
	m := newTestModel(snake.New())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	next, _ = m.Update(runes("b"))
	m = next.(Model)
	if m.BackToMenu() {
		t.Error("back is ignored while playing")
	}

	next, _ = m.Update(runes("p"))
	m = next.(Model)
	next, _ = m.Update(runes("b"))
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

type brokenRenderer struct {
	*snake.Game
}

func (brokenRenderer) Render(*core.Screen) {
	panic("boom")
}

func TestViewRecoversFromRenderPanic(t *testing.T) {
	g := brokenRenderer{snake.New()}
	m := NewModel(g, nil, core.DefaultConfig(), nil)

	out := m.View()
	if !strings.Contains(out, "render failed") {
		t.Errorf("expected a render failure notice, got %q", out)
	}
	if m.session.State().Phase != phase.Menu {
		t.Error("a failed render must not touch the game")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, 'c', core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "c") {
		t.Errorf("rendered output lost characters: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 rows, got %d newlines", got+1)
	}
}
