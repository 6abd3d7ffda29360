package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/phase"
	"github.com/vovakirdan/arcade-cores/internal/registry"
	"github.com/vovakirdan/arcade-cores/internal/scheduler"
	"github.com/vovakirdan/arcade-cores/internal/session"
	"github.com/vovakirdan/arcade-cores/internal/storage"
)

// footerHeight is the number of rows below the game screen: status and help.
const footerHeight = 2

// Model is the Bubble Tea model for running one game.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	interval   time.Duration
	keys       GameKeyMap
	help       help.Model
	standalone bool // quit instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game and starts its session. store may be
// nil; the game then runs without persistence.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := session.New(game, sessionStore(store), logger)
	s.Start(cfg)

	return Model{
		session:  s,
		screen:   core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerHeight)),
		config:   cfg,
		interval: interval(game, cfg),
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
	}
}

// sessionStore keeps a nil *storage.Store from becoming a non-nil interface.
func sessionStore(store *storage.Store) session.Store {
	if store == nil {
		return nil
	}
	return store
}

// interval is the game's cadence unless the host overrides it with a tick
// rate.
func interval(game registry.Game, cfg core.RuntimeConfig) time.Duration {
	if cfg.TickRate > 0 {
		return time.Second / time.Duration(cfg.TickRate)
	}
	if d := game.Cadence(); d > 0 {
		return d
	}
	return time.Second / 60
}

// Init shows the game's menu. Ticks start once the player presses start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Session != m.session.ID() {
			return m, nil
		}
		return m, m.afterTick(m.session.Tick(msg.Token))

	case DeferredMsg:
		if msg.Session != m.session.ID() {
			return m, nil
		}
		return m, m.afterTick(m.session.Resolve(msg.ID))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.session.State().Playing() {
			return m, nil
		}
		m.session.Finish()
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	frame := m.keys.Frame(msg)
	if frame.Empty() {
		return m, nil
	}
	tok, ok := m.session.Handle(frame)
	if !ok {
		return m, nil
	}
	return m, tickCmd(m.interval, m.session.ID(), tok)
}

// afterTick schedules the next tick while play continues, or the deferred
// transition if the game left play to wait for one.
func (m Model) afterTick(tok scheduler.Token, ok bool) tea.Cmd {
	if ok {
		return tickCmd(m.interval, m.session.ID(), tok)
	}
	if d, pending := m.session.Pending(); pending {
		return deferCmd(m.session.ID(), d)
	}
	return nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Game().Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state. A panicking renderer only blanks the
// frame; the simulation is untouched.
func (m Model) View() (out string) {
	if m.quitting {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("render failed: %v\n%s", r, m.status())
		}
	}()

	m.session.Game().Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.status(),
		dimStyle.Render(m.help.View(m.keys)),
	)
}

// status renders the score line below the game.
func (m Model) status() string {
	st := m.session.State()
	parts := []string{
		m.session.Game().Title(),
		fmt.Sprintf("Score %d", st.Score),
		fmt.Sprintf("Best %d", m.session.HighScore()),
	}
	if st.Lives > 0 {
		parts = append(parts, fmt.Sprintf("Lives %d", st.Lives))
	}
	if st.Level > 0 {
		parts = append(parts, fmt.Sprintf("Level %d", st.Level))
	}
	if st.Phase != phase.Playing {
		parts = append(parts, strings.ToUpper(st.Phase.String()))
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in its own Bubble Tea program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
