package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/registry"
	"github.com/vovakirdan/arcade-cores/internal/storage"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// AppModel manages the full arcade flow: menu -> game or scoreboard -> menu.
// It is the top-level model for `arcade menu` and for SSH sessions.
type AppModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	greeting string
	current  screen
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewAppModel creates the arcade flow starting at the menu.
func NewAppModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, greeting string) AppModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return AppModel{
		store:    store,
		config:   cfg,
		logger:   logger,
		greeting: greeting,
		menu:     NewMenuModel(store, cfg).WithGreeting(greeting),
	}
}

// Init initializes the menu.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(scoreSource(m.store), m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			// The menu only lists registered games.
			m.logger.Error("cannot create game", "error", err)
			m.menu = NewMenuModel(m.store, m.config).WithGreeting(m.greeting)
			return m, nil
		}
		cfg := m.config
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		m.game = NewModel(game, m.store, cfg, m.logger)
		m.current = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.backToMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// scoreSource keeps a missing store a nil interface.
func scoreSource(store *storage.Store) ScoreSource {
	if store == nil {
		return nil
	}
	return store
}

func (m *AppModel) backToMenu() {
	m.current = screenMenu
	m.menu = NewMenuModel(m.store, m.config).WithGreeting(m.greeting)
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the menu-driven arcade until the player quits.
func RunApp(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewAppModel(store, cfg, logger, ""),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
