// Package tictactoe implements tic-tac-toe against a heuristic opponent or a
// second local player.
package tictactoe

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-cores/internal/config"
	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/games/round"
	"github.com/vovakirdan/arcade-cores/internal/ledger"
	"github.com/vovakirdan/arcade-cores/internal/phase"
	"github.com/vovakirdan/arcade-cores/internal/registry"
)

// Ledger event kinds.
const (
	EventRoundWon ledger.Kind = "round_won"
	EventDraw     ledger.Kind = "draw"
)

// ModeTwoPlayer is the config mode for two local players.
const ModeTwoPlayer = "2p"

var configPath string

// SetConfigPath sets the custom config path used by the registry factory.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements tic-tac-toe. X always moves first.
type Game struct {
	cfg     config.TicTacToeConfig
	runtime core.RuntimeConfig
	round   *round.Round

	board  Board
	turn   Mark
	think  int // ticks until the opponent moves
	winner Mark
	line   [3]int

	xWins, oWins, draws int
}

// New creates a game against the computer.
func New() *Game {
	return NewWithConfig(config.DefaultTicTacToeConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.TicTacToeConfig) *Game {
	g := &Game{cfg: cfg}
	g.round = round.New(g.rebuild)
	g.rebuild()
	return g
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		cfg, err := config.LoadTicTacToe(configPath)
		if err != nil {
			cfg = config.DefaultTicTacToeConfig()
		}
		return NewWithConfig(cfg)
	})
	registry.Register("tictactoe_2p", func() registry.Game {
		cfg, err := config.LoadTicTacToe(configPath)
		if err != nil {
			cfg = config.DefaultTicTacToeConfig()
		}
		cfg.Mode = ModeTwoPlayer
		return NewWithConfig(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.TwoPlayer() {
		return "tictactoe_2p"
	}
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.TwoPlayer() {
		return "Tic-Tac-Toe (2 Players)"
	}
	return "Tic-Tac-Toe"
}

// Cadence returns the interval between updates.
func (g *Game) Cadence() time.Duration {
	return config.Millis(g.cfg.TickMilli)
}

// TwoPlayer reports whether both marks are placed by input.
func (g *Game) TwoPlayer() bool {
	return g.cfg.Mode == ModeTwoPlayer
}

// Reset clears the board and the tallies and returns to Menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.round.Restart()
	g.rebuild()
	g.xWins, g.oWins, g.draws = 0, 0, 0
}

// rebuild clears the board. Tallies are kept.
func (g *Game) rebuild() {
	g.board = Board{}
	g.turn = X
	g.think = 0
	g.winner = Empty
	g.line = [3]int{}
}

// Step applies lifecycle intents and, while Playing, one move at most.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.Begin(in) {
		g.update(in)
	}
	return g.round.End(g.State())
}

func (g *Game) update(in core.InputFrame) {
	if g.turn == O && !g.TwoPlayer() {
		if g.think > 0 {
			g.think--
			return
		}
		g.place(BestMove(g.board, O))
		return
	}
	if i, ok := in.Cell(); ok {
		g.place(i)
	}
}

// place puts the current mark on cell i. Invalid cells are ignored.
func (g *Game) place(i int) {
	if !g.board.Free(i) {
		return
	}
	g.board[i] = g.turn

	if w, line, ok := g.board.Winner(); ok {
		g.winner, g.line = w, line
		if w == X {
			g.xWins++
		} else {
			g.oWins++
		}
		g.round.Machine.Fire(phase.Terminal)
		g.round.Record(EventRoundWon, g.State(), fmt.Sprintf("%s %d-%d-%d", w, line[0], line[1], line[2]))
		return
	}
	if g.board.Full() {
		g.draws++
		g.round.Machine.Fire(phase.Terminal)
		g.round.Record(EventDraw, g.State(), "")
		return
	}

	g.turn = g.turn.Other()
	if g.turn == O && !g.TwoPlayer() {
		g.think = g.cfg.ThinkTicks
	}
}

// State returns the public summary. Score is X's win tally.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.round.Phase(),
		Score: g.xWins,
	}
}

// Board returns the grid.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the mark to move next.
func (g *Game) Turn() Mark {
	return g.turn
}

// Winner returns the winning mark and line of a finished round.
func (g *Game) Winner() (Mark, [3]int) {
	return g.winner, g.line
}

// Tallies returns X wins, O wins and draws.
func (g *Game) Tallies() (xWins, oWins, draws int) {
	return g.xWins, g.oWins, g.draws
}

// Recent returns the latest ledger events.
func (g *Game) Recent(n int) []ledger.Event {
	return g.round.Ledger.Recent(n)
}

// Pending reports the deferred trigger. Tic-tac-toe never schedules one.
func (g *Game) Pending() (phase.Deferred, bool) {
	return g.round.Machine.Pending()
}

// Resolve fires a deferred trigger.
func (g *Game) Resolve(id uint64) bool {
	return g.round.Machine.Resolve(id)
}

// Render draws the grid with cell numbers for empty cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	const cellW, gridW, gridH = 5, 17, 7
	if dst.Width() < gridW+2 || dst.Height() < gridH+5 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	opponent := "CPU"
	if g.TwoPlayer() {
		opponent = "O"
	}
	dst.DrawTextCentered(0, fmt.Sprintf("X %d   %s %d   Draws %d", g.xWins, opponent, g.oWins, g.draws))

	ox, oy := (dst.Width()-gridW)/2, 2
	win := map[int]bool{}
	if g.winner != Empty {
		for _, i := range g.line {
			win[i] = true
		}
	}
	for i, m := range g.board {
		r, c := i/3, i%3
		x, y := ox+c*(cellW+1)+cellW/2, oy+r*2+1
		switch {
		case m == Empty:
			dst.SetColor(x, y, rune('1'+i), core.ColorGray)
		case win[i]:
			dst.SetColor(x, y, []rune(m.String())[0], core.ColorGreen)
		case m == X:
			dst.SetColor(x, y, 'X', core.ColorCyan)
		default:
			dst.SetColor(x, y, 'O', core.ColorMagenta)
		}
	}
	for r := 1; r < 3; r++ {
		for x := ox; x < ox+gridW; x++ {
			dst.Set(x, oy+r*2, '─')
		}
	}
	for c := 1; c < 3; c++ {
		dst.DrawVLine(ox+c*(cellW+1)-1, oy+1, gridH-2, '│')
	}

	status := oy + gridH + 1
	switch g.round.Phase() {
	case phase.Menu:
		dst.DrawTextCentered(status, "Press Enter to start")
	case phase.Paused:
		dst.DrawTextCentered(status, "PAUSED")
	case phase.Playing:
		if g.turn == O && !g.TwoPlayer() {
			dst.DrawTextCentered(status, "CPU is thinking...")
		} else {
			dst.DrawTextCentered(status, fmt.Sprintf("%s to move (1-9)", g.turn))
		}
	case phase.GameOver:
		if g.winner == Empty {
			dst.DrawTextCentered(status, "Draw - press R")
		} else {
			dst.DrawTextCentered(status, fmt.Sprintf("%s wins - press R", g.winner))
		}
	}
}

// Hash digests the board, turn and tallies.
func (g *Game) Hash() uint64 {
	d := core.NewDigest().
		Int(int64(g.round.Tick)).Int(int64(g.round.Phase())).
		Int(int64(g.turn)).Int(int64(g.winner)).
		Int(int64(g.xWins)).Int(int64(g.oWins)).Int(int64(g.draws))
	for _, m := range g.board {
		d.Int(int64(m))
	}
	return d.Sum()
}
