// Package pong implements Pong against an adaptive CPU opponent.
// The player controls the left paddle; the opponent controls the right.
package pong

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

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// Ledger event kinds.
const (
	EventPlayerScore ledger.Kind = "player_score"
	EventAIScore     ledger.Kind = "ai_score"
	EventMatchWon    ledger.Kind = "match_won"
	EventMatchLost   ledger.Kind = "match_lost"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used by the registry factory.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the registry factory.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Ball is the ball's center position and velocity in court units.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Game implements Pong.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	rng     core.Rand
	round   *round.Round

	player   core.Box // left paddle
	opponent core.Box // right paddle
	ball     Ball
	ai       Opponent

	playerScore int
	aiScore     int
}

// New creates a Pong game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultPongConfig())
}

// NewWithConfig creates a Pong game with the given configuration.
func NewWithConfig(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.round = round.New(g.rebuild)
	g.rng = core.NewRand(0)
	g.rebuild()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Cadence returns the interval between updates.
func (g *Game) Cadence() time.Duration {
	return config.Millis(g.cfg.Gameplay.TickMilli)
}

// Reset reseeds the game, rebuilds the court and returns to Menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewRand(runtime.Seed)
	g.round.Restart()
	g.rebuild()
}

// SetRand replaces the random source. Tests use it to force determinism.
func (g *Game) SetRand(r core.Rand) {
	g.rng = r
}

// rebuild places paddles and ball for a fresh match.
func (g *Game) rebuild() {
	courtW, courtH := g.cfg.Court.Width, g.cfg.Court.Height
	pw, ph := g.cfg.Paddle.Width, g.cfg.Paddle.Height

	g.player = core.Box{X: g.cfg.Paddle.Inset, Y: courtH/2 - ph/2, W: pw, H: ph}
	g.opponent = core.Box{X: courtW - g.cfg.Paddle.Inset - pw, Y: courtH/2 - ph/2, W: pw, H: ph}
	g.playerScore = 0
	g.aiScore = 0
	g.ai = NewOpponent(g.cfg)

	g.ball = Ball{X: courtW / 2, Y: courtH / 2}
	g.ball.VX = g.serveDirection() * g.cfg.Ball.Speed
	g.ball.VY = g.cfg.Ball.Speed * (g.rng.Float64() - 0.5)
}

// serveDirection picks a random horizontal direction.
func (g *Game) serveDirection() float64 {
	if g.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// Step applies lifecycle intents and advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.Begin(in) {
		g.update(in)
	}
	return g.round.End(g.State())
}

// update runs one tick: player paddle, ball physics, collisions, scoring,
// opponent, then the win check.
func (g *Game) update(in core.InputFrame) {
	g.movePlayer(in)
	g.integrateBall()
	g.reflectWalls()
	g.resolvePaddles()
	scored := g.checkScore()
	g.ai.Update(g.ball, &g.opponent, g.rng)

	if scored {
		g.checkWin()
	}
}

// checkScore awards a point when the ball leaves the court and re-serves.
func (g *Game) checkScore() bool {
	switch {
	case g.ball.X < 0:
		g.aiScore++
		g.ai.Scored()
		g.round.Record(EventAIScore, g.State(), g.scoreLine())
	case g.ball.X > g.cfg.Court.Width:
		g.playerScore++
		g.ai.Missed()
		g.round.Record(EventPlayerScore, g.State(), g.scoreLine())
	default:
		return false
	}
	g.resetBall()
	return true
}

// checkWin ends the match once either side reaches the win score.
func (g *Game) checkWin() {
	switch {
	case g.playerScore >= g.cfg.Gameplay.WinScore:
		g.round.Machine.Fire(phase.Terminal)
		g.round.Record(EventMatchWon, g.State(), g.scoreLine())
	case g.aiScore >= g.cfg.Gameplay.WinScore:
		g.round.Machine.Fire(phase.Terminal)
		g.round.Record(EventMatchLost, g.State(), g.scoreLine())
	}
}

// resetBall centers the ball with a flat serve.
func (g *Game) resetBall() {
	g.ball = Ball{
		X:  g.cfg.Court.Width / 2,
		Y:  g.cfg.Court.Height / 2,
		VX: g.serveDirection() * g.cfg.Ball.Speed,
	}
}

func (g *Game) scoreLine() string {
	return fmt.Sprintf("%d-%d", g.playerScore, g.aiScore)
}

// State returns the public summary. Score is the player's points.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.round.Phase(),
		Score: g.playerScore,
	}
}

// Scores returns player and opponent points.
func (g *Game) Scores() (player, opponent int) {
	return g.playerScore, g.aiScore
}

// AITarget returns the y the opponent is currently steering its paddle
// center toward.
func (g *Game) AITarget() float64 {
	return g.ai.Target()
}

// Recent returns the latest ledger events.
func (g *Game) Recent(n int) []ledger.Event {
	return g.round.Ledger.Recent(n)
}

// Pending reports the deferred trigger. Pong never schedules one.
func (g *Game) Pending() (phase.Deferred, bool) {
	return g.round.Machine.Pending()
}

// Resolve fires a deferred trigger.
func (g *Game) Resolve(id uint64) bool {
	return g.round.Machine.Resolve(id)
}

// Render draws the court into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 20 || h < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	dst.DrawTextCentered(0, fmt.Sprintf("YOU %d  :  %d CPU", g.playerScore, g.aiScore))
	frame := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(frame)
	inner := core.NewRect(1, 2, w-2, h-3)
	vp := core.Viewport{Area: inner, CourtW: g.cfg.Court.Width, CourtH: g.cfg.Court.Height}

	netX := inner.X + inner.W/2
	for y := inner.Y; y < inner.Bottom(); y += 2 {
		dst.SetColor(netX, y, NetChar, core.ColorGray)
	}

	vp.Fill(dst, g.player, PaddleChar, core.ColorCyan)
	vp.Fill(dst, g.opponent, PaddleChar, core.ColorMagenta)
	bx, by := vp.Cell(g.ball.X, g.ball.Y)
	dst.SetColor(bx, by, BallChar, core.ColorYellow)

	mid := inner.Y + inner.H/2
	switch g.round.Phase() {
	case phase.Menu:
		dst.DrawTextCentered(mid, fmt.Sprintf("First to %d. Press Enter to start", g.cfg.Gameplay.WinScore))
	case phase.Paused:
		dst.DrawTextCentered(mid, "PAUSED")
	case phase.GameOver:
		msg := "YOU LOSE"
		if g.playerScore > g.aiScore {
			msg = "YOU WIN"
		}
		dst.DrawTextCentered(mid, msg+" - press R")
	}
}

func init() {
	registry.Register("pong", func() registry.Game {
		cfg, err := config.LoadPong(configPath, difficultyPreset)
		if err != nil {
			cfg = config.DefaultPongConfig()
			config.ApplyPongPreset(&cfg, difficultyPreset)
		}
		return NewWithConfig(cfg)
	})
}
