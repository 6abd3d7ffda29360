// Package invaders implements Space Invaders: a marching formation, cover
// barriers, falling power-ups and level progression.
package invaders

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
	EventInvaderDestroyed ledger.Kind = "invader_destroyed"
	EventPlayerHit        ledger.Kind = "player_hit"
	EventBarrierDamaged   ledger.Kind = "barrier_damaged"
	EventBarrierDestroyed ledger.Kind = "barrier_destroyed"
	EventLifeGained       ledger.Kind = "life_gained"
	EventMultishotGained  ledger.Kind = "multishot_gained"
	EventLevelComplete    ledger.Kind = "level_complete"
	EventGameOver         ledger.Kind = "game_over"
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

// Game implements Space Invaders.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	rng     core.Rand
	round   *round.Round

	ship      core.Box
	formation Formation
	barriers  []Barrier
	shots     []Bullet // player bullets
	bombs     []Bullet // hostile bullets
	powerUps  []PowerUp

	cooldown     int // ticks until the ship may fire again
	sinceShot    int // ticks since the formation last fired
	shotCooldown float64

	score int
	lives int
	level int
}

// New creates a game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultInvadersConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	g := &Game{cfg: cfg, rng: core.NewRand(0)}
	g.round = round.New(g.rebuild)
	g.rebuild()
	return g
}

func init() {
	registry.Register("invaders", func() registry.Game {
		cfg, err := config.LoadInvaders(configPath, difficultyPreset)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
			config.ApplyInvadersPreset(&cfg, difficultyPreset)
		}
		return NewWithConfig(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Cadence returns the interval between updates.
func (g *Game) Cadence() time.Duration {
	return config.Millis(g.cfg.Gameplay.TickMilli)
}

// Reset reseeds the game and returns to Menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewRand(runtime.Seed)
	g.round.Restart()
	g.rebuild()
}

// SetRand replaces the random source.
func (g *Game) SetRand(r core.Rand) {
	g.rng = r
}

// rebuild starts a new game at level 1.
func (g *Game) rebuild() {
	s := g.cfg.Ship
	g.ship = core.Box{X: g.cfg.Court.Width/2 - s.Width/2, Y: s.Y, W: s.Width, H: s.Height}
	g.score = 0
	g.lives = s.Lives
	g.level = 1
	g.cooldown = 0
	g.setupLevel()
}

// setupLevel rebuilds everything except ship, score and lives.
func (g *Game) setupLevel() {
	g.formation = NewFormation(g.cfg.Formation, g.levelSpeed(g.level))
	g.barriers = newBarriers(g.cfg)
	g.shots = nil
	g.bombs = nil
	g.powerUps = nil
	g.sinceShot = 0
	g.shotCooldown = g.sampleCooldown()
}

// levelSpeed is the formation speed for a 1-based level.
func (g *Game) levelSpeed(level int) float64 {
	return g.cfg.Formation.Speed + float64(level-1)*g.cfg.Formation.SpeedStep
}

func newBarriers(cfg config.InvadersConfig) []Barrier {
	b := cfg.Barriers
	total := float64(b.Count)*b.Width + float64(b.Count-1)*b.Spacing
	startX := (cfg.Court.Width - total) / 2
	out := make([]Barrier, b.Count)
	for i := range out {
		out[i] = Barrier{
			Box:    core.Box{X: startX + float64(i)*(b.Width+b.Spacing), Y: b.Y, W: b.Width, H: b.Height},
			ID:     i,
			Health: b.Health,
		}
	}
	return out
}

// Step applies lifecycle intents and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.Begin(in) {
		g.update(in)
	}
	return g.round.End(g.State())
}

// update runs one tick: ship, player shots, formation, hostile fire,
// power-ups, then the clear and loss checks.
func (g *Game) update(in core.InputFrame) {
	g.moveShip(in)
	if in.Has(core.Shoot) {
		g.fire()
	}
	if g.cooldown > 0 {
		g.cooldown--
	}

	g.resolveShots()
	g.formation.March(g.cfg.Court.Width, g.cfg.Formation.Margin, g.cfg.Formation.Drop)
	g.hostileFire()
	g.resolveBombs()
	g.collectPowerUps()

	g.checkPhase()
}

func (g *Game) moveShip(in core.InputFrame) {
	if in.Has(core.MoveLeft) {
		g.ship.X -= g.cfg.Ship.Speed
	}
	if in.Has(core.MoveRight) {
		g.ship.X += g.cfg.Ship.Speed
	}
	g.ship.X = core.ClampF(g.ship.X, 0, g.cfg.Court.Width-g.ship.W)
}

// checkPhase ends the level when the formation is gone and the game when
// the ship is out of lives or the formation reached the ship line.
func (g *Game) checkPhase() {
	switch {
	case g.formation.Empty():
		g.round.Machine.Fire(phase.Cleared)
		g.round.Record(EventLevelComplete, g.State(), fmt.Sprintf("level %d", g.level))
		g.round.Machine.After(config.Millis(g.cfg.Gameplay.LevelCompleteMilli), phase.Advance)
	case g.lives <= 0 || g.formation.Reached(g.ship.Y):
		g.round.Machine.Fire(phase.Terminal)
		g.round.Record(EventGameOver, g.State(), fmt.Sprintf("level %d", g.level))
	}
}

// Pending reports the scheduled level advance, if any.
func (g *Game) Pending() (phase.Deferred, bool) {
	return g.round.Machine.Pending()
}

// Resolve fires the deferred level advance. The next level is built only if
// the trigger actually moved the game back to Playing.
func (g *Game) Resolve(id uint64) bool {
	was := g.round.Phase()
	if !g.round.Machine.Resolve(id) {
		return false
	}
	if was == phase.LevelComplete && g.round.Playing() {
		g.level++
		g.setupLevel()
	}
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.round.Phase(),
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
	}
}

// Formation returns a copy of the formation.
func (g *Game) Formation() Formation {
	f := g.formation
	f.Members = append([]Invader(nil), g.formation.Members...)
	return f
}

// Recent returns the latest ledger events.
func (g *Game) Recent(n int) []ledger.Event {
	return g.round.Ledger.Recent(n)
}

// Render draws the court into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 40 || h < 16 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Lives: %d  Level: %d", g.score, g.lives, g.level))
	dst.DrawBox(core.NewRect(0, 1, w, h-1))
	vp := core.Viewport{Area: core.NewRect(1, 2, w-2, h-3), CourtW: g.cfg.Court.Width, CourtH: g.cfg.Court.Height}

	for _, b := range g.barriers {
		vp.Fill(dst, b.Box, barrierGlyph(b.Health, g.cfg.Barriers.Health), core.ColorGreen)
	}
	for _, m := range g.formation.Members {
		vp.Fill(dst, m.Box, invaderGlyph(m.Row), invaderColor(m.Row))
	}
	for _, p := range g.powerUps {
		if p.Kind == PowerUpLife {
			vp.Fill(dst, p.Box, '+', core.ColorMagenta)
		} else {
			vp.Fill(dst, p.Box, '≡', core.ColorCyan)
		}
	}
	for _, b := range g.shots {
		x, y := vp.Cell(b.Center().X, b.Y)
		dst.SetColor(x, y, '|', core.ColorYellow)
	}
	for _, b := range g.bombs {
		x, y := vp.Cell(b.Center().X, b.Y)
		dst.SetColor(x, y, '!', core.ColorRed)
	}
	vp.Fill(dst, g.ship, '▲', core.ColorGreen)

	mid := h / 2
	switch g.round.Phase() {
	case phase.Menu:
		dst.DrawTextCentered(mid, "Press Enter to start")
	case phase.Paused:
		dst.DrawTextCentered(mid, "PAUSED")
	case phase.LevelComplete:
		dst.DrawTextCentered(mid, fmt.Sprintf("LEVEL %d COMPLETE", g.level))
	case phase.GameOver:
		dst.DrawTextCentered(mid, fmt.Sprintf("GAME OVER  %d  - press R", g.score))
	}
}

func invaderGlyph(row int) rune {
	switch {
	case row < 2:
		return 'W'
	case row < 4:
		return 'M'
	default:
		return 'V'
	}
}

func invaderColor(row int) core.Color {
	switch {
	case row < 2:
		return core.ColorRed
	case row < 4:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

func barrierGlyph(health, full int) rune {
	switch {
	case health*3 > full*2:
		return '█'
	case health*3 > full:
		return '▓'
	default:
		return '░'
	}
}
