// Package snake implements grid Snake: eat food, grow by one, avoid walls
// and your own tail.
package snake

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

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) delta() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	default:
		return Point{X: 1}
	}
}

// opposite reports whether d and o point in opposite directions.
func (d Direction) opposite(o Direction) bool {
	return (d+2)%4 == o
}

// Point represents a grid cell.
type Point struct {
	X, Y int
}

func (p Point) add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Ledger event kinds.
const (
	EventFood      ledger.Kind = "food"
	EventCrashed   ledger.Kind = "crashed"
	EventBoardFull ledger.Kind = "board_full"
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

// Game implements the Snake game.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     core.Rand
	round   *round.Round

	snake     []Point // head at index 0
	direction Direction
	queued    Direction // applied after the next move
	food      Point
	score     int
}

// New creates a Snake game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultSnakeConfig())
}

// NewWithConfig creates a Snake game with the given configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	g := &Game{cfg: cfg, rng: core.NewRand(0)}
	g.round = round.New(g.rebuild)
	g.rebuild()
	return g
}

func init() {
	registry.Register("snake", func() registry.Game {
		cfg, err := config.LoadSnake(configPath, difficultyPreset)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
			config.ApplySnakePreset(&cfg, difficultyPreset)
		}
		return NewWithConfig(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Cadence returns the move interval. Every update moves the snake one cell.
func (g *Game) Cadence() time.Duration {
	return config.Millis(g.cfg.Gameplay.MoveMilli)
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

// rebuild places a one-cell snake in the middle heading right, with the
// first food in the lower right quadrant.
func (g *Game) rebuild() {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	g.snake = []Point{{X: w / 2, Y: h / 2}}
	g.direction = DirRight
	g.queued = DirRight
	g.score = 0

	g.food = Point{X: w * 3 / 4, Y: h * 3 / 4}
	if g.occupied(g.food) || !g.inside(g.food) {
		g.spawnFood()
	}
}

func (g *Game) inside(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.Board.Width && p.Y >= 0 && p.Y < g.cfg.Board.Height
}

func (g *Game) occupied(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a random free cell. It returns false when the
// board is full.
func (g *Game) spawnFood() bool {
	var free []Point
	for y, h := 0, g.cfg.Board.Height; y < h; y++ {
		for x, w := 0, g.cfg.Board.Width; x < w; x++ {
			if p := (Point{X: x, Y: y}); !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = Point{X: -1, Y: -1}
		return false
	}
	g.food = free[g.rng.Intn(len(free))]
	return true
}

// Step applies lifecycle intents and moves the snake one cell.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.Begin(in) {
		g.steer(in)
		g.move()
	}
	return g.round.End(g.State())
}

// steer queues a direction change. Reversals are dropped.
func (g *Game) steer(in core.InputFrame) {
	next := g.queued
	switch {
	case in.Has(core.MoveUp):
		next = DirUp
	case in.Has(core.MoveDown):
		next = DirDown
	case in.Has(core.MoveLeft):
		next = DirLeft
	case in.Has(core.MoveRight):
		next = DirRight
	}
	if !next.opposite(g.direction) {
		g.queued = next
	}
}

// move advances the head along the committed direction, then commits the
// queued one.
func (g *Game) move() {
	head := g.snake[0].add(g.direction.delta())
	g.direction = g.queued

	eating := head == g.food
	body := g.snake
	if !eating {
		body = body[:len(body)-1] // the tail moves out of the way
	}
	if !g.inside(head) || containsPoint(body, head) {
		g.round.Machine.Fire(phase.Terminal)
		g.round.Record(EventCrashed, g.State(), fmt.Sprintf("(%d,%d)", head.X, head.Y))
		return
	}

	g.snake = append([]Point{head}, body...)
	if !eating {
		return
	}

	g.score += g.cfg.Gameplay.FoodPoints
	g.round.Record(EventFood, g.State(), fmt.Sprintf("length %d", len(g.snake)))
	if !g.spawnFood() {
		g.round.Machine.Fire(phase.Terminal)
		g.round.Record(EventBoardFull, g.State(), "")
	}
}

func containsPoint(ps []Point, p Point) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.round.Phase(),
		Score: g.score,
	}
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []Point {
	out := make([]Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Food returns the food cell.
func (g *Game) Food() Point {
	return g.food
}

// Recent returns the latest ledger events.
func (g *Game) Recent(n int) []ledger.Event {
	return g.round.Ledger.Recent(n)
}

// Pending reports the deferred trigger. Snake never schedules one.
func (g *Game) Pending() (phase.Deferred, bool) {
	return g.round.Machine.Pending()
}

// Resolve fires a deferred trigger.
func (g *Game) Resolve(id uint64) bool {
	return g.round.Machine.Resolve(id)
}

// Render draws the board. Each cell is two columns wide.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	bw, bh := g.cfg.Board.Width, g.cfg.Board.Height
	needW, needH := bw*2+2, bh+3
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawText(0, 0, fmt.Sprintf("Window too small (need %dx%d)", needW, needH))
		return
	}

	dst.DrawText(1, 0, fmt.Sprintf("Snake  Score: %d  Length: %d", g.score, len(g.snake)))
	ox := (dst.Width() - needW) / 2
	dst.DrawBox(core.NewRect(ox, 1, needW, bh+2))

	cell := func(p Point, r rune, c core.Color) {
		x, y := ox+1+p.X*2, 2+p.Y
		dst.SetColor(x, y, r, c)
		dst.SetColor(x+1, y, r, c)
	}
	if g.inside(g.food) {
		cell(g.food, '●', core.ColorRed)
	}
	for i, seg := range g.snake {
		if i == 0 {
			cell(seg, '█', core.ColorGreen)
		} else {
			cell(seg, '▓', core.ColorGreen)
		}
	}

	mid := 2 + bh/2
	switch g.round.Phase() {
	case phase.Menu:
		dst.DrawTextCentered(mid, "Press Enter to start")
	case phase.Paused:
		dst.DrawTextCentered(mid, "PAUSED")
	case phase.GameOver:
		dst.DrawTextCentered(mid, fmt.Sprintf("GAME OVER  %d  - press R", g.score))
	}
}
