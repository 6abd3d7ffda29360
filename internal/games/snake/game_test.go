package snake

import (
	"testing"

	"github.com/vovakirdan/arcade-cores/internal/config"
	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

func started(t *testing.T, cfg config.SnakeConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	g.Step(core.Frame(core.Start))
	if g.State().Phase != phase.Playing {
		t.Fatalf("expected Playing, got %v", g.State().Phase)
	}
	return g
}

func TestFirstTick(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())

	res := g.Step(core.NewInputFrame())

	body := g.Body()
	if len(body) != 1 {
		t.Fatalf("expected length 1, got %d", len(body))
	}
	if body[0] != (Point{X: 11, Y: 10}) {
		t.Errorf("expected head at (11,10), got %v", body[0])
	}
	if res.State.Phase != phase.Playing {
		t.Errorf("expected Playing, got %v", res.State.Phase)
	}
	if g.Food() != (Point{X: 15, Y: 15}) {
		t.Errorf("expected initial food at (15,15), got %v", g.Food())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}
	g1, g2 := New(), New()
	g1.Reset(cfg)
	g2.Reset(cfg)

	script := map[int]core.Intent{0: core.Start, 3: core.MoveDown, 8: core.MoveRight, 12: core.MoveUp, 20: core.MoveLeft}
	for i := 0; i < 60; i++ {
		in := core.NewInputFrame()
		if intent, ok := script[i]; ok {
			in.Set(intent)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Hash() != g2.Hash() {
		t.Errorf("hash mismatch:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())

	g.Step(core.Frame(core.MoveLeft))

	if g.direction != DirRight {
		t.Errorf("reversal should be ignored, direction %v", g.direction)
	}
	if head := g.Body()[0]; head != (Point{X: 11, Y: 10}) {
		t.Errorf("expected head at (11,10), got %v", head)
	}
}

func TestTurnAppliesOnNextMove(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())

	g.Step(core.Frame(core.MoveDown))
	if head := g.Body()[0]; head != (Point{X: 11, Y: 10}) {
		t.Fatalf("first move should use the committed direction, head %v", head)
	}
	if g.direction != DirDown {
		t.Fatalf("queued direction not committed, got %v", g.direction)
	}

	g.Step(core.NewInputFrame())
	if head := g.Body()[0]; head != (Point{X: 11, Y: 11}) {
		t.Errorf("expected head at (11,11), got %v", head)
	}
}

func TestQueuedReversalAfterTurnIsRejected(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())
	g.Step(core.Frame(core.MoveDown)) // committed: down

	g.Step(core.Frame(core.MoveUp))

	if g.queued != DirDown {
		t.Errorf("up must be rejected while heading down, queued %v", g.queued)
	}
}

func TestGrowsByExactlyOne(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())
	g.snake = []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	g.food = Point{X: 6, Y: 5}

	res := g.Step(core.NewInputFrame())

	if len(g.snake) != 4 {
		t.Errorf("expected length 4, got %d", len(g.snake))
	}
	if res.State.Score != 10 {
		t.Errorf("expected score 10, got %d", res.State.Score)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventFood {
		t.Errorf("expected one food event, got %+v", res.Events)
	}
	if g.occupied(g.food) || !g.inside(g.food) {
		t.Errorf("food respawned on an invalid cell %v", g.food)
	}

	g.food = Point{X: 0, Y: 0}
	g.Step(core.NewInputFrame())
	if len(g.snake) != 4 {
		t.Errorf("length should stay 4 without food, got %d", len(g.snake))
	}
}

func TestWallCollision(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())
	g.snake = []Point{{X: 19, Y: 3}}

	res := g.Step(core.NewInputFrame())

	if res.State.Phase != phase.GameOver {
		t.Fatalf("expected GameOver, got %v", res.State.Phase)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventCrashed {
		t.Errorf("expected crashed event, got %+v", res.Events)
	}
}

func TestSelfCollision(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())
	// Head at (5,5) heading down into its own body at (5,6).
	g.snake = []Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	g.direction, g.queued = DirDown, DirDown

	res := g.Step(core.NewInputFrame())

	if res.State.Phase != phase.GameOver {
		t.Errorf("expected GameOver, got %v", res.State.Phase)
	}
}

func TestFollowingTailIsAllowed(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())
	// A 2x2 loop: the head moves into the cell the tail is leaving.
	g.snake = []Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	g.direction, g.queued = DirDown, DirDown

	res := g.Step(core.NewInputFrame())

	if res.State.Phase != phase.Playing {
		t.Errorf("moving into the vacated tail cell should be legal, got %v", res.State.Phase)
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.Width, cfg.Board.Height = 3, 1
	g := started(t, cfg)
	g.snake = []Point{{X: 1, Y: 0}, {X: 0, Y: 0}}
	g.food = Point{X: 2, Y: 0}

	res := g.Step(core.NewInputFrame())

	if res.State.Phase != phase.GameOver {
		t.Errorf("expected GameOver on a full board, got %v", res.State.Phase)
	}
	if len(g.snake) != 3 {
		t.Errorf("expected length 3, got %d", len(g.snake))
	}
}

func TestPauseFreezesSnake(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())
	g.Step(core.Frame(core.TogglePause))
	before := g.Snapshot()

	for i := 0; i < 5; i++ {
		g.Step(core.Frame(core.MoveDown))
	}

	if g.Snapshot() != before {
		t.Error("snake moved while paused")
	}
}

func TestResetIntentFromGameOver(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())
	g.snake = []Point{{X: 19, Y: 3}}
	g.Step(core.NewInputFrame())

	g.Step(core.Frame(core.Reset))

	if g.State().Phase != phase.Menu {
		t.Errorf("expected Menu, got %v", g.State().Phase)
	}
	if g.State().Score != 0 || len(g.snake) != 1 {
		t.Errorf("entities not rebuilt: score=%d len=%d", g.State().Score, len(g.snake))
	}
	if len(g.Recent(5)) != 0 {
		t.Error("ledger not cleared")
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := started(t, config.DefaultSnakeConfig())
	for _, size := range [][2]int{{80, 24}, {10, 5}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}
