package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/ledger"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

func started(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})
	g.Step(core.Frame(core.Start))
	if g.State().Phase != phase.Playing {
		t.Fatalf("expected Playing after Start, got %v", g.State().Phase)
	}
	return g
}

func hasKind(events []ledger.Event, kind ledger.Kind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}
	g1, g2 := New(), New()
	g1.Reset(cfg)
	g2.Reset(cfg)

	for i := 0; i < 1500; i++ {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.Start)
		case i%90 < 30:
			in.Set(core.MoveUp)
		case i%90 < 60:
			in.Set(core.MoveDown)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if h1, h2 := g1.Snapshot().Hash(), g2.Snapshot().Hash(); h1 != h2 {
		t.Errorf("snapshot hash mismatch: %x vs %x", h1, h2)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMenuDoesNotUpdate(t *testing.T) {
	g := New()
	before := g.Snapshot()
	g.Step(core.Frame(core.MoveUp))
	if g.Snapshot() != before {
		t.Error("game updated while in Menu")
	}
}

func TestStartFrameDoesNotUpdate(t *testing.T) {
	g := New()
	before := g.Snapshot()
	g.Step(core.Frame(core.Start))
	after := g.Snapshot()
	if after.Ball != before.Ball || after.Tick != 0 {
		t.Errorf("Start frame ran an update: tick=%d", after.Tick)
	}
}

func TestPauseBlocksUpdates(t *testing.T) {
	g := started(t)
	g.Step(core.NewInputFrame())

	g.Step(core.Frame(core.TogglePause))
	if g.State().Phase != phase.Paused {
		t.Fatalf("expected Paused, got %v", g.State().Phase)
	}
	frozen := g.Snapshot()
	for i := 0; i < 20; i++ {
		g.Step(core.Frame(core.MoveDown))
	}
	if g.Snapshot() != frozen {
		t.Error("state changed while paused")
	}

	g.Step(core.Frame(core.TogglePause))
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != frozen.Tick+1 {
		t.Errorf("expected one update after resume, tick %d -> %d", frozen.Tick, g.Snapshot().Tick)
	}
}

func TestPlayerPaddleClamped(t *testing.T) {
	g := started(t)
	for i := 0; i < 200; i++ {
		g.Step(core.Frame(core.MoveUp))
	}
	if g.player.Y != 0 {
		t.Errorf("paddle should stop at the top, got y=%v", g.player.Y)
	}
	for i := 0; i < 200; i++ {
		g.Step(core.Frame(core.MoveDown))
	}
	if want := g.cfg.Court.Height - g.cfg.Paddle.Height; g.player.Y != want {
		t.Errorf("paddle should stop at %v, got y=%v", want, g.player.Y)
	}
}

func TestBallStaysInVerticalBounds(t *testing.T) {
	g := started(t)
	r := g.cfg.Ball.Size / 2
	for i := 0; i < 3000; i++ {
		if g.State().Phase != phase.Playing {
			g.Step(core.Frame(core.Reset))
			g.Step(core.Frame(core.Start))
		}
		g.Step(core.NewInputFrame())
		if g.ball.Y < r || g.ball.Y > g.cfg.Court.Height-r {
			t.Fatalf("tick %d: ball y=%v outside [%v, %v]", i, g.ball.Y, r, g.cfg.Court.Height-r)
		}
	}
}

func TestWallReflectionPreservesSpeed(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		vy   float64
	}{
		{"top", 8, -3},
		{"bottom", 392, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := started(t)
			g.ball = Ball{X: 400, Y: tt.y, VX: 2, VY: tt.vy}
			speed := math.Hypot(g.ball.VX, g.ball.VY)

			g.Step(core.NewInputFrame())

			if math.Signbit(g.ball.VY) == math.Signbit(tt.vy) {
				t.Errorf("VY not reflected: %v", g.ball.VY)
			}
			if got := math.Hypot(g.ball.VX, g.ball.VY); math.Abs(got-speed) > 1e-9 {
				t.Errorf("speed changed: %v -> %v", speed, got)
			}
			r := g.cfg.Ball.Size / 2
			if g.ball.Y < r || g.ball.Y > g.cfg.Court.Height-r {
				t.Errorf("ball y=%v left the court", g.ball.Y)
			}
		})
	}
}

func TestPaddleSpin(t *testing.T) {
	g := started(t)
	center := g.player.Center().Y
	g.ball = Ball{X: 49, Y: center + 20, VX: -2, VY: 0}

	g.Step(core.NewInputFrame())

	if g.ball.VX <= 0 {
		t.Fatalf("ball should bounce right, VX=%v", g.ball.VX)
	}
	if want := 20 / g.cfg.Ball.SpinDivisor; math.Abs(g.ball.VY-want) > 1e-9 {
		t.Errorf("expected spin VY=%v, got %v", want, g.ball.VY)
	}
}

func TestBallMovingAwayIgnoresPaddle(t *testing.T) {
	g := started(t)
	center := g.player.Center().Y
	g.ball = Ball{X: 45, Y: center, VX: 2, VY: 0}

	g.Step(core.NewInputFrame())

	if g.ball.VX != 2 {
		t.Errorf("ball moving away should keep VX=2, got %v", g.ball.VX)
	}
}

func TestScoringAndWin(t *testing.T) {
	g := started(t)
	g.playerScore = g.cfg.Gameplay.WinScore - 1
	g.ball = Ball{X: g.cfg.Court.Width - 1, Y: 20, VX: 2}

	res := g.Step(core.NewInputFrame())

	if p, _ := g.Scores(); p != g.cfg.Gameplay.WinScore {
		t.Errorf("expected player score %d, got %d", g.cfg.Gameplay.WinScore, p)
	}
	if res.State.Phase != phase.GameOver {
		t.Errorf("expected GameOver, got %v", res.State.Phase)
	}
	if !hasKind(res.Events, EventPlayerScore) || !hasKind(res.Events, EventMatchWon) {
		t.Errorf("missing events: %+v", res.Events)
	}

	tick := g.Snapshot().Tick
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != tick {
		t.Error("GameOver should not update")
	}

	g.Step(core.Frame(core.Reset))
	if g.State().Phase != phase.Menu {
		t.Errorf("expected Menu after Reset, got %v", g.State().Phase)
	}
	if p, a := g.Scores(); p != 0 || a != 0 {
		t.Errorf("scores not cleared: %d-%d", p, a)
	}
	if len(g.Recent(10)) != 0 {
		t.Error("ledger not cleared on Reset")
	}
}

func TestOpponentScores(t *testing.T) {
	g := started(t)
	g.ball = Ball{X: 1, Y: 20, VX: -2}

	res := g.Step(core.NewInputFrame())

	if _, a := g.Scores(); a != 1 {
		t.Errorf("expected opponent score 1, got %d", a)
	}
	if !hasKind(res.Events, EventAIScore) {
		t.Errorf("missing ai_score event: %+v", res.Events)
	}
	if g.ball.X != g.cfg.Court.Width/2 || g.ball.VY != 0 {
		t.Errorf("ball not re-served: %+v", g.ball)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := started(t)
	for _, size := range [][2]int{{80, 24}, {10, 5}, {200, 60}} {
		s := core.NewScreen(size[0], size[1])
		g.Render(s)
	}
}
