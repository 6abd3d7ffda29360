package snake

import (
	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    phase.Phase
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	Queued   Direction
	FoodX    int
	FoodY    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.round.Tick,
		Phase:    g.round.Phase(),
		Score:    g.score,
		SnakeLen: len(g.snake),
		HeadX:    g.snake[0].X,
		HeadY:    g.snake[0].Y,
		Dir:      g.direction,
		Queued:   g.queued,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
	}
}

// Hash digests the snapshot and every body segment.
func (g *Game) Hash() uint64 {
	s := g.Snapshot()
	d := core.NewDigest().
		Int(int64(s.Tick)).Int(int64(s.Phase)).Int(int64(s.Score)).
		Int(int64(s.Dir)).Int(int64(s.Queued)).
		Int(int64(s.FoodX)).Int(int64(s.FoodY))
	for _, p := range g.snake {
		d.Int(int64(p.X)).Int(int64(p.Y))
	}
	return d.Sum()
}
