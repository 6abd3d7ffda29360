package pong

import (
	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

// Snapshot captures the complete match state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Phase       phase.Phase
	Ball        Ball
	PlayerY     float64
	OpponentY   float64
	PlayerScore int
	AIScore     int
	AITarget    float64
	Confidence  float64
}

// Snapshot returns the current match snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.round.Tick,
		Phase:       g.round.Phase(),
		Ball:        g.ball,
		PlayerY:     g.player.Y,
		OpponentY:   g.opponent.Y,
		PlayerScore: g.playerScore,
		AIScore:     g.aiScore,
		AITarget:    g.ai.Target(),
		Confidence:  g.ai.Confidence(),
	}
}

// Hash digests every snapshot field.
func (s Snapshot) Hash() uint64 {
	return core.NewDigest().
		Int(int64(s.Tick)).
		Int(int64(s.Phase)).
		Float(s.Ball.X).Float(s.Ball.Y).
		Float(s.Ball.VX).Float(s.Ball.VY).
		Float(s.PlayerY).Float(s.OpponentY).
		Int(int64(s.PlayerScore)).Int(int64(s.AIScore)).
		Float(s.AITarget).Float(s.Confidence).
		Sum()
}

// Hash digests the current snapshot.
func (g *Game) Hash() uint64 {
	return g.Snapshot().Hash()
}
