package invaders

import (
	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

// Snapshot summarizes the game for determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     phase.Phase
	Score     int
	Lives     int
	Level     int
	ShipX     float64
	Invaders  int
	Direction float64
	Speed     float64
	Shots     int
	Bombs     int
	PowerUps  int
	Barriers  int
}

// Snapshot returns the current summary.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.round.Tick,
		Phase:     g.round.Phase(),
		Score:     g.score,
		Lives:     g.lives,
		Level:     g.level,
		ShipX:     g.ship.X,
		Invaders:  len(g.formation.Members),
		Direction: g.formation.Dir,
		Speed:     g.formation.Speed,
		Shots:     len(g.shots),
		Bombs:     len(g.bombs),
		PowerUps:  len(g.powerUps),
		Barriers:  len(g.barriers),
	}
}

// Hash digests the summary and every entity position.
func (g *Game) Hash() uint64 {
	s := g.Snapshot()
	d := core.NewDigest().
		Int(int64(s.Tick)).Int(int64(s.Phase)).
		Int(int64(s.Score)).Int(int64(s.Lives)).Int(int64(s.Level)).
		Float(s.ShipX).Float(s.Direction).Float(s.Speed).
		Float(g.shotCooldown).Int(int64(g.sinceShot))
	for _, m := range g.formation.Members {
		d.Float(m.X).Float(m.Y)
	}
	for _, b := range g.shots {
		d.Float(b.X).Float(b.Y)
	}
	for _, b := range g.bombs {
		d.Float(b.X).Float(b.Y)
	}
	for _, p := range g.powerUps {
		d.Int(int64(p.Kind)).Float(p.X).Float(p.Y)
	}
	for _, b := range g.barriers {
		d.Int(int64(b.ID)).Int(int64(b.Health))
	}
	return d.Sum()
}
