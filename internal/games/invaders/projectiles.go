package invaders

import (
	"fmt"

	"github.com/vovakirdan/arcade-cores/internal/core"
)

// Bullet dimensions in court units.
const (
	BulletW = 4
	BulletH = 10
)

// Bullet is a projectile moving vertically.
type Bullet struct {
	core.Box
	VY float64
}

// PowerUpKind identifies a falling pickup.
type PowerUpKind int

const (
	PowerUpLife PowerUpKind = iota
	PowerUpMultishot
)

func (k PowerUpKind) String() string {
	if k == PowerUpLife {
		return "life"
	}
	return "multishot"
}

// PowerUp is a falling pickup dropped by a destroyed invader.
type PowerUp struct {
	core.Box
	Kind PowerUpKind
	VY   float64
}

// Barrier is a block of cover. It is removed when health reaches zero.
type Barrier struct {
	core.Box
	ID     int
	Health int
}

// newBullet creates a bullet centered horizontally on x.
func newBullet(x, y, vy float64) Bullet {
	return Bullet{Box: core.Box{X: x - BulletW/2, Y: y, W: BulletW, H: BulletH}, VY: vy}
}

// fire launches one player bullet when the cap and cooldown allow it.
func (g *Game) fire() {
	if len(g.shots) >= g.cfg.Ship.MaxBullets || g.cooldown > 0 {
		return
	}
	g.shots = append(g.shots, newBullet(g.ship.Center().X, g.ship.Y, -g.cfg.Ship.BulletSpeed))
	g.cooldown = g.cfg.Ship.Cooldown
}

// multishot launches a spread of three bullets regardless of the cap.
func (g *Game) multishot() {
	spread := g.cfg.PowerUps.Spread
	cx := g.ship.Center().X
	for _, off := range []float64{-spread, 0, spread} {
		g.shots = append(g.shots, newBullet(cx+off, g.ship.Y, -g.cfg.Ship.BulletSpeed))
	}
}

// resolveShots moves player bullets. A bullet destroys the first invader it
// overlaps; only a bullet that missed every invader can be stopped by a
// barrier, which takes no damage.
func (g *Game) resolveShots() {
	kept := g.shots[:0]
	for _, b := range g.shots {
		b.Y += b.VY
		if b.Y < 0 {
			continue
		}
		if g.hitInvader(b.Box) {
			continue
		}
		if g.blockedByBarrier(b.Box) {
			continue
		}
		kept = append(kept, b)
	}
	g.shots = kept
}

func (g *Game) hitInvader(b core.Box) bool {
	for i := len(g.formation.Members) - 1; i >= 0; i-- {
		if !b.Intersects(g.formation.Members[i].Box) {
			continue
		}
		m := g.formation.Remove(i)
		g.score += m.Points
		g.round.Record(EventInvaderDestroyed, g.State(), fmt.Sprintf("row %d col %d +%d", m.Row, m.Col, m.Points))
		g.maybeDrop(m)
		return true
	}
	return false
}

func (g *Game) blockedByBarrier(b core.Box) bool {
	for _, bar := range g.barriers {
		if b.Intersects(bar.Box) {
			return true
		}
	}
	return false
}

// maybeDrop spawns a power-up where an invader died.
func (g *Game) maybeDrop(m Invader) {
	if g.rng.Float64() >= g.cfg.PowerUps.Chance {
		return
	}
	kind := PowerUpMultishot
	if g.rng.Float64() < 0.5 {
		kind = PowerUpLife
	}
	size := g.cfg.PowerUps.Size
	g.powerUps = append(g.powerUps, PowerUp{
		Box:  core.Box{X: m.Center().X, Y: m.Y, W: size, H: size},
		Kind: kind,
		VY:   g.cfg.PowerUps.Speed,
	})
}

// hostileFire counts down the shared cooldown and, on expiry, fires from a
// random front-row invader.
func (g *Game) hostileFire() {
	g.sinceShot++
	if float64(g.sinceShot) < g.shotCooldown || g.formation.Empty() {
		return
	}
	front := g.formation.Front()
	shooter := g.formation.Members[front[g.rng.Intn(len(front))]]
	g.bombs = append(g.bombs, newBullet(shooter.Center().X, shooter.Bottom(), g.cfg.Formation.BulletSpeed))
	g.sinceShot = 0
	g.shotCooldown = g.sampleCooldown()
}

func (g *Game) sampleCooldown() float64 {
	lo, hi := g.cfg.Formation.CooldownMin, g.cfg.Formation.CooldownMax
	return float64(lo) + g.rng.Float64()*float64(hi-lo)
}

// resolveBombs moves hostile bullets. The ship is checked first; a bullet
// that missed the ship damages the first barrier it overlaps.
func (g *Game) resolveBombs() {
	kept := g.bombs[:0]
	for _, b := range g.bombs {
		b.Y += b.VY
		if b.Y > g.cfg.Court.Height {
			continue
		}
		if b.Intersects(g.ship) {
			g.lives--
			g.round.Record(EventPlayerHit, g.State(), fmt.Sprintf("lives %d", g.lives))
			continue
		}
		if g.damageBarrier(b.Box) {
			continue
		}
		kept = append(kept, b)
	}
	g.bombs = kept
}

func (g *Game) damageBarrier(b core.Box) bool {
	for i := range g.barriers {
		bar := &g.barriers[i]
		if !b.Intersects(bar.Box) {
			continue
		}
		bar.Health--
		g.round.Record(EventBarrierDamaged, g.State(), fmt.Sprintf("barrier %d health %d", bar.ID, bar.Health))
		if bar.Health <= 0 {
			g.round.Record(EventBarrierDestroyed, g.State(), fmt.Sprintf("barrier %d", bar.ID))
			g.barriers = append(g.barriers[:i], g.barriers[i+1:]...)
		}
		return true
	}
	return false
}

// collectPowerUps moves pickups and applies the ones the ship touches.
func (g *Game) collectPowerUps() {
	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.Y += p.VY
		if p.Y > g.cfg.Court.Height {
			continue
		}
		if !p.Intersects(g.ship) {
			kept = append(kept, p)
			continue
		}
		switch p.Kind {
		case PowerUpLife:
			g.lives = min(g.lives+1, g.cfg.Ship.MaxLives)
			g.round.Record(EventLifeGained, g.State(), "")
		case PowerUpMultishot:
			g.multishot()
			g.round.Record(EventMultishotGained, g.State(), "")
		}
	}
	g.powerUps = kept
}
