package pong

import (
	"github.com/vovakirdan/arcade-cores/internal/core"
)

// movePlayer applies MoveUp/MoveDown to the left paddle within the court.
func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Paddle.Speed
	if in.Has(core.MoveUp) {
		g.player.Y -= speed
	}
	if in.Has(core.MoveDown) {
		g.player.Y += speed
	}
	g.player.Y = core.ClampF(g.player.Y, 0, g.cfg.Court.Height-g.player.H)
}

func (g *Game) integrateBall() {
	g.ball.X += g.ball.VX
	g.ball.Y += g.ball.VY
}

// reflectWalls bounces the ball off the top and bottom walls. The overshoot
// is mirrored back into the court so the ball never leaves the vertical
// bounds, and only the sign of VY changes so speed is preserved.
func (g *Game) reflectWalls() {
	r := g.cfg.Ball.Size / 2
	top, bottom := r, g.cfg.Court.Height-r

	switch {
	case g.ball.Y <= top:
		g.ball.Y = top + (top - g.ball.Y)
		if g.ball.VY < 0 {
			g.ball.VY = -g.ball.VY
		}
	case g.ball.Y >= bottom:
		g.ball.Y = bottom - (g.ball.Y - bottom)
		if g.ball.VY > 0 {
			g.ball.VY = -g.ball.VY
		}
	}
	// A single overshoot larger than the court would mirror past the
	// opposite wall.
	g.ball.Y = core.ClampF(g.ball.Y, top, bottom)
}

// ballBox returns the ball's bounding box.
func (g *Game) ballBox() core.Box {
	s := g.cfg.Ball.Size
	return core.Box{X: g.ball.X - s/2, Y: g.ball.Y - s/2, W: s, H: s}
}

// resolvePaddles reverses the ball on paddle contact and sets VY from the
// contact offset. Only a ball moving toward a paddle can hit it.
func (g *Game) resolvePaddles() {
	b := g.ballBox()

	if g.ball.VX < 0 && g.hits(b, g.player) {
		g.ball.VX = -g.ball.VX
		g.ball.VY = g.spin(g.player)
		return
	}
	if g.ball.VX > 0 && g.hits(b, g.opponent) {
		g.ball.VX = -g.ball.VX
		g.ball.VY = g.spin(g.opponent)
		g.ai.Hit()
	}
}

// hits reports contact: the boxes touch horizontally and the ball center is
// within the paddle's vertical span.
func (g *Game) hits(ball, paddle core.Box) bool {
	touching := ball.X <= paddle.Right() && ball.Right() >= paddle.X
	return touching && g.ball.Y >= paddle.Y && g.ball.Y <= paddle.Bottom()
}

func (g *Game) spin(paddle core.Box) float64 {
	return (g.ball.Y - paddle.Center().Y) / g.cfg.Ball.SpinDivisor
}
