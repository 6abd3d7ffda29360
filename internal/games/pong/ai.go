package pong

import (
	"math"

	"github.com/vovakirdan/arcade-cores/internal/config"
	"github.com/vovakirdan/arcade-cores/internal/core"
)

// Opponent tuning. Confidence and the configured base values scale all of
// these.
const (
	shockThreshold  = 1.1  // speed ratio that counts as a sudden speed-up
	shockPenalty    = 0.25 // confidence lost on a speed shock
	streakBonus     = 0.02 // confidence gained per tick on a hit streak
	streakLength    = 5
	scoreBonus      = 0.05 // confidence gained when the opponent scores
	missPenalty     = 0.3  // confidence lost when the opponent misses
	fatiguePerRally = 0.015
	fatigueFloor    = 0.6
	maxSpeedMul     = 2.0

	reactionPerSpeed = 15
	reactionPerDoubt = 12

	reversalError     = 45
	reversalErrPerMul = 25
	predictionError   = 60
	misjudgeError     = 90
	wanderBase        = 45
	wanderPerRally    = 3

	deadZoneBase  = 22
	deadZoneDoubt = 12
	cornerReach   = 120
	cornerUrgency = 1.4
	urgencyCap    = 1.6
	urgencyScale  = 60
	jitter        = 0.8
	minStep       = 0.6
)

// Opponent is the adaptive paddle controller. It models a player who gets
// shaken by fast balls and misses, steadies on a hit streak and tires over a
// long rally.
type Opponent struct {
	cfg       config.PongAI
	courtH    float64
	paddleH   float64
	paddleX   float64 // face the ball must reach
	baseSpeed float64 // serve speed, the reference for speed multipliers

	target     float64
	delay      int
	lastDir    int
	errOffset  float64
	counter    int
	rally      int
	lastSpeed  float64
	confidence float64
	streak     int
}

// NewOpponent creates a centered, undecided opponent.
func NewOpponent(cfg config.PongConfig) Opponent {
	return Opponent{
		cfg:        cfg.AI,
		courtH:     cfg.Court.Height,
		paddleH:    cfg.Paddle.Height,
		paddleX:    cfg.Court.Width - cfg.Paddle.Inset - cfg.Paddle.Width,
		baseSpeed:  cfg.Ball.Speed,
		target:     cfg.Court.Height / 2,
		lastDir:    1,
		lastSpeed:  cfg.Ball.Speed,
		confidence: core.ClampF(cfg.AI.InitialConfidence, cfg.AI.MinConfidence, cfg.AI.MaxConfidence),
	}
}

// Target returns the y the paddle center is steering toward.
func (o *Opponent) Target() float64 {
	return o.target
}

// Confidence returns the current confidence.
func (o *Opponent) Confidence() float64 {
	return o.confidence
}

// Hit records a successful return.
func (o *Opponent) Hit() {
	o.streak++
}

// Scored records a point won by the opponent.
func (o *Opponent) Scored() {
	o.streak = 0
	o.rally = 0
	o.confidence = math.Min(o.cfg.MaxConfidence, o.confidence+scoreBonus)
}

// Missed records a point lost by the opponent.
func (o *Opponent) Missed() {
	o.streak = 0
	o.rally = 0
	o.confidence = math.Max(o.cfg.MinConfidence, o.confidence-missPenalty)
}

// Update runs one tick of the opponent and moves paddle.
func (o *Opponent) Update(ball Ball, paddle *core.Box, rng core.Rand) {
	speed := math.Hypot(ball.VX, ball.VY)
	mul := math.Min(speed/o.baseSpeed, maxSpeedMul)

	if speed > o.lastSpeed*shockThreshold {
		o.confidence = math.Max(o.cfg.MinConfidence, o.confidence-shockPenalty)
	} else if o.streak > streakLength {
		o.confidence = math.Min(o.cfg.MaxConfidence, o.confidence+streakBonus)
	}
	o.lastSpeed = speed

	o.counter++
	if o.counter%max(4, int(math.Floor(6-mul))) == 0 {
		o.plan(ball, mul, rng)
	}
	if o.delay > 0 {
		o.delay--
	}
	o.steer(paddle, rng)
}

// reactionDelay is the number of ticks the opponent hesitates after the ball
// turns toward it.
func (o *Opponent) reactionDelay(mul float64) int {
	return int(math.Floor(float64(o.cfg.BaseReaction) + (mul-1)*reactionPerSpeed + (1-o.confidence)*reactionPerDoubt))
}

// plan refreshes the target.
func (o *Opponent) plan(ball Ball, mul float64, rng core.Rand) {
	dir := -1
	if ball.VX > 0 {
		dir = 1
	}
	if dir != o.lastDir && dir > 0 {
		o.delay = o.reactionDelay(mul)
		o.rally++
		spread := (reversalError + (mul-1)*reversalErrPerMul) * (2 - o.confidence)
		o.errOffset = (rng.Float64() - 0.5) * spread
	}
	o.lastDir = dir

	switch {
	case o.delay <= 0 && ball.VX > 0:
		o.target = o.predict(ball, mul, rng)
	case ball.VX < 0:
		wander := (rng.Float64() - 0.5) * (wanderBase + float64(o.rally)*wanderPerRally)
		o.target = o.courtH/2 + wander
		o.rally = max(0, o.rally-1)
	}
}

// predict projects the ball to the paddle face, folding wall bounces, and
// adds confidence-scaled error.
func (o *Opponent) predict(ball Ball, mul float64, rng core.Rand) float64 {
	t := (o.paddleX - ball.X) / math.Abs(ball.VX)
	y := Fold(ball.Y+ball.VY*t, o.courtH)

	accuracy := o.confidence * (0.7 / mul)
	y += (rng.Float64()-0.5)*predictionError*(2.5-accuracy) + o.errOffset
	if rng.Float64() < o.cfg.MisjudgeChance {
		y += (rng.Float64() - 0.5) * misjudgeError
	}
	return core.ClampF(y, o.paddleH/2, o.courtH-o.paddleH/2)
}

// steer moves the paddle toward the target unless it is inside the dead zone.
func (o *Opponent) steer(paddle *core.Box, rng core.Rand) {
	center := paddle.Center().Y
	diff := o.target - center
	if math.Abs(diff) <= deadZoneBase+(1-o.confidence)*deadZoneDoubt {
		return
	}

	fatigue := math.Max(fatigueFloor, 1-float64(o.rally)*fatiguePerRally)
	base := o.cfg.BaseSpeed * o.confidence * fatigue

	corner := 1.0
	if math.Abs(center-o.courtH/2) > cornerReach {
		corner = cornerUrgency
	}
	urgency := math.Min(urgencyCap, math.Abs(diff)/urgencyScale) * corner
	variation := (rng.Float64() - 0.5) * jitter * (2.5 - o.confidence)
	step := math.Max(minStep, base*urgency+variation)

	paddle.Y = core.ClampF(paddle.Y+core.Sign(diff)*step, 0, o.courtH-paddle.H)
}

// Fold mirrors y into [0, h] as if it bounced off both walls.
func Fold(y, h float64) float64 {
	if h <= 0 {
		return 0
	}
	period := 2 * h
	m := math.Mod(y, period)
	if m < 0 {
		m += period
	}
	if m > h {
		m = period - m
	}
	return m
}
