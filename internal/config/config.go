// Package config provides YAML-based game configuration loading and
// difficulty presets for the simulation cores.
package config

import "time"

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Court    PongCourt    `yaml:"court"`
	Paddle   PongPaddle   `yaml:"paddle"`
	Ball     PongBall     `yaml:"ball"`
	Gameplay PongGameplay `yaml:"gameplay"`
	AI       PongAI       `yaml:"ai"`
}

// PongCourt defines the playfield in court units.
type PongCourt struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddle defines both paddles.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // distance from the court edge
	Speed  float64 `yaml:"speed"` // player paddle units per tick
}

// PongBall defines the ball.
type PongBall struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`        // serve speed along x
	SpinDivisor float64 `yaml:"spin_divisor"` // vy = (contact - paddle center) / divisor
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore  int `yaml:"win_score"`
	TickMilli int `yaml:"tick_ms"`
}

// PongAI tunes the adaptive opponent.
type PongAI struct {
	InitialConfidence float64 `yaml:"initial_confidence"`
	MinConfidence     float64 `yaml:"min_confidence"`
	MaxConfidence     float64 `yaml:"max_confidence"`
	BaseSpeed         float64 `yaml:"base_speed"`
	BaseReaction      int     `yaml:"base_reaction"` // ticks
	MisjudgeChance    float64 `yaml:"misjudge_chance"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Board    SnakeBoard    `yaml:"board"`
	Gameplay SnakeGameplay `yaml:"gameplay"`
}

// SnakeBoard defines the grid.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeGameplay defines movement and scoring.
type SnakeGameplay struct {
	MoveMilli  int `yaml:"move_ms"`
	FoodPoints int `yaml:"food_points"`
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Court     InvadersCourt     `yaml:"court"`
	Ship      InvadersShip      `yaml:"ship"`
	Formation InvadersFormation `yaml:"formation"`
	Barriers  InvadersBarriers  `yaml:"barriers"`
	PowerUps  InvadersPowerUps  `yaml:"powerups"`
	Gameplay  InvadersGameplay  `yaml:"gameplay"`
}

// InvadersCourt defines the playfield.
type InvadersCourt struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersShip defines the player ship and its shots.
type InvadersShip struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Y           float64 `yaml:"y"`
	Speed       float64 `yaml:"speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	MaxBullets  int     `yaml:"max_bullets"`
	Cooldown    int     `yaml:"cooldown"` // ticks between shots
	Lives       int     `yaml:"lives"`
	MaxLives    int     `yaml:"max_lives"`
}

// InvadersFormation defines the hostile grid.
type InvadersFormation struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	SpacingX    float64 `yaml:"spacing_x"`
	SpacingY    float64 `yaml:"spacing_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpeedStep   float64 `yaml:"speed_step"` // added per level
	Drop        float64 `yaml:"drop"`
	Margin      float64 `yaml:"margin"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	CooldownMin int     `yaml:"cooldown_min"`
	CooldownMax int     `yaml:"cooldown_max"`
	RowPoints   []int   `yaml:"row_points"`
}

// InvadersBarriers defines the cover blocks.
type InvadersBarriers struct {
	Count   int     `yaml:"count"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
	Y       float64 `yaml:"y"`
	Health  int     `yaml:"health"`
}

// InvadersPowerUps defines drops from destroyed invaders.
type InvadersPowerUps struct {
	Chance float64 `yaml:"chance"`
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Spread float64 `yaml:"spread"` // multishot side offset
}

// InvadersGameplay defines pacing.
type InvadersGameplay struct {
	TickMilli          int `yaml:"tick_ms"`
	LevelCompleteMilli int `yaml:"level_complete_ms"`
}

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	Mode       string `yaml:"mode"` // "ai" or "2p"
	TickMilli  int    `yaml:"tick_ms"`
	ThinkTicks int    `yaml:"think_ticks"`
}

// RPSConfig contains all configuration for Rock-Paper-Scissors.
type RPSConfig struct {
	Rounds    int `yaml:"rounds"`
	TickMilli int `yaml:"tick_ms"`
}

// Millis converts a millisecond setting to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
