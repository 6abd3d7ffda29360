package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Court:  PongCourt{Width: 800, Height: 400},
		Paddle: PongPaddle{Width: 12, Height: 80, Inset: 30, Speed: 6},
		Ball:   PongBall{Size: 12, Speed: 2, SpinDivisor: 20},
		Gameplay: PongGameplay{
			WinScore:  7,
			TickMilli: 16,
		},
		AI: PongAI{
			InitialConfidence: 0.4,
			MinConfidence:     0.1,
			MaxConfidence:     0.6,
			BaseSpeed:         1.9,
			BaseReaction:      25,
			MisjudgeChance:    0.15,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board:    SnakeBoard{Width: 20, Height: 20},
		Gameplay: SnakeGameplay{MoveMilli: 150, FoodPoints: 10},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Court: InvadersCourt{Width: 800, Height: 600},
		Ship: InvadersShip{
			Width:       40,
			Height:      30,
			Y:           550,
			Speed:       5,
			BulletSpeed: 5,
			MaxBullets:  3,
			Cooldown:    15,
			Lives:       3,
			MaxLives:    5,
		},
		Formation: InvadersFormation{
			Rows:        5,
			Cols:        10,
			StartX:      100,
			StartY:      80,
			SpacingX:    50,
			SpacingY:    40,
			Width:       30,
			Height:      20,
			Speed:       0.6,
			SpeedStep:   0.5,
			Drop:        20,
			Margin:      10,
			BulletSpeed: 3,
			CooldownMin: 60,
			CooldownMax: 180,
			RowPoints:   []int{30, 30, 20, 20, 10},
		},
		Barriers: InvadersBarriers{
			Count:   4,
			Width:   100,
			Height:  60,
			Spacing: 60,
			Y:       400,
			Health:  5,
		},
		PowerUps: InvadersPowerUps{
			Chance: 0.1,
			Size:   20,
			Speed:  2,
			Spread: 15,
		},
		Gameplay: InvadersGameplay{
			TickMilli:          16,
			LevelCompleteMilli: 1500,
		},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Mode:       "ai",
		TickMilli:  100,
		ThinkTicks: 5,
	}
}

// DefaultRPSConfig returns the default Rock-Paper-Scissors configuration.
func DefaultRPSConfig() RPSConfig {
	return RPSConfig{Rounds: 5, TickMilli: 100}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
