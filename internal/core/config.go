package core

import (
	"github.com/vovakirdan/arcade-cores/internal/ledger"
	"github.com/vovakirdan/arcade-cores/internal/phase"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Screen size only affects rendering; simulations run in fixed court units.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the public summary of a game after a tick.
type GameState struct {
	Phase phase.Phase
	Score int
	Lives int
	Level int
}

// Playing reports whether the update step is running.
func (s GameState) Playing() bool {
	return s.Phase == phase.Playing
}

// Over reports whether the round has ended.
func (s GameState) Over() bool {
	return s.Phase == phase.GameOver
}

// StepResult is returned by Game.Step after each call.
type StepResult struct {
	State  GameState
	Events []ledger.Event // appended during this call
}
