package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // no per-level speed-up
)

// ParsePreset converts a CLI value to a preset. Unknown values map to the
// empty preset, which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPongPreset tunes the opponent and match length.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.InitialConfidence = 0.25
		cfg.AI.MaxConfidence = 0.45
		cfg.Gameplay.WinScore = 5
	case DifficultyHard:
		cfg.AI.InitialConfidence = cfg.AI.MaxConfidence
		cfg.AI.BaseReaction = 18
	case DifficultyFixed:
		// confidence never moves
		cfg.AI.MinConfidence = cfg.AI.InitialConfidence
		cfg.AI.MaxConfidence = cfg.AI.InitialConfidence
	}
}

// ApplySnakePreset changes the move interval.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MoveMilli = 200
	case DifficultyHard:
		cfg.Gameplay.MoveMilli = 100
	}
}

// ApplyInvadersPreset changes lives and formation pace.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Formation.Speed = 0.4
		cfg.Formation.CooldownMin = 90
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Formation.Speed = 0.9
		cfg.Formation.CooldownMax = 120
	case DifficultyFixed:
		cfg.Formation.SpeedStep = 0
	}
}
