package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a game's configuration.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml ->
// ./configs/<game>.yaml -> embedded default -> base.
//
// Each file is decoded on top of base, so keys missing from the file keep
// their default values. Only an unreadable or malformed customPath is an
// error; other locations are skipped when they fail.
func Load[T any](gameID, customPath string, base T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, base)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{}
	if p := userConfigPath(filename); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, filepath.Join("configs", filename))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, base); err == nil {
			return cfg, nil
		}
	}

	if data := GetDefaultYAML(gameID); data != nil {
		if cfg, err := decode(data, base); err == nil {
			return cfg, nil
		}
	}
	return base, nil
}

func decode[T any](data []byte, base T) (T, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadPong loads Pong configuration and applies a difficulty preset.
func LoadPong(customPath string, preset DifficultyPreset) (PongConfig, error) {
	cfg, err := Load("pong", customPath, DefaultPongConfig())
	ApplyPongPreset(&cfg, preset)
	return cfg, err
}

// LoadSnake loads Snake configuration and applies a difficulty preset.
func LoadSnake(customPath string, preset DifficultyPreset) (SnakeConfig, error) {
	cfg, err := Load("snake", customPath, DefaultSnakeConfig())
	ApplySnakePreset(&cfg, preset)
	return cfg, err
}

// LoadInvaders loads Space Invaders configuration and applies a difficulty
// preset.
func LoadInvaders(customPath string, preset DifficultyPreset) (InvadersConfig, error) {
	cfg, err := Load("invaders", customPath, DefaultInvadersConfig())
	ApplyInvadersPreset(&cfg, preset)
	return cfg, err
}

// LoadTicTacToe loads Tic-Tac-Toe configuration.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return Load("tictactoe", customPath, DefaultTicTacToeConfig())
}

// LoadRPS loads Rock-Paper-Scissors configuration.
func LoadRPS(customPath string) (RPSConfig, error) {
	return Load("rps", customPath, DefaultRPSConfig())
}
