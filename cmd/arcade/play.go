package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-cores/internal/core"
	"github.com/vovakirdan/arcade-cores/internal/platform/tui"
	"github.com/vovakirdan/arcade-cores/internal/registry"
	"github.com/vovakirdan/arcade-cores/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter          - Start
  Arrows/WASD    - Move
  Space          - Shoot (invaders)
  1-9            - Pick a cell (tic-tac-toe) or rock/paper/scissors (1-3)
  P/Esc          - Pause
  R              - Reset (from pause or game over)
  B              - Leave (when not playing)
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower hostiles, more lives, a shakier pong opponent
  normal - Defaults
  hard   - Faster hostiles, fewer lives, a confident pong opponent
  fixed  - Defaults without level speed-ups

Examples:
  arcade play pong
  arcade play snake --difficulty easy
  arcade play invaders --difficulty hard --seed 7
  arcade play tictactoe_2p
  arcade play pong --config ./my-pong.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	configureGames(gameID)

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w; run 'arcade list' to see available games", err)
	}
	if err != nil {
		return err
	}

	logger, done := newLogger(true)
	defer done()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database; scores will not be saved", "error", err)
		return nil
	}
	return store
}
