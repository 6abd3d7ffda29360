// arcade is a terminal arcade running deterministic game simulations:
// Pong against an adaptive CPU, Snake, Space Invaders, Tic-Tac-Toe and
// Rock-Paper-Scissors.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores
//	arcade sim <game>        - Run a game headless and print its digest
//
// Global flags:
//
//	--fps <rate>         - Override the game's tick rate (0 = game default)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Custom YAML config for the played game
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--debug              - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-cores/internal/games/invaders"
	"github.com/vovakirdan/arcade-cores/internal/games/pong"
	"github.com/vovakirdan/arcade-cores/internal/games/rps"
	"github.com/vovakirdan/arcade-cores/internal/games/snake"
	"github.com/vovakirdan/arcade-cores/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - deterministic retro games in your terminal",
	Long: `Arcade is a terminal-based gaming platform with classic games
driven by deterministic, seedable simulations.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a game headless

Examples:
  arcade list
  arcade play pong --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores snake
  arcade sim invaders --ticks 5000 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = the game's own cadence)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so they log to ~/.arcade/arcade.log; the rest log to stderr.
// The returned func releases the log file.
func newLogger(interactive bool) (*log.Logger, func()) {
	var out io.Writer = os.Stderr
	done := func() {}
	if interactive {
		out = io.Discard
		if f, err := openLogFile(); err == nil {
			out = f
			done = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, done
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// configureGames applies --difficulty to every game and --config to gameID
// only. An empty gameID leaves every game on its default config search.
func configureGames(gameID string) {
	path := func(id string) string {
		if id == gameID {
			return flagConfig
		}
		return ""
	}

	pong.SetConfigPath(path("pong"))
	pong.SetDifficultyPreset(flagDifficulty)
	snake.SetConfigPath(path("snake"))
	snake.SetDifficultyPreset(flagDifficulty)
	invaders.SetConfigPath(path("invaders"))
	invaders.SetDifficultyPreset(flagDifficulty)

	ttt := path("tictactoe")
	if gameID == "tictactoe_2p" {
		ttt = flagConfig
	}
	tictactoe.SetConfigPath(ttt)
	rps.SetConfigPath(path("rps"))
}
