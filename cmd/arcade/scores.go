package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-cores/internal/platform/tui"
	"github.com/vovakirdan/arcade-cores/internal/registry"
	"github.com/vovakirdan/arcade-cores/internal/storage"
)

var (
	flagClear      bool
	flagScoresTUI  bool
	flagScoreLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for the specified game, or a summary of every
game played when no game is given.

Examples:
  arcade scores
  arcade scores snake
  arcade scores pong --limit 20
  arcade scores invaders --clear
  arcade scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and high score of the game")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w; run 'arcade list' to see available games", err)
	}
	if err != nil {
		return err
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Session", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-------", "----")
	for i, entry := range scores {
		session := entry.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, session, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", store.LoadHighScore(gameID))
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Rounds: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printSummary lists every game that has recorded rounds.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %s\n", "Game", "Rounds", "Best", "Average", "Last played")
	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %s\n", "----", "------", "----", "-------", "-----------")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			continue
		}
		best := max(s.HighScore, store.LoadHighScore(g.ID))
		fmt.Printf("  %-14s  %-6d  %-6d  %-8.1f  %s\n",
			g.ID, s.GamesCount, best, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
