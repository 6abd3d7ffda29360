package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-cores/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game with its update rate and the best score
stored in the scores database.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	logger, done := newLogger(false)
	defer done()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	idW := len("ID")
	titleW := len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %6s  %s\n", idW, "ID", titleW, "Title", "Rate", "Best")
	for _, g := range games {
		best := "-"
		if store != nil {
			if v := store.LoadHighScore(g.ID); v > 0 {
				best = fmt.Sprint(v)
			}
		}
		fmt.Printf("  %-*s  %-*s  %6s  %s\n", idW, g.ID, titleW, g.Title, rate(g.Cadence), best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}

// rate formats a cadence as updates per second.
func rate(cadence time.Duration) string {
	if cadence <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0fHz", float64(time.Second)/float64(cadence))
}
