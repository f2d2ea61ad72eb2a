package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cookie-arcade/internal/registry"
	"github.com/vovakirdan/cookie-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best runs for the specified game, or the latest runs
of every game with --recent.

Examples:
  arcade scores cookie
  arcade scores dodge --limit 20
  arcade scores --recent
  arcade scores cookie --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs of all games")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every run of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 && !flagRecent {
		fmt.Fprintln(os.Stderr, "Error: a game id is required unless --recent is set")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecent {
		printRecent(store)
		return
	}

	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs of %s.\n", info.Title)
		return
	}

	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-16s  %s\n", "Rank", "Score", "Seed", "Date", "Run")
	fmt.Printf("  %-4s  %-8s  %-8s  %-16s  %s\n", "----", "-----", "----", "----", "---")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-16s  %s\n",
			i+1, r.Score, r.Seed, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.RunID)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

func printRecent(store *storage.Store) {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %6d  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.GameID, r.Score, r.Message)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		return
	}
	fmt.Println()
	for _, g := range registry.List() {
		if st, ok := all[g.ID]; ok {
			fmt.Printf("  %-14s best %-6d runs %d\n", g.Title, st.HighScore, st.GamesCount)
		}
	}
}
