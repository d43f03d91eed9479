package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs for the difficulty given by --difficulty,
followed by statistics for that difficulty.

Examples:
  defender scores
  defender scores --difficulty hard
  defender scores --all --limit 20
  defender scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show runs of every difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the stored runs instead of listing them")
}

func runScores(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	difficulty := string(preset)
	if flagScoresAll {
		difficulty = ""
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.ClearRuns(difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return
	}

	runs, err := store.TopRuns(difficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'defender play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-4s  %-8s  %-7s  %-12s  %s\n",
		"Rank", "Score", "Files", "Wave", "Outcome", "Level", "Player", "Date")
	fmt.Printf("  %s\n", strings.Repeat("-", 72))
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-4d  %-8s  %-7s  %-12s  %s\n",
			i+1, r.Score, r.Files, r.Waves, r.Outcome, r.Difficulty,
			truncate(r.Player, 12), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if difficulty == "" {
		return
	}
	stats, err := store.Stats(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.0f  Files recovered: %d\n",
		stats.Runs, stats.Wins, stats.HighScore, stats.AvgScore, stats.TotalFiles)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
