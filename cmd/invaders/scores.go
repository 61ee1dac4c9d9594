package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and leaderboard",
	Long: `Display the all-time high score and the top 10 finished sessions.
With the sqlite store, per-difficulty session statistics are shown as well.

Examples:
  invaders scores
  invaders scores --store sqlite
  invaders scores --data-dir ./scores`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("invaders", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := openStore(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Read-only use
	defer store.Close()

	board := store.Leaderboard()

	fmt.Printf("High Score: %d\n", store.HighScore())
	fmt.Println()

	if len(board) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-5s  %-6s  %s\n", "Rank", "Score", "Time", "Acc", "Level", "Diff", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-5s  %-6s  %s\n", "----", "-----", "----", "---", "-----", "----", "----")

	// Print scores
	for i, e := range board {
		fmt.Printf("  %-4d  %-8d  %-6s  %-7s  %-5d  %-6s  %s\n",
			i+1, e.Score, clock(e.Time), fmt.Sprintf("%.1f%%", e.Accuracy), e.Level, e.Difficulty, e.Date)
	}

	stats, ok := store.Stats()
	if !ok || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Sessions by difficulty:")
	fmt.Printf("  %-6s  %-8s  %-8s  %-8s  %-7s  %-5s  %-8s  %s\n",
		"Diff", "Sessions", "Best", "Average", "Acc", "Level", "Played", "Last")
	for _, st := range stats {
		fmt.Printf("  %-6s  %-8d  %-8d  %-8.1f  %-7s  %-5d  %-8s  %s\n",
			st.Difficulty, st.Sessions, st.BestScore, st.AvgScore,
			fmt.Sprintf("%.1f%%", st.AvgAccuracy), st.BestLevel, clock(st.TotalTime), st.LastPlayed)
	}
}

// clock formats whole seconds as mm:ss.
func clock(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
