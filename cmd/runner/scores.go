package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top runs",
	Long: `Display the best runs recorded in the scores database.

Examples:
  runner scores
  runner scores --difficulty hard
  runner scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only runs on this difficulty (default: all)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	difficulty := ""
	title := "All"
	if flagScoresDifficulty != "" {
		d := config.ParseDifficulty(flagScoresDifficulty)
		difficulty = string(d)
		title = d.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(difficulty, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6s  %-6s  %s\n",
			i+1,
			r.Score,
			config.ParseDifficulty(r.Difficulty).Title(),
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	best, err := store.HighScore()
	if err == nil {
		fmt.Fprintf(out, "\nBest: %d\n", best)
	}
	return nil
}
