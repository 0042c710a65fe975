package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var difficultyCmd = &cobra.Command{
	Use:   "difficulty [easy|normal|hard]",
	Short: "Show or set the saved difficulty",
	Long: `Without an argument, print the difficulty the next game starts on.
With one, save it. Unknown labels are rejected here even though the game
itself treats them as normal.

Examples:
  runner difficulty
  runner difficulty hard`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"easy", "normal", "hard"},
	RunE:      runDifficulty,
}

func runDifficulty(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		label, err := store.Difficulty()
		if err != nil {
			return fmt.Errorf("reading difficulty: %w", err)
		}
		if label == "" {
			label = config.DefaultRunnerConfig().Difficulty.Default
		}
		fmt.Fprintln(out, config.ParseDifficulty(label).Title())
		return nil
	}

	label := strings.ToLower(strings.TrimSpace(args[0]))
	d := config.ParseDifficulty(label)
	if string(d) != label {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", args[0])
	}
	if err := store.SetDifficulty(string(d)); err != nil {
		return fmt.Errorf("saving difficulty: %w", err)
	}
	fmt.Fprintf(out, "Difficulty set to %s\n", d.Title())
	return nil
}
