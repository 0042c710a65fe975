// runner is an endless can-runner arcade game for the terminal.
//
// Usage:
//
//	runner play               - Play the game
//	runner board              - Browse the scoreboard
//	runner scores             - Print the top runs
//	runner difficulty [label] - Show or set the saved difficulty
//	runner simulate           - Run the autopilot headless
//	runner serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/runner.db)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump the cans in your terminal",
	Long: `Runner is an endless side-scrolling arcade game for the terminal.
Jump over hazards, collect cans and powerups, and chase the high score.

Available commands:
  play        - Play the game
  board       - Interactive scoreboard
  scores      - Print the top runs
  difficulty  - Show or set the saved difficulty
  simulate    - Headless autopilot run
  serve       - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard --mute
  runner scores --difficulty easy
  runner simulate --seconds 120 --seed 7
  runner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runner.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultyCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the CLI logger writing to stderr.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
