package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the scoreboard",
	Long: `Open the interactive scoreboard with per-difficulty tabs and stats.

Controls:
  Tab/Shift+Tab - Switch difficulty
  Up/Down       - Move through runs
  B/Esc         - Close
  Q/Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	if _, err := tui.RunScoreboard(store, runtime.ScreenW, runtime.ScreenH); err != nil {
		return fmt.Errorf("running scoreboard: %w", err)
	}
	return nil
}
