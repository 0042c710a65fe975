package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/sim"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the runner on the title screen.

Controls:
  Space/Up   - Start / Jump
  P/Esc      - Pause
  R/Enter    - Restart (paused or after game over)
  B          - Back to title (paused or after game over)
  D/Tab      - Cycle difficulty (title or game over)
  S          - Scoreboard (title or game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower ramp, longer spawn gaps
  normal - The default
  hard   - Fast start, triple time score

Without --difficulty the last difficulty picked in game is used.

Examples:
  runner play
  runner play --difficulty hard
  runner play --mute
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagLogPath, "log", "~/.arcade/runner.log", "Log file (empty disables logging)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogFile(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}
	scores := storage.NewScores(store, logger)

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = scores.Difficulty()
	}
	if difficulty == "" {
		difficulty = cfg.Difficulty.Default
	}

	var sink sim.AudioSink = audio.Mute{}
	if !flagMute {
		player := audio.NewPlayer(flagVolume, logger)
		if initErr := player.Init(); initErr == nil {
			defer player.Close()
			sink = player
		}
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts := tui.Options{
		Config:     cfg,
		Runtime:    runtime,
		Difficulty: difficulty,
		Scores:     scores,
		Audio:      sink,
		Logger:     logger,
	}

	logger.Info("session started", "difficulty", difficulty, "fps", flagFPS, "mute", flagMute)
	if err := tui.Run(opts, store); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended")
	return nil
}

// openLogFile opens path for appending and returns a debug logger on it.
// An empty path yields a logger that discards everything.
func openLogFile(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
