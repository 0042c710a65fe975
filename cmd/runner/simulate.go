package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sim"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSimSeconds    float64
	flagSimDifficulty string
	flagSimConfig     string
	flagSimSave       bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a terminal",
	Long: `Play one run headless with a simple autopilot on a fixed clock and
print a summary. Runs with the same --seed, --fps and config are identical.

With --save the run and any new high score go to the scores database.

Examples:
  runner simulate
  runner simulate --seconds 300 --difficulty hard --seed 42
  runner simulate --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated seconds before stopping")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty: easy, normal, hard")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom runner config YAML")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
}

// simOptions configures a headless run.
type simOptions struct {
	Config     config.RunnerConfig
	Difficulty string
	Seed       int64
	FPS        int
	Seconds    float64
	Scores     sim.HighScoreStore // nil keeps the high score in memory
}

// simResult summarizes a headless run.
type simResult struct {
	Difficulty config.Difficulty
	Final      sim.RunState
	Frames     int
	Jumps      int
	GameOver   bool
	Milestones []int
	Cues       [sim.CueCount]int
}

// cueCounter tallies cues instead of playing them.
type cueCounter struct {
	counts *[sim.CueCount]int
}

func (c cueCounter) Play(cue sim.Cue) {
	if cue >= 0 && cue < sim.CueCount {
		c.counts[cue]++
	}
}

// simNotifier records lifecycle events of the run.
type simNotifier struct {
	res *simResult
}

func (n simNotifier) GameStarted()            {}
func (n simNotifier) Reset()                  {}
func (n simNotifier) GameOver(int, int)       { n.res.GameOver = true }
func (n simNotifier) Milestone(threshold int) { n.res.Milestones = append(n.res.Milestones, threshold) }

// simulate drives one run on a ManualScheduler until game over or until
// opts.Seconds of game time have passed.
func simulate(opts simOptions) simResult {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	res := &simResult{}

	s := sim.New(opts.Config, opts.Seed, sim.Hooks{
		Audio:    cueCounter{counts: &res.Cues},
		Notifier: simNotifier{res: res},
		Scores:   opts.Scores,
	})
	label := opts.Difficulty
	if label == "" {
		label = opts.Config.Difficulty.Default
	}
	res.Difficulty = s.SelectDifficulty(label)

	sched := sim.NewManualScheduler(time.Unix(0, 0), time.Second/time.Duration(fps))
	loop := sim.NewLoop(s, sched, sim.RendererFunc(func(sim.Snapshot) {}))
	pilot := sim.Autopilot{}

	loop.Start(sched.Now)
	for s.State().Elapsed < opts.Seconds {
		if pilot.ShouldJump(s.Snapshot()) && loop.Jump() {
			res.Jumps++
		}
		if !sched.Advance() {
			break
		}
	}

	res.Final = s.State()
	res.Frames = loop.Frames()
	return *res
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := config.LoadRunner(flagSimConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := simOptions{
		Config:     cfg,
		Difficulty: flagSimDifficulty,
		Seed:       seed,
		FPS:        flagFPS,
		Seconds:    flagSimSeconds,
	}

	var scores *storage.Scores
	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
		scores = storage.NewScores(store, logger)
		opts.Scores = scores
	}

	started := time.Now()
	res := simulate(opts)

	logger.Info("simulation finished",
		"seed", seed,
		"difficulty", res.Difficulty,
		"frames", res.Frames,
		"wall", time.Since(started).Round(time.Millisecond),
	)

	if scores != nil {
		scores.SaveRun(storage.RunRecord{
			Difficulty: string(res.Difficulty),
			Score:      res.Final.Score,
			Duration:   int(res.Final.Elapsed),
		})
	}

	out := cmd.OutOrStdout()
	outcome := "survived"
	if res.GameOver {
		outcome = "game over"
	}
	fmt.Fprintf(out, "Run (%s, seed %d): %s\n", res.Difficulty.Title(), seed, outcome)
	fmt.Fprintf(out, "  Score:      %d\n", res.Final.Score)
	fmt.Fprintf(out, "  High score: %d\n", res.Final.HighScore)
	fmt.Fprintf(out, "  Lives left: %d\n", res.Final.Lives)
	fmt.Fprintf(out, "  Time:       %.1fs in %d frames\n", res.Final.Elapsed, res.Frames)
	fmt.Fprintf(out, "  Speed:      %.0f\n", res.Final.GameSpeed)
	fmt.Fprintf(out, "  Jumps:      %d\n", res.Jumps)
	if len(res.Milestones) > 0 {
		fmt.Fprintf(out, "  Milestones: %v\n", res.Milestones)
	}
	fmt.Fprint(out, "  Cues:      ")
	for c := sim.Cue(0); c < sim.CueCount; c++ {
		fmt.Fprintf(out, " %s=%d", c, res.Cues[c])
	}
	fmt.Fprintln(out)
	return nil
}
