package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sim"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config     config.RunnerConfig
	Runtime    core.RuntimeConfig
	Difficulty string          // Initial selection; empty uses the config default
	Scores     *storage.Scores // High score, run history and difficulty; may be nil
	Audio      sim.AudioSink   // May be nil
	Logger     *log.Logger     // May be nil
}

// frameBuffer is the loop's renderer: it keeps the latest snapshot for View.
type frameBuffer struct {
	last   sim.Snapshot
	frames int
}

func (f *frameBuffer) Render(s sim.Snapshot) {
	f.last = s
	f.frames++
}

// Model is the Bubble Tea model for one player's runner session.
type Model struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	loop    *sim.Loop
	sched   *teaScheduler
	screens *screens
	frame   *frameBuffer
	scene   scene
	screen  *core.Screen
	scores  *storage.Scores
	logger  *log.Logger
	keys    *KeyMapper

	quitting  bool
	wantBoard bool // Scoreboard requested from the title or game-over screen
}

// NewModel creates a model showing the title screen.
func NewModel(opts Options) Model {
	runtime := opts.Runtime
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	scores := opts.Scores
	if scores == nil {
		scores = storage.NewScores(nil, logger)
	}

	scr := newScreens()
	frame := &frameBuffer{}
	sched := newTeaScheduler(runtime.TickRate)

	s := sim.New(opts.Config, runtime.Seed, sim.Hooks{
		Audio:    opts.Audio,
		Notifier: scr,
		Scores:   scores,
	})
	label := opts.Difficulty
	if label == "" {
		label = opts.Config.Difficulty.Default
	}
	s.SelectDifficulty(label)

	loop := sim.NewLoop(s, sched, frame)
	frame.Render(s.Snapshot())

	return Model{
		cfg:     opts.Config,
		runtime: runtime,
		loop:    loop,
		sched:   sched,
		screens: scr,
		frame:   frame,
		scene:   newScene(opts.Config),
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		scores:  scores,
		logger:  logger,
		keys:    NewKeyMapper(),
	}
}

// Init shows the title screen; frames start with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)

	case TickMsg:
		m.sched.fire(time.Time(msg))
		m.screens.tickBanner()
		if m.screens.takeFinished() {
			m.recordRun()
		}
	}

	return m, m.sched.cmd()
}

// handleKey applies one key press. It returns a command only for quitting.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return nil
	}

	phase := m.screens.phase
	paused := m.loop.Sim().Paused()

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return tea.Quit

	case core.ActionJump:
		switch phase {
		case PhaseTitle:
			m.start()
		case PhasePlaying:
			m.loop.Jump()
		case PhaseGameOver:
			// Ignored so a late jump does not skip the game-over screen
		}

	case core.ActionRestart:
		if phase != PhasePlaying || paused {
			m.start()
		}

	case core.ActionPause:
		if phase == PhasePlaying {
			m.loop.TogglePause(time.Now())
		}

	case core.ActionBack:
		if phase == PhaseGameOver || paused {
			m.loop.Reset()
		}

	case core.ActionDifficulty:
		if phase != PhasePlaying {
			m.cycleDifficulty()
		}

	case core.ActionScoreboard:
		if phase != PhasePlaying {
			m.wantBoard = true
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) start() {
	s := m.loop.Sim()
	m.loop.Start(time.Now())
	m.logger.Debug("run started", "difficulty", s.SelectedDifficulty(), "high", s.State().HighScore)
}

func (m *Model) cycleDifficulty() {
	next := m.loop.Sim().SelectedDifficulty().Next()
	m.loop.SelectDifficulty(string(next))
	m.scores.SetDifficulty(string(next))
}

// recordRun stores the finished run in the history.
func (m *Model) recordRun() {
	snap := m.frame.last
	run := storage.RunRecord{
		Difficulty: string(snap.Difficulty),
		Score:      m.screens.finalScore,
		Duration:   int(snap.Elapsed),
	}
	m.scores.SaveRun(run)
	m.logger.Info("run finished",
		"difficulty", run.Difficulty,
		"score", run.Score,
		"seconds", run.Duration,
		"frames", m.loop.Frames(),
	)
}

// fact returns the fact chosen at game over, or "".
func (m Model) fact() string {
	i := m.screens.factIndex
	if i < 0 || i >= len(m.cfg.Facts) {
		return ""
	}
	return m.cfg.Facts[i]
}

func (m Model) overlay() overlay {
	return overlay{
		phase:      m.screens.phase,
		selected:   m.loop.Sim().SelectedDifficulty(),
		finalScore: m.screens.finalScore,
		fact:       m.fact(),
		banner:     m.screens.banner,
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scene.draw(m.screen, m.frame.last, m.overlay())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.scene.draw(m.screen, m.frame.last, m.overlay())
	return RenderScreen(m.screen)
}

// Phase returns the current screen.
func (m Model) Phase() Phase {
	return m.screens.phase
}

// Snapshot returns the most recently rendered snapshot.
func (m Model) Snapshot() sim.Snapshot {
	return m.frame.last
}

// WantsScoreboard reports whether the player asked for the score table.
func (m Model) WantsScoreboard() bool {
	return m.wantBoard
}
