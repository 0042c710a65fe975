package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sim"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"p pauses", keyRune('p'), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"enter restarts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"r restarts", keyRune('r'), core.ActionRestart},
		{"b goes back", keyRune('b'), core.ActionBack},
		{"d cycles difficulty", keyRune('d'), core.ActionDifficulty},
		{"s opens scores", keyRune('s'), core.ActionScoreboard},
		{"q quits", keyRune('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", keyRune('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestTeaSchedulerSingleTickInFlight(t *testing.T) {
	sched := newTeaScheduler(60)
	if sched.cmd() != nil {
		t.Fatal("no frame requested, no tick expected")
	}

	calls := 0
	sched.ScheduleNextFrame(func(time.Time) { calls++ })
	if sched.cmd() == nil {
		t.Fatal("expected a tick command")
	}
	if sched.cmd() != nil {
		t.Error("second tick must not be issued while one is in flight")
	}

	sched.fire(time.Now())
	if calls != 1 {
		t.Errorf("callback ran %d times, expected 1", calls)
	}
	sched.fire(time.Now())
	if calls != 1 {
		t.Error("stale tick must not rerun the callback")
	}
}

func TestScreensLifecycle(t *testing.T) {
	s := newScreens()
	if s.phase != PhaseTitle {
		t.Fatalf("initial phase = %v", s.phase)
	}

	s.GameStarted()
	s.Milestone(100)
	if s.banner == "" {
		t.Error("milestone should raise a banner")
	}
	for i := 0; i < bannerFrames; i++ {
		s.tickBanner()
	}
	if s.banner != "" {
		t.Error("banner should expire")
	}

	s.GameOver(321, 2)
	if s.phase != PhaseGameOver || s.finalScore != 321 || s.factIndex != 2 {
		t.Errorf("unexpected game-over state %+v", s)
	}
	if !s.takeFinished() || s.takeFinished() {
		t.Error("game over should be reported exactly once")
	}

	s.Reset()
	if s.phase != PhaseTitle || s.factIndex != -1 {
		t.Errorf("reset should return to title, got %+v", s)
	}
}

func TestGameOverClearsBanner(t *testing.T) {
	s := newScreens()
	s.GameStarted()
	s.Milestone(500)

	s.GameOver(510, -1)
	if s.banner != "" || s.bannerLeft != 0 {
		t.Errorf("banner %q (%d frames) left on the game-over screen", s.banner, s.bannerLeft)
	}

	cfg := config.DefaultRunnerConfig()
	dst := core.NewScreen(80, 24)
	snap := sim.New(cfg, 1, sim.Hooks{}).Snapshot()
	newScene(cfg).draw(dst, snap, overlay{phase: s.phase, banner: s.banner, finalScore: 510})
	if strings.Contains(dst.String(), "500 POINTS!") {
		t.Error("milestone banner drawn over the game-over panel")
	}
}

func TestSceneMapping(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sc := newScene(cfg)
	// 960x540 world onto 96 columns and 54 playfield rows: 10 units per cell
	dst := core.NewScreen(96, 55)

	r := sc.cellRect(dst, cfg.Player.X, cfg.World.GroundY-cfg.Player.Height, cfg.Player.Width, cfg.Player.Height)
	if r.X != 9 || r.Right() != 14 {
		t.Errorf("player columns = [%d,%d), expected [9,14)", r.X, r.Right())
	}
	if r.Bottom() != 48 {
		t.Errorf("player bottom row = %d, expected 48", r.Bottom())
	}

	tiny := sc.cellRect(dst, 500, 100, 0.5, 0.5)
	if tiny.W < 1 || tiny.H < 1 {
		t.Errorf("tiny entity should cover a cell, got %+v", tiny)
	}
}

func TestSceneDraw(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := sim.New(cfg, 1, sim.Hooks{})
	s.Start()
	snap := s.Snapshot()
	snap.Obstacles = []sim.Entity{{X: 600, Y: 430, W: 30, H: 40, Obstacle: sim.ObstacleHazard}}

	dst := core.NewScreen(96, 55)
	newScene(cfg).draw(dst, snap, overlay{phase: PhasePlaying, selected: config.DifficultyNormal})
	out := dst.String()

	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, HazardChar) {
		t.Error("hazard not drawn")
	}
	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", dst.Row(0))
	}
	if strings.Count(dst.Row(48), string(GroundChar)) != 96 {
		t.Errorf("ground row incomplete: %q", dst.Row(48))
	}
	if cell := dst.GetCell(60, 44); cell.Color != core.ColorOrange {
		t.Errorf("hazard cell color = %v, expected orange", cell.Color)
	}
}

func TestSceneOverlays(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := sim.New(cfg, 1, sim.Hooks{})
	dst := core.NewScreen(80, 24)
	sc := newScene(cfg)

	sc.draw(dst, s.Snapshot(), overlay{phase: PhaseTitle, selected: config.DifficultyHard})
	if out := dst.String(); !strings.Contains(out, "CAN RUNNER") || !strings.Contains(out, "Hard") {
		t.Error("title panel should show name and selected difficulty")
	}

	sc.draw(dst, s.Snapshot(), overlay{phase: PhaseGameOver, finalScore: 99, fact: cfg.Facts[0]})
	out := dst.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 99") {
		t.Error("game-over panel missing")
	}
	firstWord := strings.Fields(cfg.Facts[0])[0]
	if !strings.Contains(out, firstWord) {
		t.Error("game-over panel should show the fact")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	expected := []string{"one two", "three", "four five"}
	if len(lines) != len(expected) {
		t.Fatalf("wrapText = %q, expected %q", lines, expected)
	}
	for i := range lines {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestPowerBar(t *testing.T) {
	if got := powerBar(2.5, 5); got != "▮▮▮▯▯" {
		t.Errorf("powerBar(2.5) = %q", got)
	}
	if got := powerBar(9, 5); got != "▮▮▮▮▮" {
		t.Errorf("powerBar(9) = %q", got)
	}
}

func newTestModel(t *testing.T, scores *storage.Scores) Model {
	t.Helper()
	return NewModel(Options{
		Config:  config.DefaultRunnerConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Scores:  scores,
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func TestModelStartAndTick(t *testing.T) {
	m := newTestModel(t, nil)
	if m.Phase() != PhaseTitle {
		t.Fatalf("initial phase = %v", m.Phase())
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Phase() != PhasePlaying {
		t.Fatalf("enter should start a run, phase = %v", m.Phase())
	}
	if cmd == nil {
		t.Fatal("starting a run should request a tick")
	}

	m, cmd = send(t, m, TickMsg(time.Now().Add(16*time.Millisecond)))
	if m.Snapshot().Elapsed <= 0 {
		t.Error("tick should advance the simulation")
	}
	if cmd == nil {
		t.Error("running game should keep ticking")
	}

	m, _ = send(t, m, keyRune('p'))
	if !m.Snapshot().Paused {
		t.Error("p should pause")
	}
	elapsed := m.Snapshot().Elapsed
	m, _ = send(t, m, TickMsg(time.Now().Add(time.Second)))
	if m.Snapshot().Elapsed != elapsed {
		t.Error("paused run should not advance")
	}

	m, _ = send(t, m, keyRune('b'))
	if m.Phase() != PhaseTitle {
		t.Errorf("b while paused should return to title, phase = %v", m.Phase())
	}
}

func TestModelDifficultyCycle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, storage.NewScores(store, nil))
	m, _ = send(t, m, keyRune('d'))

	if got := m.loop.Sim().SelectedDifficulty(); got != config.DifficultyHard {
		t.Errorf("selected = %v, expected hard after normal", got)
	}
	if label, _ := store.Difficulty(); label != "hard" {
		t.Errorf("persisted difficulty = %q, expected hard", label)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, keyRune('d'))
	if got := m.loop.Sim().SelectedDifficulty(); got != config.DifficultyHard {
		t.Error("difficulty must not change during a run")
	}
	if m.Snapshot().Difficulty != config.DifficultyHard {
		t.Errorf("run difficulty = %v, expected hard", m.Snapshot().Difficulty)
	}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, storage.NewScores(store, nil))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m.screens.GameOver(42, 0)
	m, _ = send(t, m, TickMsg(time.Now()))

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 42 || runs[0].Difficulty != "normal" {
		t.Errorf("unexpected runs %+v", runs)
	}
	if m.fact() != m.cfg.Facts[0] {
		t.Errorf("fact = %q, expected the first fact", m.fact())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, keyRune('q'))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	opts := Options{
		Config:  config.DefaultRunnerConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 3},
	}
	var m tea.Model = NewSessionModel(opts, nil)

	m, _ = m.Update(keyRune('s'))
	if !m.(SessionModel).ShowingScoreboard() {
		t.Fatal("s on the title screen should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view expected")
	}

	m, cmd := m.Update(keyRune('b'))
	if m.(SessionModel).ShowingScoreboard() {
		t.Error("b should return to the game")
	}
	if cmd != nil {
		t.Error("returning from the scoreboard must not quit the session")
	}
}
