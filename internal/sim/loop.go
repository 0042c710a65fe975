package sim

import "time"

// FrameFunc is invoked once per display frame with the frame timestamp.
type FrameFunc func(now time.Time)

// Scheduler requests a single future frame callback.
// Implementations cover terminal tick messages, timers or a test harness.
type Scheduler interface {
	ScheduleNextFrame(fn FrameFunc)
}

// Renderer receives a snapshot after every state change.
// It must treat the snapshot as read-only.
type Renderer interface {
	Render(s Snapshot)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(s Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) { f(s) }

// Loop drives a Simulation from frame timestamps. It computes a clamped
// delta, runs one update and one render per frame, and requests the next
// frame only while a run is active and unpaused.
type Loop struct {
	sim      *Simulation
	sched    Scheduler
	renderer Renderer
	maxDelta time.Duration

	last    time.Time // Timestamp of the previous frame (or resume)
	pending bool      // A frame callback is outstanding
	frames  int
}

// NewLoop creates a loop driver. renderer may be nil.
func NewLoop(s *Simulation, sched Scheduler, renderer Renderer) *Loop {
	if renderer == nil {
		renderer = RendererFunc(func(Snapshot) {})
	}
	return &Loop{
		sim:      s,
		sched:    sched,
		renderer: renderer,
		maxDelta: time.Duration(s.cfg.Loop.MaxDeltaMS) * time.Millisecond,
	}
}

// Sim returns the driven simulation.
func (l *Loop) Sim() *Simulation {
	return l.sim
}

// Frames returns the number of frames that ran an update.
func (l *Loop) Frames() int {
	return l.frames
}

// Start begins a new run anchored at now.
func (l *Loop) Start(now time.Time) {
	l.sim.Start()
	l.last = now
	l.render()
	l.schedule()
}

// Reset abandons the current run and returns to the idle state.
func (l *Loop) Reset() {
	l.sim.Reset()
	l.render()
}

// Jump forwards a jump request; the simulation decides whether it applies.
func (l *Loop) Jump() bool {
	ok := l.sim.Jump()
	if ok {
		l.render()
	}
	return ok
}

// SelectDifficulty forwards a difficulty choice for the next run.
func (l *Loop) SelectDifficulty(label string) {
	l.sim.SelectDifficulty(label)
	l.render()
}

// TogglePause pauses or resumes the run. While paused no frame is
// requested, so timers and positions are frozen. Resuming re-anchors the
// previous timestamp at now so the pause does not show up as a delta.
func (l *Loop) TogglePause(now time.Time) {
	if !l.sim.Running() {
		return
	}
	if paused := l.sim.TogglePause(); !paused {
		l.last = now
		l.schedule()
	}
	l.render()
}

// frame is the scheduled callback.
func (l *Loop) frame(now time.Time) {
	l.pending = false
	if !l.sim.Running() || l.sim.Paused() {
		return
	}

	delta := now.Sub(l.last)
	if delta < 0 {
		delta = 0
	}
	if delta > l.maxDelta {
		delta = l.maxDelta
	}
	l.last = now

	l.sim.Update(delta.Seconds())
	l.frames++
	l.render()

	if l.sim.Running() && !l.sim.Paused() {
		l.schedule()
	}
}

func (l *Loop) schedule() {
	if l.pending {
		return
	}
	l.pending = true
	l.sched.ScheduleNextFrame(l.frame)
}

func (l *Loop) render() {
	l.renderer.Render(l.sim.Snapshot())
}

// ManualScheduler is a fixed-step Scheduler for tests and headless runs.
// Each Advance moves its clock by Step and fires the pending callback.
type ManualScheduler struct {
	Now  time.Time
	Step time.Duration
	next FrameFunc
}

// NewManualScheduler creates a harness starting at start.
func NewManualScheduler(start time.Time, step time.Duration) *ManualScheduler {
	return &ManualScheduler{Now: start, Step: step}
}

// ScheduleNextFrame stores fn for the next Advance.
func (m *ManualScheduler) ScheduleNextFrame(fn FrameFunc) {
	m.next = fn
}

// Pending reports whether a callback is waiting.
func (m *ManualScheduler) Pending() bool {
	return m.next != nil
}

// Advance moves the clock one step and fires the pending callback.
// It returns false when nothing was scheduled.
func (m *ManualScheduler) Advance() bool {
	m.Now = m.Now.Add(m.Step)
	if m.next == nil {
		return false
	}
	fn := m.next
	m.next = nil
	fn(m.Now)
	return true
}

// Sleep moves the clock without firing anything, like a stalled process.
func (m *ManualScheduler) Sleep(d time.Duration) {
	m.Now = m.Now.Add(d)
}
