// Package tui provides the Bubble Tea front end for the runner.
// It maps keys to simulation actions, drives the frame loop from tick
// messages and draws snapshots into a terminal screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/sim"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after 1/tickRate seconds.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// teaScheduler adapts Bubble Tea ticks to sim.Scheduler.
// The loop stores its callback here; Update turns a stored callback into
// at most one outstanding tick command and fires it when the tick arrives.
type teaScheduler struct {
	rate  int
	next  sim.FrameFunc
	armed bool // A tick command is in flight
}

func newTeaScheduler(rate int) *teaScheduler {
	return &teaScheduler{rate: rate}
}

// ScheduleNextFrame implements sim.Scheduler.
func (t *teaScheduler) ScheduleNextFrame(fn sim.FrameFunc) {
	t.next = fn
}

// cmd returns a tick command when a frame is wanted and none is in flight.
func (t *teaScheduler) cmd() tea.Cmd {
	if t.next == nil || t.armed {
		return nil
	}
	t.armed = true
	return tickCmd(t.rate)
}

// fire runs the stored callback for a delivered tick.
func (t *teaScheduler) fire(now time.Time) {
	t.armed = false
	fn := t.next
	t.next = nil
	if fn != nil {
		fn(now)
	}
}
