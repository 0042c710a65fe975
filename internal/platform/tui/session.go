package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// SessionModel manages one player's session flow: game <-> scoreboard.
// It is the top-level model for both local and SSH play.
type SessionModel struct {
	game     Model
	board    *ScoreboardModel
	store    *storage.Store
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session starting at the title screen.
// store may be nil; the scoreboard then shows no runs.
func NewSessionModel(opts Options, store *storage.Store) SessionModel {
	return SessionModel{
		game:   NewModel(opts),
		store:  store,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		// Both screens track the size
		updated, cmd := m.game.Update(msg)
		if g, ok := updated.(Model); ok {
			m.game = g
		}
		if m.board != nil {
			updatedBoard, _ := m.board.Update(msg)
			if b, ok := updatedBoard.(ScoreboardModel); ok {
				m.board = &b
			}
		}
		return m, cmd
	}

	// Ticks always belong to the game
	if _, ok := msg.(TickMsg); ok || m.board == nil {
		return m.updateGame(msg)
	}
	return m.updateBoard(msg)
}

// updateGame handles updates while the game is showing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.game.Update(msg)
	g, ok := updated.(Model)
	if !ok {
		return m, cmd
	}

	if g.wantBoard {
		g.wantBoard = false
		m.game = g
		board := NewScoreboardModel(m.store, m.width, m.height)
		m.board = &board
		return m, nil
	}
	m.game = g

	if g.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// updateBoard handles updates while the scoreboard is showing.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.board.Update(msg)
	b, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case b.IsGoingBack():
		m.board = nil
		return m, nil
	case b.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	m.board = &b
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	return m.game.View()
}

// ShowingScoreboard reports whether the scoreboard is on screen.
func (m SessionModel) ShowingScoreboard() bool {
	return m.board != nil
}

// Run starts a local Bubble Tea session and blocks until it exits.
func Run(opts Options, store *storage.Store) error {
	p := tea.NewProgram(
		NewSessionModel(opts, store),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
