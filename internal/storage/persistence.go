package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Scores adapts a Store to the simulation's high-score collaborator.
// Reads and writes never fail from the caller's point of view: errors are
// logged and the last known value is kept in memory. A nil Store makes it
// a purely in-memory tracker.
type Scores struct {
	mu     sync.Mutex
	store  *Store
	logger *log.Logger
	best   int
	loaded bool
}

// NewScores creates the adapter. store and logger may be nil.
func NewScores(store *Store, logger *log.Logger) *Scores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scores{store: store, logger: logger}
}

// HighScore returns the best score, reading the database once.
func (p *Scores) HighScore() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded || p.store == nil {
		return p.best
	}
	n, err := p.store.HighScore()
	if err != nil {
		p.logger.Warn("cannot read high score", "error", err)
		return p.best
	}
	if n > p.best {
		p.best = n
	}
	p.loaded = true
	return p.best
}

// SaveHighScore records score as the new best. The store only ever raises
// its value, so a cache that never loaded cannot lower a stored record.
func (p *Scores) SaveHighScore(score int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if score <= p.best {
		return
	}
	p.best = score
	if p.store == nil {
		return
	}
	if err := p.store.SaveHighScore(score); err != nil {
		p.logger.Error("cannot save high score", "score", score, "error", err)
	}
}

// SaveRun appends a finished run to the history. Errors are logged.
func (p *Scores) SaveRun(r RunRecord) {
	if p.store == nil || r.Score <= 0 {
		return
	}
	if _, err := p.store.SaveRun(r); err != nil {
		p.logger.Error("cannot save run", "difficulty", r.Difficulty, "score", r.Score, "error", err)
	}
}

// Difficulty returns the persisted difficulty label, or "" if unavailable.
func (p *Scores) Difficulty() string {
	if p.store == nil {
		return ""
	}
	label, err := p.store.Difficulty()
	if err != nil {
		p.logger.Warn("cannot read difficulty", "error", err)
		return ""
	}
	return label
}

// SetDifficulty persists the difficulty label. Errors are logged.
func (p *Scores) SetDifficulty(label string) {
	if p.store == nil {
		return
	}
	if err := p.store.SetDifficulty(label); err != nil {
		p.logger.Error("cannot save difficulty", "difficulty", label, "error", err)
	}
}
