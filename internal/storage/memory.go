package storage

import (
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/hyperdrop/internal/hyperdrop"
)

// Memory is an in-process store. It is used when the database cannot be
// opened and in tests. State is lost when the process exits.
type Memory struct {
	mu      sync.RWMutex
	records []hyperdrop.ScoreRecord
	player  string
	now     func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// AppendScore stores a copy of rec stamped with the current time.
func (m *Memory) AppendScore(rec hyperdrop.ScoreRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.CreatedAt = m.now()
	m.records = append(m.records, rec)
	return nil
}

// LoadScores returns the stored scores in insertion order.
func (m *Memory) LoadScores() ([]hyperdrop.ScoreRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.records), nil
}

// TopScores returns up to limit scores, highest first.
func (m *Memory) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.RLock()
	entries := make([]ScoreEntry, len(m.records))
	for i, rec := range m.records {
		entries[i] = ScoreEntry{ID: int64(i + 1), ScoreRecord: rec}
	}
	m.mu.RUnlock()

	slices.SortStableFunc(entries, func(a, b ScoreEntry) int {
		return b.Score - a.Score
	})
	return entries[:min(limit, len(entries))], nil
}

// HighScore returns the highest stored score, or 0.
func (m *Memory) HighScore() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	best := 0
	for _, rec := range m.records {
		best = max(best, rec.Score)
	}
	return best, nil
}

// ClearScores drops every stored score.
func (m *Memory) ClearScores() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

// CurrentPlayer returns the remembered player name.
func (m *Memory) CurrentPlayer() (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.player, m.player != "", nil
}

// SetCurrentPlayer remembers name.
func (m *Memory) SetCurrentPlayer(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player = name
	return nil
}

var _ hyperdrop.Persistence = (*Memory)(nil)
