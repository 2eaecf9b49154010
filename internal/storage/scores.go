package storage

import "github.com/vovakirdan/hyperdrop/internal/hyperdrop"

// Scores is the store surface used by the front ends: the game's persistence
// plus ranked queries for the scoreboard and side panel.
type Scores interface {
	hyperdrop.Persistence
	TopScores(limit int) ([]ScoreEntry, error)
	HighScore() (int, error)
	ClearScores() error
}

var (
	_ Scores = (*Store)(nil)
	_ Scores = (*Memory)(nil)
)
