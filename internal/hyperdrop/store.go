package hyperdrop

import "time"

// ScoreRecord is the result of one finished game.
type ScoreRecord struct {
	PlayerName string
	Score      int
	SessionID  string
	CreatedAt  time.Time // Assigned by the store; zero until persisted
}

// ScoreSink receives the final score when a session ends.
type ScoreSink interface {
	AppendScore(rec ScoreRecord) error
}

// PlayerStore remembers the name of the last player to start a game.
type PlayerStore interface {
	CurrentPlayer() (name string, ok bool, err error)
	SetCurrentPlayer(name string) error
}

// Persistence is the full store surface used by the front end.
type Persistence interface {
	ScoreSink
	PlayerStore
	LoadScores() ([]ScoreRecord, error)
}
