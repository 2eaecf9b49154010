package hyperdrop

import (
	"fmt"
	"strings"
)

// PieceSnapshot is a copy of the falling piece.
type PieceSnapshot struct {
	Type  PieceType
	X, Y  int
	Shape Shape
}

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	SessionID string
	State     State
	Player    string
	Score     int
	Lines     int
	Board     [][]PieceType
	Piece     *PieceSnapshot // nil outside StateRunning
}

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.id,
		State:     s.state,
		Player:    s.player,
		Score:     s.score,
		Lines:     s.lines,
		Board:     s.board.Grid(),
	}
	if s.piece != nil {
		snap.Piece = &PieceSnapshot{
			Type:  s.piece.Type,
			X:     s.piece.X,
			Y:     s.piece.Y,
			Shape: s.piece.Shape.Clone(),
		}
	}
	return snap
}

// DebugState returns a string representation of the session state.
func (s *Session) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s, Player: %q, Score: %d, Lines: %d\n", s.state, s.player, s.score, s.lines)
	if s.piece != nil {
		fmt.Fprintf(&b, "Piece: %s at (%d, %d)\n", s.piece.Type, s.piece.X, s.piece.Y)
	}
	b.WriteString(s.board.String())
	return b.String()
}
