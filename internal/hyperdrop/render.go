package hyperdrop

// Renderer draws cell tags at board coordinates. Implementations own sizing,
// colors and glyphs; the simulation only reports what is where.
type Renderer interface {
	Clear()
	DrawCell(t PieceType, col, row int)
}

// Render clears the surface, then draws every settled cell followed by every
// visible cell of the falling piece.
func (s *Session) Render(r Renderer) {
	r.Clear()

	for y := range s.board.Rows() {
		for x := range s.board.Cols() {
			if t := s.board.At(x, y); t != PieceNone {
				r.DrawCell(t, x, y)
			}
		}
	}

	if s.piece == nil {
		return
	}
	for x, y := range s.piece.Cells() {
		if y >= 0 {
			r.DrawCell(s.piece.Type, x, y)
		}
	}
}
