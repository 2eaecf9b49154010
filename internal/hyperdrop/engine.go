package hyperdrop

// Collides reports whether p overlaps a wall, the floor or a settled cell.
// Cells above the board (y < 0) are only checked against the side walls so
// that pieces can enter from above. Collides has no side effects.
func Collides(b *Board, p *Piece) bool {
	for x, y := range p.Cells() {
		if x < 0 || x >= b.Cols() || y >= b.Rows() {
			return true
		}
		if y >= 0 && b.Occupied(x, y) {
			return true
		}
	}
	return false
}

// Merge writes the piece's type into every board cell it covers. Cells above
// the visible board are dropped. Call it once per landing.
func Merge(b *Board, p *Piece) {
	for x, y := range p.Cells() {
		if y >= 0 {
			b.Set(x, y, p.Type)
		}
	}
}
