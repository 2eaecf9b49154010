package hyperdrop

import "strings"

// Board is the grid of settled cells, indexed [row][col] with row 0 at the top.
type Board struct {
	rows  int
	cols  int
	cells [][]PieceType
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols, cells: make([][]PieceType, rows)}
	for r := range b.cells {
		b.cells[r] = make([]PieceType, cols)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (x, y) lies on the visible board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// At returns the tag at (x, y), or PieceNone when out of bounds.
func (b *Board) At(x, y int) PieceType {
	if !b.InBounds(x, y) {
		return PieceNone
	}
	return b.cells[y][x]
}

// Set writes a tag at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, t PieceType) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y][x] = t
}

// Occupied reports whether (x, y) holds a settled cell.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y) != PieceNone
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.rows {
		return false
	}
	for _, c := range b.cells[y] {
		if c == PieceNone {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, scanning bottom to top, and inserts an
// empty row at the top for each one. Rows above a cleared row keep their
// order. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for r := b.rows - 1; r >= 0; {
		if !b.RowFull(r) {
			r--
			continue
		}
		copy(b.cells[1:r+1], b.cells[:r])
		b.cells[0] = make([]PieceType, b.cols)
		cleared++
		// Row r now holds what was above it; examine it again.
	}
	return cleared
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{rows: b.rows, cols: b.cols, cells: make([][]PieceType, b.rows)}
	for r, row := range b.cells {
		out.cells[r] = append([]PieceType(nil), row...)
	}
	return out
}

// Grid returns a copy of the cells.
func (b *Board) Grid() [][]PieceType {
	return b.Clone().cells
}

// String renders the board with one letter per occupied cell and '.' for
// empty ones.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}
