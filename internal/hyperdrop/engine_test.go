package hyperdrop

import "testing"

func TestCollidesEmptyBoardOnlyAtBounds(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)

	for _, pt := range PieceTypes {
		for y := -4; y <= DefaultRows+1; y++ {
			for x := -4; x <= DefaultCols+1; x++ {
				p := &Piece{Type: pt, Shape: ShapeOf(pt), X: x, Y: y}

				outside := false
				for cx, cy := range p.Cells() {
					if cx < 0 || cx >= DefaultCols || cy >= DefaultRows {
						outside = true
					}
				}

				if got := Collides(b, p); got != outside {
					t.Fatalf("%s at (%d, %d): Collides() = %v, want %v", pt, x, y, got, outside)
				}
			}
		}
	}
}

func TestCollidesCases(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	b.Set(4, 10, PieceZ)
	fillRow(b, 0, PieceI)

	tests := []struct {
		name          string
		piece         *Piece
		wantCollision bool
	}{
		{
			name:  "free space",
			piece: &Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: 0, Y: 5},
		},
		{
			name:          "settled cell",
			piece:         &Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: 3, Y: 9},
			wantCollision: true,
		},
		{
			name:          "left wall",
			piece:         &Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: -1, Y: 5},
			wantCollision: true,
		},
		{
			name:          "right wall",
			piece:         &Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: 9, Y: 5},
			wantCollision: true,
		},
		{
			name:          "floor",
			piece:         &Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: 0, Y: 19},
			wantCollision: true,
		},
		{
			name:  "above the board ignores occupancy",
			piece: &Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: 4, Y: -2},
		},
		{
			name:          "above the board still checks walls",
			piece:         &Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: -1, Y: -3},
			wantCollision: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(b, tc.piece); got != tc.wantCollision {
				t.Errorf("Collides() = %v, want %v", got, tc.wantCollision)
			}
		})
	}
}

func TestCollidesIsPure(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := NewPiece(PieceS, DefaultCols)
	boardBefore := b.String()
	x, y := p.X, p.Y

	for range 3 {
		Collides(b, p)
	}

	if b.String() != boardBefore || p.X != x || p.Y != y {
		t.Error("Collides must not mutate the board or the piece")
	}
}

func TestMergeThenCollide(t *testing.T) {
	for _, pt := range PieceTypes {
		t.Run(pt.String(), func(t *testing.T) {
			b := NewBoard(DefaultRows, DefaultCols)
			p := NewPiece(pt, DefaultCols)
			p.Y = 5

			if Collides(b, p) {
				t.Fatal("piece should fit before merging")
			}
			Merge(b, p)
			if !Collides(b, p) {
				t.Error("piece must collide with its own merged cells")
			}
			for x, y := range p.Cells() {
				if b.At(x, y) != pt {
					t.Errorf("cell (%d, %d) = %s, want %s", x, y, b.At(x, y), pt)
				}
			}
		})
	}
}

func TestMergeDropsCellsAboveBoard(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := &Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: 4, Y: -1}

	Merge(b, p)

	if !b.Occupied(4, 0) || !b.Occupied(5, 0) {
		t.Error("visible cells should be written")
	}
	count := 0
	for y := range b.Rows() {
		for x := range b.Cols() {
			if b.Occupied(x, y) {
				count++
			}
		}
	}
	if count != 2 {
		t.Errorf("merged %d cells, want 2", count)
	}
}
