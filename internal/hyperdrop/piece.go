// Package hyperdrop implements the falling-block simulation: the board, the
// tetromino catalog, collision and merge rules, line clearing and the Session
// state machine that sequences them. It has no terminal or storage
// dependencies; the platform layer supplies a Renderer, a clock and stores.
package hyperdrop

import (
	"iter"
	"math/rand"
)

// PieceType tags a tetromino kind. The zero value marks an empty board cell.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceTypes lists the catalog in a stable order.
var PieceTypes = []PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

// String returns the single-letter symbol of the piece type.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "."
	}
}

// Shape is an occupancy matrix indexed [row][col].
type Shape [][]bool

// catalog holds the canonical spawn orientation of every piece type.
// Entries are never handed out directly; NewPiece copies them.
var catalog = map[PieceType]Shape{
	PieceT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	PieceO: {
		{true, true},
		{true, true},
	},
	PieceL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
	PieceJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	PieceI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	PieceS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	PieceZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
}

// ShapeOf returns a copy of the canonical shape for t, or nil for PieceNone.
func ShapeOf(t PieceType) Shape {
	s, ok := catalog[t]
	if !ok {
		return nil
	}
	return s.Clone()
}

// Width returns the number of columns in the matrix.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both matrices have the same size and occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the shape turned 90° clockwise:
// result[i][j] = s[len(s)-1-j][i]. The input is left untouched.
func Rotate(s Shape) Shape {
	h := len(s)
	w := s.Width()
	out := make(Shape, w)
	for i := range w {
		out[i] = make([]bool, h)
		for j := range h {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// Piece is the falling tetromino. X and Y locate the shape's top-left
// corner on the board; Y may be negative while the piece enters from above.
type Piece struct {
	Type  PieceType
	Shape Shape
	X, Y  int
}

// NewPiece spawns t horizontally centered on a board cols wide, one row
// above the visible area.
func NewPiece(t PieceType, cols int) *Piece {
	shape := ShapeOf(t)
	return &Piece{
		Type:  t,
		Shape: shape,
		X:     (cols - shape.Width()) / 2,
		Y:     -1,
	}
}

// Cells yields the absolute board coordinates (x, y) of every occupied cell.
func (p *Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dy, row := range p.Shape {
			for dx, filled := range row {
				if !filled {
					continue
				}
				if !yield(p.X+dx, p.Y+dy) {
					return
				}
			}
		}
	}
}

// Randomizer chooses the type of the next piece to spawn.
type Randomizer interface {
	Next() PieceType
}

// uniformRandomizer draws every type with equal probability.
type uniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer returns a Randomizer seeded with seed.
func NewUniformRandomizer(seed int64) Randomizer {
	return &uniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen piece type.
func (r *uniformRandomizer) Next() PieceType {
	return PieceTypes[r.rng.Intn(len(PieceTypes))]
}
