package hyperdrop

import "testing"

func TestSpawnPositionWithinBoard(t *testing.T) {
	for _, pt := range PieceTypes {
		t.Run(pt.String(), func(t *testing.T) {
			p := NewPiece(pt, DefaultCols)

			w := p.Shape.Width()
			if p.X < 0 || p.X > DefaultCols-w {
				t.Errorf("spawn x = %d, want within [0, %d]", p.X, DefaultCols-w)
			}
			if p.X != (DefaultCols-w)/2 {
				t.Errorf("spawn x = %d, want centered %d", p.X, (DefaultCols-w)/2)
			}
			if p.Y != -1 {
				t.Errorf("spawn y = %d, want -1", p.Y)
			}

			filled := 0
			for range p.Cells() {
				filled++
			}
			if filled != 4 {
				t.Errorf("shape has %d cells, want 4", filled)
			}
		})
	}
}

func TestNewPieceCopiesCatalog(t *testing.T) {
	p := NewPiece(PieceT, DefaultCols)
	p.Shape[0][0] = true

	if ShapeOf(PieceT)[0][0] {
		t.Error("mutating a spawned piece must not change the catalog")
	}
}

func TestShapeOfUnknown(t *testing.T) {
	if ShapeOf(PieceNone) != nil {
		t.Error("ShapeOf(PieceNone) should be nil")
	}
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		name     string
		input    Shape
		expected Shape
	}{
		{
			name:  "T points right",
			input: ShapeOf(PieceT),
			expected: Shape{
				{false, true, false},
				{false, true, true},
				{false, true, false},
			},
		},
		{
			name:  "I becomes vertical",
			input: ShapeOf(PieceI),
			expected: Shape{
				{false, false, true, false},
				{false, false, true, false},
				{false, false, true, false},
				{false, false, true, false},
			},
		},
		{
			name:     "O is unchanged",
			input:    ShapeOf(PieceO),
			expected: ShapeOf(PieceO),
		},
		{
			name:  "rectangular input",
			input: Shape{{true, true, true}, {true, false, false}},
			expected: Shape{
				{true, true},
				{false, true},
				{false, true},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(tc.input)
			if !got.Equal(tc.expected) {
				t.Errorf("Rotate() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, pt := range PieceTypes {
		t.Run(pt.String(), func(t *testing.T) {
			original := ShapeOf(pt)
			s := original
			for range 4 {
				s = Rotate(s)
			}
			if !s.Equal(original) {
				t.Errorf("four rotations gave %v, want %v", s, original)
			}
		})
	}
}

func TestRotateLeavesInputUntouched(t *testing.T) {
	s := ShapeOf(PieceL)
	before := s.Clone()
	Rotate(s)
	if !s.Equal(before) {
		t.Error("Rotate must not modify its argument")
	}
}

func TestUniformRandomizerDeterminism(t *testing.T) {
	r1 := NewUniformRandomizer(42)
	r2 := NewUniformRandomizer(42)

	seen := make(map[PieceType]bool)
	for i := 0; i < 500; i++ {
		a, b := r1.Next(), r2.Next()
		if a != b {
			t.Fatalf("draw %d differs: %s vs %s", i, a, b)
		}
		seen[a] = true
	}
	if len(seen) != len(PieceTypes) {
		t.Errorf("saw %d piece types in 500 draws, want %d", len(seen), len(PieceTypes))
	}
}
