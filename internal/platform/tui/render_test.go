package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hyperdrop/internal/core"
	"github.com/vovakirdan/hyperdrop/internal/hyperdrop"
)

func TestBoardRendererDrawsCells(t *testing.T) {
	screen := core.NewScreen(30, 30)
	r := NewBoardRenderer(screen, 1, 1, 10, 20)

	r.Clear()
	r.DrawCell(hyperdrop.PieceI, 0, 0)
	r.DrawCell(hyperdrop.PieceZ, 9, 19)

	tests := []struct {
		x, y  int
		rune  rune
		color core.Color
	}{
		{1, 1, blockGlyph, core.ColorCyan},
		{2, 1, blockGlyph, core.ColorCyan},
		{19, 20, blockGlyph, core.ColorRed},
		{20, 20, blockGlyph, core.ColorRed},
		{4, 1, emptyGlyph, core.ColorGray},
	}
	for _, tt := range tests {
		cell := screen.GetCell(tt.x, tt.y)
		if cell.Rune != tt.rune || cell.Color != tt.color {
			t.Errorf("cell (%d, %d) = %q/%d, want %q/%d", tt.x, tt.y, cell.Rune, cell.Color, tt.rune, tt.color)
		}
	}
}

func TestBoardRendererClipsOutsideBoard(t *testing.T) {
	screen := core.NewScreen(30, 30)
	r := NewBoardRenderer(screen, 1, 1, 10, 20)

	r.DrawCell(hyperdrop.PieceO, 10, 0)
	r.DrawCell(hyperdrop.PieceO, -1, 0)
	r.DrawCell(hyperdrop.PieceO, 0, 20)

	if strings.ContainsRune(screen.String(), blockGlyph) {
		t.Errorf("cells outside the board were drawn:\n%s", screen.String())
	}
}

func TestBoardRendererFromSession(t *testing.T) {
	screen := core.NewScreen(30, 30)
	r := NewBoardRenderer(screen, 1, 1, 10, 20)

	s := hyperdrop.NewSession(hyperdrop.Options{Seed: 7})
	if err := s.Start("ada"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	s.Step(hyperdrop.CommandHardDrop)
	s.Render(r)

	blocks := strings.Count(screen.String(), string(blockGlyph))
	// Four landed cells plus one to four visible cells of the new piece.
	if blocks < 5*cellWidth || blocks > 8*cellWidth || blocks%cellWidth != 0 {
		t.Errorf("unexpected block count %d:\n%s", blocks, screen.String())
	}
}

func TestPieceColorsCoverCatalog(t *testing.T) {
	seen := map[core.Color]bool{}
	for _, pt := range hyperdrop.PieceTypes {
		c, ok := pieceColors[pt]
		if !ok {
			t.Errorf("no color for %s", pt)
		}
		if seen[c] {
			t.Errorf("color %d used twice", c)
		}
		seen[c] = true
	}
}

func TestLayoutFitsBoardAndPanel(t *testing.T) {
	l := newLayout(20, 10)

	if l.board.W != 22 || l.board.H != 22 {
		t.Errorf("board frame = %dx%d, want 22x22", l.board.W, l.board.H)
	}
	if l.panel.X <= l.board.Right()-1 {
		t.Error("panel overlaps the board")
	}
	if l.width != l.panel.Right() || l.height != 22 {
		t.Errorf("layout = %dx%d", l.width, l.height)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(12, 2)
	screen.DrawTextColored(0, 0, "HYPER", core.ColorCyan)
	screen.DrawTextColored(5, 0, "DROP", core.ColorDefault)

	out := RenderScreen(screen)
	if !strings.Contains(out, "DROP") || !strings.Contains(out, "HYPER") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestDrawOverlayCentersText(t *testing.T) {
	screen := core.NewScreen(22, 22)
	drawOverlay(screen, core.NewRect(0, 0, 22, 22), "GAME OVER", "Score: 100")

	text := screen.String()
	if !strings.Contains(text, "GAME OVER") || !strings.Contains(text, "Score: 100") {
		t.Errorf("overlay text missing:\n%s", text)
	}
	if !strings.Contains(text, "┌────────────┐") {
		t.Errorf("overlay border missing:\n%s", text)
	}
}
