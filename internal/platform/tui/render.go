package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hyperdrop/internal/core"
	"github.com/vovakirdan/hyperdrop/internal/hyperdrop"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// pieceColors assigns each tetromino its display color.
var pieceColors = map[hyperdrop.PieceType]core.Color{
	hyperdrop.PieceI: core.ColorCyan,
	hyperdrop.PieceJ: core.ColorBlue,
	hyperdrop.PieceL: core.ColorOrange,
	hyperdrop.PieceO: core.ColorYellow,
	hyperdrop.PieceS: core.ColorGreen,
	hyperdrop.PieceT: core.ColorMagenta,
	hyperdrop.PieceZ: core.ColorRed,
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board cell glyphs. Each board column is cellWidth screen columns wide so
// cells look square in a typical terminal font.
const (
	cellWidth  = 2
	blockGlyph = '█'
	emptyGlyph = '·'
)

// BoardRenderer draws the session's cells onto a region of a core.Screen.
type BoardRenderer struct {
	screen *core.Screen
	area   core.Rect // board interior in screen coordinates
}

var _ hyperdrop.Renderer = (*BoardRenderer)(nil)

// NewBoardRenderer returns a renderer whose board interior starts at (x, y).
func NewBoardRenderer(s *core.Screen, x, y, cols, rows int) *BoardRenderer {
	return &BoardRenderer{
		screen: s,
		area:   core.NewRect(x, y, cols*cellWidth, rows),
	}
}

// Clear paints every board cell empty.
func (r *BoardRenderer) Clear() {
	for y := r.area.Y; y < r.area.Bottom(); y++ {
		for x := r.area.X; x < r.area.Right(); x += cellWidth {
			r.screen.SetColored(x, y, ' ', core.ColorGray)
			r.screen.SetColored(x+1, y, emptyGlyph, core.ColorGray)
		}
	}
}

// DrawCell paints one board cell in the color of its piece type.
// Cells outside the board area are ignored.
func (r *BoardRenderer) DrawCell(t hyperdrop.PieceType, col, row int) {
	x := r.area.X + col*cellWidth
	y := r.area.Y + row
	if !r.area.Contains(x, y) {
		return
	}
	c, ok := pieceColors[t]
	if !ok {
		c = core.ColorDefault
	}
	for i := range cellWidth {
		r.screen.SetColored(x+i, y, blockGlyph, c)
	}
}

// layout describes where the board and the side panel sit on the game screen.
type layout struct {
	board  core.Rect // board frame, including the border
	panel  core.Rect // side panel frame
	width  int
	height int
}

const (
	panelWidth  = 22
	panelHeight = 11
)

func newLayout(rows, cols int) layout {
	board := core.NewRect(0, 0, cols*cellWidth+2, rows+2)
	panel := core.NewRect(board.Right()+1, 0, panelWidth, panelHeight)
	return layout{
		board:  board,
		panel:  panel,
		width:  panel.Right(),
		height: max(board.H, panel.H),
	}
}

// panelInfo is the text shown in the side panel.
type panelInfo struct {
	player string
	score  int
	lines  int
	best   int
}

// drawPanel renders the score panel.
func drawPanel(s *core.Screen, r core.Rect, info panelInfo) {
	s.DrawBoxColored(r, core.ColorGray)
	s.DrawTextColored(r.X+2, r.Y+1, "HYPERDROP", core.ColorCyan)

	rows := []struct {
		label string
		value string
	}{
		{"Player", info.player},
		{"Score", fmt.Sprintf("%d", info.score)},
		{"Lines", fmt.Sprintf("%d", info.lines)},
		{"Best", fmt.Sprintf("%d", max(info.best, info.score))},
	}
	inner := r.W - 4
	for i, row := range rows {
		y := r.Y + 3 + i*2
		s.DrawTextColored(r.X+2, y, row.label, core.ColorGray)
		value := truncate(row.value, inner-len(row.label)-1)
		s.DrawTextColored(r.Right()-2-len([]rune(value)), y, value, core.ColorBrightWhite)
	}
}

// drawOverlay draws a centered message box over the area.
func drawOverlay(s *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := area.Centered(maxLen+4, len(lines)+2)

	s.DrawRect(box, ' ')
	s.DrawBox(box)

	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		s.DrawTextColored(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
