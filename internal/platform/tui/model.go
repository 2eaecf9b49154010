package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hyperdrop/internal/config"
	"github.com/vovakirdan/hyperdrop/internal/core"
	"github.com/vovakirdan/hyperdrop/internal/hyperdrop"
	"github.com/vovakirdan/hyperdrop/internal/storage"
)

// emptyNamePrompt is shown when Enter is pressed with a blank name.
const emptyNamePrompt = "Enter your name to start!"

// phase is the screen the model is showing.
type phase int

const (
	phaseStart phase = iota
	phasePlaying
	phaseGameOver
	phaseScores
)

// Options configures a Model.
type Options struct {
	Store   storage.Scores
	Game    config.HyperdropConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Player  string // Skips the start screen when non-empty
}

// Model is the Bubble Tea model for HyperDrop.
type Model struct {
	opts       Options
	phase      phase
	session    *hyperdrop.Session
	screen     *core.Screen
	renderer   *BoardRenderer
	layout     layout
	input      textinput.Model
	prompt     string
	scoreboard ScoreboardModel
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	best       int
	games      int
	status     string
	width      int
	height     int
	quitting   bool
}

// NewModel creates the model on the start screen, or directly in a running
// game when opts.Player holds a valid name.
func NewModel(opts Options) Model {
	if opts.Store == nil {
		opts.Store = storage.NewMemory()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if err := opts.Game.Validate(); err != nil {
		opts.Game = config.DefaultHyperdropConfig()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	lay := newLayout(opts.Game.Board.Rows, opts.Game.Board.Cols)
	screen := core.NewScreen(lay.width, lay.height)

	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 16
	input.Width = 20
	input.Prompt = "Name: "
	input.Focus()

	if name, ok, err := opts.Store.CurrentPlayer(); err != nil {
		opts.Logger.Warn("could not load current player", "error", err)
	} else if ok {
		input.SetValue(name)
	}

	m := Model{
		opts:     opts,
		screen:   screen,
		renderer: NewBoardRenderer(screen, lay.board.X+1, lay.board.Y+1, opts.Game.Board.Cols, opts.Game.Board.Rows),
		layout:   lay,
		input:    input,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   opts.Logger,
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
	}
	m.refreshBest()

	if opts.Player != "" {
		m.input.SetValue(opts.Player)
		m.startGame()
	}
	return m
}

// Init starts the tick loop when the model begins in a running game.
func (m Model) Init() tea.Cmd {
	if m.phase == phasePlaying {
		return tickCmd(m.session.ID(), m.opts.Runtime.TickRate)
	}
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Screenshot) && m.phase != phaseStart {
			m.saveScreenshot()
			return m, nil
		}
		switch m.phase {
		case phaseStart:
			return m.updateStart(msg)
		case phasePlaying:
			return m.updatePlaying(msg)
		case phaseGameOver:
			return m.updateGameOver(msg)
		case phaseScores:
			return m.updateScores(msg)
		}
	}

	if m.phase == phaseStart {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateStart handles the name entry screen.
func (m Model) updateStart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		if !m.startGame() {
			return m, nil
		}
		return m, tickCmd(m.session.ID(), m.opts.Runtime.TickRate)
	}

	m.prompt = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startGame creates a fresh session for the name in the input and starts it.
// It reports whether the game is now running.
func (m *Model) startGame() bool {
	seed := m.opts.Runtime.Seed
	if m.games > 0 {
		seed = 0 // Replays get a fresh piece order
	}

	session := hyperdrop.NewSession(hyperdrop.Options{
		Rows:         m.opts.Game.Board.Rows,
		Cols:         m.opts.Game.Board.Cols,
		DropInterval: m.opts.Game.DropInterval(),
		LinePoints:   m.opts.Game.Scoring.LinePoints,
		Seed:         seed,
		Scores:       m.opts.Store,
		Players:      m.opts.Store,
		Logger:       m.logger,
	})

	if err := session.Start(m.input.Value()); err != nil {
		if errors.Is(err, hyperdrop.ErrEmptyPlayerName) {
			m.prompt = emptyNamePrompt
		} else {
			m.prompt = err.Error()
		}
		m.phase = phaseStart
		return false
	}

	m.session = session
	m.phase = phasePlaying
	m.prompt = ""
	m.status = ""
	m.games++
	return true
}

// updatePlaying routes key presses to the session.
func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Abort()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Abort):
		m.session.Abort()
		m.enterGameOver()
		return m, nil
	}

	if cmd, ok := m.keys.Command(msg); ok {
		if res := m.session.Step(cmd); res.GameOver {
			m.enterGameOver()
		}
	}
	return m, nil
}

// updateGameOver handles the game-over screen.
func (m Model) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		if m.startGame() {
			return m, tickCmd(m.session.ID(), m.opts.Runtime.TickRate)
		}
	case key.Matches(msg, m.keys.Scores):
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.session.ID(), m.width, m.height)
		m.phase = phaseScores
	}
	return m, nil
}

// updateScores forwards keys to the scoreboard until it is closed.
func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)
	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.phase = phaseGameOver
	}
	return m, cmd
}

// enterGameOver switches to the game-over screen. Ticks stop because
// handleTick no longer reschedules.
func (m *Model) enterGameOver() {
	m.phase = phaseGameOver
	m.refreshBest()
}

// refreshBest reloads the best stored score for the side panel.
func (m *Model) refreshBest() {
	best, err := m.opts.Store.HighScore()
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	m.best = best
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.input.Width = core.Clamp(msg.Width-10, 1, 20)
	if m.phase == phaseScores {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick applies gravity and schedules the next frame while the game runs.
// Ticks scheduled by a previous session are dropped so only one loop is live.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying || msg.Session != m.session.ID() {
		return m, nil
	}

	if res := m.session.Tick(msg.Time); res.GameOver {
		m.enterGameOver()
		return m, nil
	}
	return m, tickCmd(m.session.ID(), m.opts.Runtime.TickRate)
}

// saveScreenshot saves the current game screen to a text file.
func (m *Model) saveScreenshot() {
	m.renderGame()

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".hyperdrop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("hyperdrop_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// renderGame draws the board, the side panel and any overlay to the screen buffer.
func (m Model) renderGame() {
	m.screen.Clear()
	m.screen.DrawBoxColored(m.layout.board, core.ColorGray)

	if m.session == nil {
		return
	}
	m.session.Render(m.renderer)

	drawPanel(m.screen, m.layout.panel, panelInfo{
		player: m.session.Player(),
		score:  m.session.Score(),
		lines:  m.session.Lines(),
		best:   m.best,
	})

	if m.session.State() == hyperdrop.StateGameOver {
		drawOverlay(m.screen, m.layout.board,
			"GAME OVER",
			fmt.Sprintf("Score: %d", m.session.Score()),
		)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseStart:
		return m.place(m.startView())
	case phaseScores:
		return m.scoreboard.View()
	}

	if m.width > 0 && m.height > 0 && (m.width < m.layout.width || m.height < m.layout.height+1) {
		return m.place(fmt.Sprintf("Terminal too small\nNeed %dx%d, have %dx%d",
			m.layout.width, m.layout.height+1, m.width, m.height))
	}

	m.renderGame()

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := helpStyle.Render(m.help.View(m.keys))
	if m.phase == phaseGameOver {
		footer = helpStyle.Render(m.help.View(m.keys.gameOverHelp()))
	}
	if m.status != "" {
		footer = helpStyle.Render(m.status)
	}

	return m.place(lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer))
}

// startView renders the name entry screen.
func (m Model) startView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6")).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("HYPERDROP"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.prompt != "" {
		b.WriteString(promptStyle.Render(m.prompt))
	} else {
		b.WriteString(hintStyle.Render(fmt.Sprintf("Best score: %d", m.best)))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter start • esc quit"))

	return boxStyle.Render(b.String())
}

// place centers content in the terminal when its size is known.
func (m Model) place(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
