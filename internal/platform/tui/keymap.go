package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hyperdrop/internal/hyperdrop"
)

// KeyMap defines the key bindings for the game screens.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	SoftDrop   key.Binding
	Rotate     key.Binding
	HardDrop   key.Binding
	Abort      key.Binding
	Restart    key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: arrows with vim-style aliases,
// space to rotate and up to hard drop.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "soft drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "rotate"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "hard drop"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end game"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key press into a game command.
// The second result is false when the key does not control the piece.
func (k KeyMap) Command(msg tea.KeyMsg) (hyperdrop.Command, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return hyperdrop.CommandMoveLeft, true
	case key.Matches(msg, k.Right):
		return hyperdrop.CommandMoveRight, true
	case key.Matches(msg, k.SoftDrop):
		return hyperdrop.CommandSoftDrop, true
	case key.Matches(msg, k.Rotate):
		return hyperdrop.CommandRotate, true
	case key.Matches(msg, k.HardDrop):
		return hyperdrop.CommandHardDrop, true
	}
	return 0, false
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop, k.Abort, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate},
		{k.SoftDrop, k.HardDrop},
		{k.Abort, k.Screenshot, k.Quit},
	}
}

// gameOverHelp lists the bindings active on the game-over screen.
func (k KeyMap) gameOverHelp() bindingHelp {
	return bindingHelp{k.Restart, k.Scores, k.Screenshot, k.Quit}
}

// bindingHelp adapts a flat binding list to help.KeyMap.
type bindingHelp []key.Binding

func (b bindingHelp) ShortHelp() []key.Binding { return b }

func (b bindingHelp) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
