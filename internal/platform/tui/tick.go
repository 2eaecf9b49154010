// Package tui provides the Bubble Tea front end for HyperDrop.
// It handles the terminal UI loop, key bindings, rendering and the
// start, game-over and scoreboard screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame. Session is the ID of the game that
// scheduled it; ticks from an earlier game are dropped.
type TickMsg struct {
	Session string
	Time    time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(session string, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Session: session, Time: t}
	})
}
