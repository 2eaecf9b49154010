package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hyperdrop/internal/hyperdrop"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommands(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want hyperdrop.Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, hyperdrop.CommandMoveLeft},
		{"h", runeKey('h'), hyperdrop.CommandMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, hyperdrop.CommandMoveRight},
		{"l", runeKey('l'), hyperdrop.CommandMoveRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, hyperdrop.CommandSoftDrop},
		{"j", runeKey('j'), hyperdrop.CommandSoftDrop},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, hyperdrop.CommandRotate},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, hyperdrop.CommandHardDrop},
		{"k", runeKey('k'), hyperdrop.CommandHardDrop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Command(tt.msg)
			if !ok {
				t.Fatalf("Command(%q) not mapped", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Command(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapIgnoresOtherKeys(t *testing.T) {
	km := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{
		runeKey('q'),
		runeKey('x'),
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
		{Type: tea.KeyTab},
	} {
		if cmd, ok := km.Command(msg); ok {
			t.Errorf("Command(%q) = %s, want unmapped", msg.String(), cmd)
		}
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	for _, b := range km.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
	if len(km.gameOverHelp().ShortHelp()) != 4 {
		t.Errorf("game-over help has %d bindings, want 4", len(km.gameOverHelp().ShortHelp()))
	}
}
