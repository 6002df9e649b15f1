package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nuno-faria/tetris/internal/tetris"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game command.
// Returns the command (may be CmdNone), whether it's a restart request,
// and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (cmd tetris.Command, isRestart, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "esc":
		return tetris.CmdNone, false, true
	}

	switch key {
	case "w", "up":
		return tetris.CmdRotate, false, false
	case "a", "left":
		return tetris.CmdLeft, false, false
	case "d", "right":
		return tetris.CmdRight, false, false
	case "s", "down":
		return tetris.CmdDown, false, false
	case " ":
		return tetris.CmdHardDrop, false, false
	case "p":
		return tetris.CmdPause, false, false
	case "r":
		return tetris.CmdNone, true, false
	}

	return tetris.CmdNone, false, false
}
