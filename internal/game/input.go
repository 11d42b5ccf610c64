package game

import (
	"chunk-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Command represents a player-requested game action.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdLayerUp
	CmdLayerDown
	CmdInteract
	CmdWait
	CmdUseItem
	CmdQuit
)

// KeyToCommand maps a tcell key event to a game command.
func KeyToCommand(ev *tcell.EventKey) Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyEscape:
		return CmdQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return CmdUp
	case 'j', 'J':
		return CmdDown
	case 'l', 'L':
		return CmdRight
	case 'h', 'H':
		return CmdLeft
	case 'y', 'Y':
		return CmdLayerUp
	case 'u', 'U':
		return CmdLayerDown
	case 'e', 'E':
		return CmdInteract
	case '.':
		return CmdWait
	case 'p', 'P':
		return CmdUseItem
	case 'q', 'Q':
		return CmdQuit
	}
	return CmdNone
}

// systemCommand converts a game command to the command the entity update
// understands. Commands handled by the game itself map to system.CmdNone.
func (c Command) systemCommand() system.Command {
	switch c {
	case CmdUp:
		return system.CmdUp
	case CmdDown:
		return system.CmdDown
	case CmdLeft:
		return system.CmdLeft
	case CmdRight:
		return system.CmdRight
	case CmdLayerUp:
		return system.CmdLayerUp
	case CmdLayerDown:
		return system.CmdLayerDown
	case CmdInteract:
		return system.CmdInteract
	case CmdWait:
		return system.CmdWait
	}
	return system.CmdNone
}
