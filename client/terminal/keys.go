package terminal

import (
	"unicode"

	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/gdamore/tcell/v2"
)

var keyBindings = map[tcell.Key]types.Command{
	tcell.KeyLeft:   types.CommandLeft,
	tcell.KeyRight:  types.CommandRight,
	tcell.KeyDown:   types.CommandSoftDrop,
	tcell.KeyUp:     types.CommandRotate,
	tcell.KeyEnter:  types.CommandStart,
	tcell.KeyEscape: types.CommandQuit,
	tcell.KeyCtrlC:  types.CommandQuit,
}

var runeBindings = map[rune]types.Command{
	'a': types.CommandLeft,
	'd': types.CommandRight,
	's': types.CommandSoftDrop,
	'w': types.CommandRotate,
	'p': types.CommandTogglePause,
	'q': types.CommandQuit,
}

// CommandForKey maps a key event to a command. Terminals report presses
// only, so every event counts as one key-down edge.
func CommandForKey(key tcell.Key, r rune) (types.Command, bool) {
	if key == tcell.KeyRune {
		cmd, ok := runeBindings[unicode.ToLower(r)]
		return cmd, ok
	}
	cmd, ok := keyBindings[key]
	return cmd, ok
}
