package types

// Command is a discrete player input event. Shells deliver one command per
// key-down edge; held keys do not repeat.
type Command uint8

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandSoftDrop
	CommandRotate
	CommandTogglePause
	// CommandStart begins a game from the menu or a fresh one after game over.
	// It is handled by the frame loop, not by a game instance.
	CommandStart
	// CommandQuit stops the frame loop after flushing the high score.
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandSoftDrop:
		return "SoftDrop"
	case CommandRotate:
		return "Rotate"
	case CommandTogglePause:
		return "TogglePause"
	case CommandStart:
		return "Start"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsGameCommand reports whether the command is handled by a game instance.
func (c Command) IsGameCommand() bool {
	switch c {
	case CommandLeft, CommandRight, CommandSoftDrop, CommandRotate, CommandTogglePause:
		return true
	}
	return false
}
