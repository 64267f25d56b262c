package input

import (
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps keys to game commands. Every binding is edge-triggered:
// holding a key produces one command.
var keyBindings = []struct {
	keys    []ebiten.Key
	command types.Command
}{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, command: types.CommandLeft},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, command: types.CommandRight},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, command: types.CommandSoftDrop},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, command: types.CommandRotate},
	{keys: []ebiten.Key{ebiten.KeyP}, command: types.CommandTogglePause},
	{keys: []ebiten.Key{ebiten.KeyEnter}, command: types.CommandStart},
	{keys: []ebiten.Key{ebiten.KeyEscape}, command: types.CommandQuit},
}

// AppendJustPressedCommands appends the commands whose key went down this tick.
func AppendJustPressedCommands(commands []types.Command) []types.Command {
	for _, binding := range keyBindings {
		for _, key := range binding.keys {
			if inpututil.IsKeyJustPressed(key) {
				commands = append(commands, binding.command)
				break
			}
		}
	}
	return commands
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle touch and gamepad inputs.
func IsPositiveJustPressed() bool {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonCenterRight) {
				return true
			}
		} else {
			// The button 0 might not be the A button.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
		}
	}
	return false
}
