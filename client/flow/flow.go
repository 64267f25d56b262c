package flow

import "github.com/cbodonnell/tetris/pkg/game/types"

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	}
	return "Unknown"
}

// ModeForPhase returns the mode that shows a game in the given phase. The
// menu is shown until the first game starts; pause and game over are
// overlays on the play mode.
func ModeForPhase(phase types.Phase) GameMode {
	if phase == types.PhaseNotStarted {
		return GameModeMenu
	}
	return GameModePlay
}
