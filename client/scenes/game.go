package scenes

import (
	"github.com/cbodonnell/tetris/client/objects"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/state"
)

const (
	// CellSize is the side of one board cell in pixels.
	CellSize = 22
	boardX   = 40
	boardY   = 20
	hudGap   = 40
)

// BoardRight returns the x coordinate of the right edge of the board.
func BoardRight(boardWidth int) int {
	return boardX + boardWidth*CellSize
}

// BoardBottom returns the y coordinate of the bottom edge of the board.
func BoardBottom(boardHeight int) int {
	return boardY + boardHeight*CellSize
}

type GameScene struct {
	*BaseScene

	stateStore state.SnapshotStore
}

var _ Scene = &GameScene{}

// NewGameScene lays out the board, the score panel to its right and the
// pause and game over overlays.
func NewGameScene(stateStore state.SnapshotStore, boardWidth int) (Scene, error) {
	s := &GameScene{
		stateStore: stateStore,
	}

	hudX := BoardRight(boardWidth) + hudGap
	root := objects.NewBaseObject("game-root",
		objects.NewBoardObject("board", stateStore, boardX, boardY, CellSize),
		objects.NewHUDObject("hud", stateStore, hudX, boardY+24),
		objects.NewTextOverlayObject("overlay", s.overlayMessage),
	)
	s.BaseScene = NewBaseScene(root)

	return s, nil
}

func (s *GameScene) overlayMessage() string {
	snapshot := s.stateStore.Get()
	if snapshot == nil {
		return ""
	}
	switch snapshot.Phase {
	case types.PhasePaused:
		return "PAUSED\nP to resume"
	case types.PhaseGameOver:
		return "GAME OVER\nEnter to play again\nEsc to quit"
	default:
		return ""
	}
}
