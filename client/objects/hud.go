package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tetris/client/fonts"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const hudLineHeight = 28

// HUDObject draws the score panel.
type HUDObject struct {
	*BaseObject

	stateStore state.SnapshotStore
	x, y       int
}

func NewHUDObject(id string, stateStore state.SnapshotStore, x, y int) *HUDObject {
	return &HUDObject{
		BaseObject: NewBaseObject(id),
		stateStore: stateStore,
		x:          x,
		y:          y,
	}
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	snapshot := o.stateStore.Get()
	if snapshot == nil {
		return
	}

	lines := []string{
		fmt.Sprintf("Score  %d", snapshot.Score),
		fmt.Sprintf("High   %d", snapshot.HighScore),
		fmt.Sprintf("Level  %d", snapshot.Level),
		fmt.Sprintf("Lines  %d", snapshot.Lines),
	}
	for i, line := range lines {
		text.Draw(screen, line, fonts.TTFSmallFont, o.x, o.y+i*hudLineHeight, color.White)
	}
}
