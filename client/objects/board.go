package objects

import (
	"image/color"

	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	boardBackground = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	boardGrid       = color.RGBA{R: 36, G: 36, B: 48, A: 255}
	boardBorder     = color.RGBA{R: 170, G: 170, B: 180, A: 255}
)

// BoardObject draws the locked cells and the falling piece of the latest
// snapshot.
type BoardObject struct {
	*BaseObject

	stateStore state.SnapshotStore
	x, y       float32
	cellSize   float32
}

func NewBoardObject(id string, stateStore state.SnapshotStore, x, y, cellSize float32) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id),
		stateStore: stateStore,
		x:          x,
		y:          y,
		cellSize:   cellSize,
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	snapshot := o.stateStore.Get()
	if snapshot == nil {
		return
	}

	w := float32(snapshot.Width) * o.cellSize
	h := float32(snapshot.Height) * o.cellSize
	vector.DrawFilledRect(screen, o.x, o.y, w, h, boardBackground, false)

	for y := 0; y < snapshot.Height; y++ {
		for x := 0; x < snapshot.Width; x++ {
			cx := o.x + float32(x)*o.cellSize
			cy := o.y + float32(y)*o.cellSize
			kind := snapshot.Cell(x, y)
			if kind == types.PieceKindNone {
				vector.StrokeRect(screen, cx, cy, o.cellSize, o.cellSize, 1, boardGrid, false)
				continue
			}
			vector.DrawFilledRect(screen, cx+1, cy+1, o.cellSize-2, o.cellSize-2, game.PieceColor(kind), false)
		}
	}

	vector.StrokeRect(screen, o.x-1, o.y-1, w+2, h+2, 2, boardBorder, false)
}
