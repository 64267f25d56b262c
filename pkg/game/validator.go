package game

import "github.com/cbodonnell/tetris/pkg/game/types"

// IsValidPlacement reports whether every occupied cell of shape, offset by
// pos, lands inside the board columns, above the bottom edge and on an empty
// cell. Cells above the top edge are accepted so pieces can enter from above.
func (b *Board) IsValidPlacement(shape types.Shape, pos types.Position) bool {
	for row := range shape {
		for col, filled := range shape[row] {
			if !filled {
				continue
			}
			if b.Occupied(pos.X+col, pos.Y+row) {
				return false
			}
		}
	}
	return true
}
