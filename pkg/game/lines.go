package game

import "github.com/cbodonnell/tetris/pkg/game/types"

// FullRows returns the indices of every fully occupied row, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y, row := range b.cells {
		full := true
		for _, cell := range row {
			if cell == types.PieceKindNone {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes every full row and shifts the rows above it down,
// inserting empty rows at the top. Full rows are found on the board as it was
// before the clear. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	full := b.FullRows()
	if len(full) == 0 {
		return 0
	}

	cleared := make(map[int]bool, len(full))
	for _, y := range full {
		cleared[y] = true
	}

	cells := make([][]types.PieceKind, 0, b.height)
	for range full {
		cells = append(cells, make([]types.PieceKind, b.width))
	}
	for y, row := range b.cells {
		if cleared[y] {
			continue
		}
		cells = append(cells, row)
	}
	b.cells = cells

	return len(full)
}
