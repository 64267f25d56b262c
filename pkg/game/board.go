package game

import (
	"github.com/cbodonnell/tetris/pkg/game/types"
)

// Board is the grid of locked cells. Row 0 is the top of the board.
// It always holds exactly height rows of width cells.
type Board struct {
	width  int
	height int
	cells  [][]types.PieceKind
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	cells := make([][]types.PieceKind, height)
	for y := range cells {
		cells[y] = make([]types.PieceKind, width)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Cell returns the kind locked at x, y, or PieceKindNone outside the grid.
func (b *Board) Cell(x, y int) types.PieceKind {
	if !b.inGrid(x, y) {
		return types.PieceKindNone
	}
	return b.cells[y][x]
}

// SetCell writes a single cell. Writes outside the grid are ignored.
func (b *Board) SetCell(x, y int, kind types.PieceKind) {
	if !b.inGrid(x, y) {
		return
	}
	b.cells[y][x] = kind
}

// Occupied reports whether x, y is blocked. Columns outside the board and
// rows at or below the bottom edge are blocked. Rows above the top edge are
// never blocked.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x] != types.PieceKindNone
}

// Lock writes the occupied cells of shape at pos into the board. The
// placement must have been validated; cells above the top edge are dropped.
func (b *Board) Lock(shape types.Shape, pos types.Position, kind types.PieceKind) {
	for row := range shape {
		for col, filled := range shape[row] {
			if !filled {
				continue
			}
			b.SetCell(pos.X+col, pos.Y+row, kind)
		}
	}
}

// Cells returns a copy of the grid indexed as [row][col].
func (b *Board) Cells() [][]types.PieceKind {
	cells := make([][]types.PieceKind, b.height)
	for y, row := range b.cells {
		cells[y] = append([]types.PieceKind(nil), row...)
	}
	return cells
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  b.Cells(),
	}
}

func (b *Board) inGrid(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
