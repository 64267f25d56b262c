package game

import "github.com/cbodonnell/tetris/pkg/game/types"

// ActivePiece is the falling piece: a shape matrix and its offset on the board.
type ActivePiece struct {
	Kind     types.PieceKind
	Shape    types.Shape
	Position types.Position
}

// RotateClockwise returns shape turned 90 degrees clockwise. A shape of R rows
// and C columns becomes C rows and R columns where rotated[y][x] is
// shape[R-1-x][y]. The input is never modified.
func RotateClockwise(shape types.Shape) types.Shape {
	rows, cols := shape.Rows(), shape.Cols()
	rotated := make(types.Shape, cols)
	for y := range rotated {
		rotated[y] = make([]bool, rows)
		for x := range rotated[y] {
			rotated[y][x] = shape[rows-1-x][y]
		}
	}
	return rotated
}

// Rotate turns the piece clockwise in place when the rotated shape fits at
// the current offset. There is no kick search.
func (p *ActivePiece) Rotate(board *Board) bool {
	rotated := RotateClockwise(p.Shape)
	if !board.IsValidPlacement(rotated, p.Position) {
		return false
	}
	p.Shape = rotated
	return true
}

// Move translates the piece by dx, dy when the new offset is valid.
func (p *ActivePiece) Move(board *Board, dx, dy int) bool {
	next := p.Position.Add(dx, dy)
	if !board.IsValidPlacement(p.Shape, next) {
		return false
	}
	p.Position = next
	return true
}

// Fits reports whether the piece is validly placed on board.
func (p *ActivePiece) Fits(board *Board) bool {
	return board.IsValidPlacement(p.Shape, p.Position)
}

// State returns a read-only copy for renderers.
func (p *ActivePiece) State() *types.PieceState {
	return &types.PieceState{
		Kind:     p.Kind,
		Shape:    p.Shape.Clone(),
		Position: p.Position,
	}
}
