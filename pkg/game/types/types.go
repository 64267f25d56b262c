package types

import "strings"

// PieceKind identifies a catalog piece. A board cell holds the kind of the
// piece that was locked there, which doubles as the cell's color identifier.
type PieceKind uint8

const (
	// PieceKindNone marks an empty cell.
	PieceKindNone PieceKind = iota
	PieceKindI
	PieceKindO
	PieceKindT
	PieceKindS
	PieceKindZ
	PieceKindJ
	PieceKindL
)

func (k PieceKind) String() string {
	switch k {
	case PieceKindNone:
		return "None"
	case PieceKindI:
		return "I"
	case PieceKindO:
		return "O"
	case PieceKindT:
		return "T"
	case PieceKindS:
		return "S"
	case PieceKindZ:
		return "Z"
	case PieceKindJ:
		return "J"
	case PieceKindL:
		return "L"
	default:
		return "Unknown"
	}
}

// Shape is a rectangular occupancy matrix indexed as shape[row][col].
type Shape [][]bool

// ParseShape builds a shape from rows of '#' (occupied) and '.' (empty).
// It panics on ragged input, it is meant for static tables and tests.
func ParseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			panic("ragged shape row: " + row)
		}
		shape[y] = make([]bool, len(row))
		for x, c := range row {
			shape[y][x] = c == '#'
		}
	}
	return shape
}

// Rows returns the height of the bounding box.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the width of the bounding box.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	for y, row := range s {
		clone[y] = append([]bool(nil), row...)
	}
	return clone
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// CellCount returns the number of occupied cells.
func (s Shape) CellCount() int {
	count := 0
	for _, row := range s {
		for _, cell := range row {
			if cell {
				count++
			}
		}
	}
	return count
}

func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			if cell {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Position is a grid offset. X grows to the right, Y grows downwards and
// row 0 is the top of the board.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position translated by dx, dy.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
