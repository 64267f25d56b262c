package game

import (
	"testing"

	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every cell of row y except the listed columns.
func fillRow(b *Board, y int, kind types.PieceKind, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.SetCell(x, y, kind)
		}
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(10, 20)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	cells := b.Cells()
	require.Len(t, cells, 20)
	for _, row := range cells {
		require.Len(t, row, 10)
		for _, cell := range row {
			assert.Equal(t, types.PieceKindNone, cell)
		}
	}
}

func TestBoard_Occupied(t *testing.T) {
	b := NewBoard(10, 20)
	b.SetCell(4, 10, types.PieceKindT)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "empty cell", x: 0, y: 0, want: false},
		{name: "locked cell", x: 4, y: 10, want: true},
		{name: "left of board", x: -1, y: 5, want: true},
		{name: "right of board", x: 10, y: 5, want: true},
		{name: "below board", x: 3, y: 20, want: true},
		{name: "above board", x: 3, y: -1, want: false},
		{name: "above and outside", x: -1, y: -1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Occupied(tt.x, tt.y))
		})
	}
}

func TestBoard_IsValidPlacement(t *testing.T) {
	b := NewBoard(10, 20)
	b.SetCell(5, 19, types.PieceKindO)

	o := types.ParseShape("##", "##")
	i := types.ParseShape("####")
	tee := types.ParseShape(".#.", "###")

	tests := []struct {
		name  string
		shape types.Shape
		pos   types.Position
		want  bool
	}{
		{name: "top left corner", shape: o, pos: types.Position{X: 0, Y: 0}, want: true},
		{name: "bottom right corner", shape: o, pos: types.Position{X: 8, Y: 18}, want: true},
		{name: "past left wall", shape: o, pos: types.Position{X: -1, Y: 0}, want: false},
		{name: "past right wall", shape: i, pos: types.Position{X: 7, Y: 0}, want: false},
		{name: "flush with right wall", shape: i, pos: types.Position{X: 6, Y: 0}, want: true},
		{name: "through the floor", shape: o, pos: types.Position{X: 0, Y: 19}, want: false},
		{name: "partly above the top", shape: o, pos: types.Position{X: 0, Y: -1}, want: true},
		{name: "overlaps locked cell", shape: o, pos: types.Position{X: 4, Y: 18}, want: false},
		{name: "bottom row over locked cell", shape: tee, pos: types.Position{X: 5, Y: 18}, want: false},
		{name: "empty corner over locked cell", shape: types.ParseShape("#.", "#."), pos: types.Position{X: 4, Y: 18}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsValidPlacement(tt.shape, tt.pos))
		})
	}
}

func TestBoard_Lock(t *testing.T) {
	b := NewBoard(10, 20)
	b.Lock(types.ParseShape(".#.", "###"), types.Position{X: 3, Y: 18}, types.PieceKindT)

	assert.Equal(t, types.PieceKindNone, b.Cell(3, 18))
	assert.Equal(t, types.PieceKindT, b.Cell(4, 18))
	assert.Equal(t, types.PieceKindNone, b.Cell(5, 18))
	for x := 3; x <= 5; x++ {
		assert.Equal(t, types.PieceKindT, b.Cell(x, 19))
	}
}

func TestBoard_LockAboveTop(t *testing.T) {
	b := NewBoard(4, 4)
	b.Lock(types.ParseShape("##", "##"), types.Position{X: 0, Y: -1}, types.PieceKindO)

	assert.Equal(t, types.PieceKindO, b.Cell(0, 0))
	assert.Equal(t, types.PieceKindO, b.Cell(1, 0))
	assert.Len(t, b.Cells(), 4)
}

func TestBoard_CellsIsCopy(t *testing.T) {
	b := NewBoard(4, 4)
	cells := b.Cells()
	cells[0][0] = types.PieceKindZ
	assert.Equal(t, types.PieceKindNone, b.Cell(0, 0))
}

func TestBoard_ClearLines(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *Board)
		want   int
		expect func(t *testing.T, b *Board)
	}{
		{
			name:  "no full rows",
			setup: func(b *Board) { fillRow(b, 19, types.PieceKindI, 0) },
			want:  0,
			expect: func(t *testing.T, b *Board) {
				assert.Equal(t, types.PieceKindNone, b.Cell(0, 19))
				assert.Equal(t, types.PieceKindI, b.Cell(1, 19))
			},
		},
		{
			name: "bottom row full",
			setup: func(b *Board) {
				fillRow(b, 19, types.PieceKindI)
				b.SetCell(2, 18, types.PieceKindT)
			},
			want: 1,
			expect: func(t *testing.T, b *Board) {
				for x := 0; x < b.Width(); x++ {
					if x == 2 {
						assert.Equal(t, types.PieceKindT, b.Cell(x, 19))
						continue
					}
					assert.Equal(t, types.PieceKindNone, b.Cell(x, 19))
				}
				assert.Equal(t, types.PieceKindNone, b.Cell(2, 18))
			},
		},
		{
			name: "non adjacent rows",
			setup: func(b *Board) {
				fillRow(b, 19, types.PieceKindI)
				fillRow(b, 18, types.PieceKindS, 4)
				fillRow(b, 17, types.PieceKindZ)
				b.SetCell(7, 16, types.PieceKindL)
			},
			want: 2,
			expect: func(t *testing.T, b *Board) {
				// the partial row drops two rows, the row above it drops one
				assert.Equal(t, types.PieceKindNone, b.Cell(4, 19))
				assert.Equal(t, types.PieceKindS, b.Cell(0, 19))
				assert.Equal(t, types.PieceKindL, b.Cell(7, 18))
				assert.Equal(t, types.PieceKindNone, b.Cell(7, 16))
			},
		},
		{
			name: "four rows",
			setup: func(b *Board) {
				for y := 16; y < 20; y++ {
					fillRow(b, y, types.PieceKindI)
				}
			},
			want: 4,
			expect: func(t *testing.T, b *Board) {
				assert.Empty(t, b.FullRows())
				for y := 0; y < b.Height(); y++ {
					for x := 0; x < b.Width(); x++ {
						assert.Equal(t, types.PieceKindNone, b.Cell(x, y))
					}
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(10, 20)
			tt.setup(b)

			assert.Equal(t, tt.want, b.ClearLines())
			assert.Len(t, b.Cells(), 20)
			for _, row := range b.Cells() {
				assert.Len(t, row, 10)
			}
			tt.expect(t, b)

			// nothing left to clear
			assert.Equal(t, 0, b.ClearLines())
		})
	}
}

func TestBoard_FullRows(t *testing.T) {
	b := NewBoard(4, 6)
	fillRow(b, 1, types.PieceKindO)
	fillRow(b, 3, types.PieceKindO, 2)
	fillRow(b, 5, types.PieceKindO)
	assert.Equal(t, []int{1, 5}, b.FullRows())
}

func TestBoard_Clone(t *testing.T) {
	b := NewBoard(4, 4)
	b.SetCell(1, 1, types.PieceKindJ)
	clone := b.Clone()
	clone.SetCell(1, 1, types.PieceKindNone)
	assert.Equal(t, types.PieceKindJ, b.Cell(1, 1))
}

func TestBoard_bottomRowScenario(t *testing.T) {
	b := NewBoard(10, 20)
	pieces := []struct {
		kind  types.PieceKind
		shape types.Shape
		pos   types.Position
	}{
		{kind: types.PieceKindI, shape: types.ParseShape("####"), pos: types.Position{X: 0, Y: 19}},
		{kind: types.PieceKindI, shape: types.ParseShape("#", "#", "#", "#"), pos: types.Position{X: 4, Y: 16}},
		{kind: types.PieceKindO, shape: types.ParseShape("##", "##"), pos: types.Position{X: 5, Y: 18}},
		{kind: types.PieceKindJ, shape: types.ParseShape("#..", "###"), pos: types.Position{X: 7, Y: 18}},
	}
	for _, p := range pieces {
		require.True(t, b.IsValidPlacement(p.shape, p.pos), p.kind.String())
		b.Lock(p.shape, p.pos, p.kind)
	}
	before := b.Cells()

	assert.Equal(t, 1, b.ClearLines())

	// everything above row 19 moved down one row
	after := b.Cells()
	for y := 1; y < 20; y++ {
		assert.Equal(t, before[y-1], after[y], "row %d", y)
	}
	assert.Equal(t, make([]types.PieceKind, 10), after[0])
}
