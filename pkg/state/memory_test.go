package state

import (
	"testing"

	gametypes "github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySnapshotStore(t *testing.T) {
	store := NewInMemorySnapshotStore()
	assert.Nil(t, store.Get())
	assert.Error(t, store.Set(nil))

	snapshot := &gametypes.Snapshot{
		Phase:  gametypes.PhasePlaying,
		Width:  2,
		Height: 2,
		Cells: [][]gametypes.PieceKind{
			{gametypes.PieceKindNone, gametypes.PieceKindNone},
			{gametypes.PieceKindT, gametypes.PieceKindNone},
		},
		Piece: &gametypes.PieceState{
			Kind:  gametypes.PieceKindO,
			Shape: gametypes.ParseShape("#"),
		},
		Score: 100,
	}
	require.NoError(t, store.Set(snapshot))

	// mutating the original must not leak into the store
	snapshot.Cells[1][0] = gametypes.PieceKindNone
	snapshot.Piece.Position.X = 1

	got := store.Get()
	require.NotNil(t, got)
	assert.Equal(t, gametypes.PieceKindT, got.Cells[1][0])
	assert.Equal(t, 0, got.Piece.Position.X)
	assert.Equal(t, 100, got.Score)

	// neither may mutating a returned copy
	got.Cells[1][0] = gametypes.PieceKindNone
	assert.Equal(t, gametypes.PieceKindT, store.Get().Cells[1][0])
}
