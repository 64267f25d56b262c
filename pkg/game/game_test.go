package game

import (
	"errors"
	"testing"
	"time"

	mocks "github.com/cbodonnell/tetris/mocks/github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/config"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.UnixMilli(1_700_000_000_000)

func newTestGame(t *testing.T, store ScoreStore, highScore int) *Game {
	g, err := NewGame(NewGameOptions{
		Config:    config.Default(),
		Rand:      NewRand(1),
		Store:     store,
		HighScore: highScore,
		Now:       func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return g
}

func startTestGame(t *testing.T, store ScoreStore) *Game {
	g := newTestGame(t, store, 0)
	require.NoError(t, g.Start())
	return g
}

func placeO(g *Game, x, y int) {
	g.piece = &ActivePiece{
		Kind:     types.PieceKindO,
		Shape:    types.ParseShape("##", "##"),
		Position: types.Position{X: x, Y: y},
	}
}

func TestGame_Start(t *testing.T) {
	store := mocks.NewScoreStore(t)
	store.EXPECT().LoadHighScore().Return(250, nil).Once()

	g := newTestGame(t, store, 0)
	assert.Equal(t, types.PhaseNotStarted, g.Phase())
	assert.Nil(t, g.Snapshot().Piece)

	require.NoError(t, g.Start())
	assert.Equal(t, types.PhasePlaying, g.Phase())
	assert.Equal(t, 250, g.HighScore())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, 500*time.Millisecond, g.GravityInterval())

	snapshot := g.Snapshot()
	require.NotNil(t, snapshot.Piece)
	assert.Equal(t, 0, snapshot.Piece.Position.Y)
	assert.Equal(t, g.ID(), snapshot.SessionID)
	assert.Equal(t, testNow.UnixMilli(), snapshot.Timestamp)

	assert.ErrorIs(t, g.Start(), ErrAlreadyStarted)
}

func TestGame_StartLoadError(t *testing.T) {
	store := mocks.NewScoreStore(t)
	store.EXPECT().LoadHighScore().Return(0, errors.New("disk on fire")).Once()

	g := newTestGame(t, store, 120)
	require.NoError(t, g.Start())
	assert.Equal(t, types.PhasePlaying, g.Phase())
	assert.Equal(t, 120, g.HighScore())
}

func TestNewGame_invalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *config.Config)
	}{
		{name: "short score table", modify: func(cfg *config.Config) { cfg.Scoring.Table = []int{0} }},
		{name: "zero lines per level", modify: func(cfg *config.Config) { cfg.Scoring.LinesPerLevel = 0 }},
		{name: "narrow board", modify: func(cfg *config.Config) { cfg.Board.Width = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(cfg)

			g, err := NewGame(NewGameOptions{Config: cfg})
			assert.Error(t, err)
			assert.Nil(t, g)

			gm, err := NewGameManager(NewGameManagerOptions{GameOptions: NewGameOptions{Config: cfg}})
			assert.Error(t, err)
			assert.Nil(t, gm)
		})
	}
}

func TestGame_LockWithUnscorableClear(t *testing.T) {
	g := startTestGame(t, nil)
	rules := scoreRules(config.Default())
	rules.Table = []int{0}
	g.scorer = NewScorer(rules, 0)

	fillRow(g.board, 19, types.PieceKindI, 0, 1)
	placeO(g, 0, 18)

	assert.ErrorIs(t, g.Tick(500*time.Millisecond), ErrInvalidClear)

	// the lock went through and a new piece is falling
	assert.Equal(t, types.PhasePlaying, g.Phase())
	require.NotNil(t, g.piece)
	assert.Equal(t, 1, g.pieces)
	assert.Equal(t, types.PieceKindO, g.board.Cell(0, 19))
	require.NoError(t, g.Tick(500*time.Millisecond))
	require.NoError(t, g.Command(types.CommandLeft))
}

func TestGame_Tick(t *testing.T) {
	g := newTestGame(t, nil, 0)
	require.NoError(t, g.Tick(10*time.Second))
	assert.Equal(t, types.PhaseNotStarted, g.Phase())

	require.NoError(t, g.Start())
	y := g.piece.Position.Y

	require.NoError(t, g.Tick(499*time.Millisecond))
	assert.Equal(t, y, g.piece.Position.Y)

	require.NoError(t, g.Tick(time.Millisecond))
	assert.Equal(t, y+1, g.piece.Position.Y)

	// the accumulator resets after a step
	require.NoError(t, g.Tick(499*time.Millisecond))
	assert.Equal(t, y+1, g.piece.Position.Y)

	assert.ErrorIs(t, g.Tick(-time.Millisecond), ErrNegativeElapsed)
	assert.Equal(t, y+1, g.piece.Position.Y)
}

func TestGame_Pause(t *testing.T) {
	g := startTestGame(t, nil)
	placeO(g, 4, 0)

	require.NoError(t, g.Command(types.CommandTogglePause))
	assert.Equal(t, types.PhasePaused, g.Phase())

	require.NoError(t, g.Tick(10*time.Second))
	require.NoError(t, g.Command(types.CommandLeft))
	require.NoError(t, g.Command(types.CommandSoftDrop))
	assert.Equal(t, types.Position{X: 4, Y: 0}, g.piece.Position)
	assert.Equal(t, types.PhasePaused, g.Snapshot().Phase)

	require.NoError(t, g.Command(types.CommandTogglePause))
	assert.Equal(t, types.PhasePlaying, g.Phase())

	// paused time does not count towards gravity
	require.NoError(t, g.Tick(499*time.Millisecond))
	assert.Equal(t, types.Position{X: 4, Y: 0}, g.piece.Position)

	require.NoError(t, g.Tick(500*time.Millisecond))
	assert.Equal(t, types.Position{X: 4, Y: 1}, g.piece.Position)
}

func TestGame_Command(t *testing.T) {
	tests := []struct {
		name    string
		cmd     types.Command
		want    types.Position
		wantErr error
	}{
		{name: "left", cmd: types.CommandLeft, want: types.Position{X: 3, Y: 5}},
		{name: "right", cmd: types.CommandRight, want: types.Position{X: 5, Y: 5}},
		{name: "soft drop", cmd: types.CommandSoftDrop, want: types.Position{X: 4, Y: 6}},
		{name: "rotate", cmd: types.CommandRotate, want: types.Position{X: 4, Y: 5}},
		{name: "start is not a game command", cmd: types.CommandStart, want: types.Position{X: 4, Y: 5}, wantErr: ErrInvalidCommand},
		{name: "none", cmd: types.CommandNone, want: types.Position{X: 4, Y: 5}, wantErr: ErrInvalidCommand},
		{name: "unknown", cmd: types.Command(200), want: types.Position{X: 4, Y: 5}, wantErr: ErrInvalidCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startTestGame(t, nil)
			placeO(g, 4, 5)

			err := g.Command(tt.cmd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, g.piece.Position)
		})
	}
}

func TestGame_CommandBlocked(t *testing.T) {
	g := startTestGame(t, nil)
	placeO(g, 0, 5)
	require.NoError(t, g.Command(types.CommandLeft))
	assert.Equal(t, types.Position{X: 0, Y: 5}, g.piece.Position)

	g.board.SetCell(2, 5, types.PieceKindZ)
	require.NoError(t, g.Command(types.CommandRight))
	assert.Equal(t, types.Position{X: 0, Y: 5}, g.piece.Position)
}

func TestGame_SoftDropNeverLocks(t *testing.T) {
	g := startTestGame(t, nil)
	placeO(g, 0, 18)

	for i := 0; i < 3; i++ {
		require.NoError(t, g.Command(types.CommandSoftDrop))
	}
	assert.Equal(t, types.Position{X: 0, Y: 18}, g.piece.Position)
	assert.Equal(t, types.PieceKindNone, g.board.Cell(0, 19))
	assert.Equal(t, 0, g.pieces)
}

func TestGame_LockAndClear(t *testing.T) {
	g := startTestGame(t, nil)
	fillRow(g.board, 18, types.PieceKindI, 0, 1)
	fillRow(g.board, 19, types.PieceKindI, 0, 1)
	g.board.SetCell(5, 17, types.PieceKindT)
	placeO(g, 0, 18)

	require.NoError(t, g.Tick(500*time.Millisecond))

	assert.Equal(t, types.PhasePlaying, g.Phase())
	assert.Equal(t, 300, g.Score())
	assert.Equal(t, 2, g.Lines())
	assert.Equal(t, 300, g.HighScore())
	assert.Equal(t, 1, g.pieces)
	// the T dropped to the bottom row and nothing else is left
	assert.Equal(t, types.PieceKindT, g.board.Cell(5, 19))
	assert.Equal(t, types.PieceKindNone, g.board.Cell(0, 19))
	assert.Equal(t, types.PieceKindNone, g.board.Cell(2, 18))
	assert.Len(t, g.board.Cells(), 20)

	require.NotNil(t, g.piece)
	assert.Equal(t, 0, g.piece.Position.Y)
}

func TestGame_LockWithoutClear(t *testing.T) {
	g := startTestGame(t, nil)
	placeO(g, 3, 18)

	require.NoError(t, g.Tick(500*time.Millisecond))
	assert.Equal(t, 0, g.Score())
	for _, x := range []int{3, 4} {
		assert.Equal(t, types.PieceKindO, g.board.Cell(x, 18))
		assert.Equal(t, types.PieceKindO, g.board.Cell(x, 19))
	}
}

func TestGame_GameOver(t *testing.T) {
	store := mocks.NewScoreStore(t)
	store.EXPECT().LoadHighScore().Return(250, nil).Once()
	store.EXPECT().SaveHighScore(250).Return(nil).Once()
	store.EXPECT().SaveResult(mock.MatchedBy(func(result *types.Result) bool {
		return result.Score == 0 &&
			result.HighScore == 250 &&
			result.Pieces == 1 &&
			result.EndedAt.Equal(testNow) &&
			result.Board != nil &&
			result.Board.Piece == nil &&
			result.Board.Phase == types.PhaseGameOver
	})).Return(nil).Once()

	g := startTestGame(t, store)
	assert.Nil(t, g.Result())

	// row 0 is blocked where pieces spawn but is not full
	fillRow(g.board, 0, types.PieceKindL, 0)
	placeO(g, 0, 18)

	require.NoError(t, g.Tick(500*time.Millisecond))
	assert.Equal(t, types.PhaseGameOver, g.Phase())
	assert.Nil(t, g.Snapshot().Piece)
	assert.Equal(t, types.PieceKindO, g.board.Cell(0, 19))

	result := g.Result()
	require.NotNil(t, result)
	assert.Equal(t, g.ID(), result.SessionID)

	// a finished game ignores everything and is not saved again
	require.NoError(t, g.Tick(10*time.Second))
	require.NoError(t, g.Command(types.CommandLeft))
	g.Quit()
	assert.Equal(t, types.PhaseGameOver, g.Phase())
}

func TestGame_SpawnBlockedByFullTopRow(t *testing.T) {
	g := startTestGame(t, nil)
	fillRow(g.board, 0, types.PieceKindZ)
	before := g.board.Cells()

	g.spawnPiece()
	assert.Equal(t, types.PhaseGameOver, g.Phase())
	assert.Nil(t, g.piece)
	assert.Equal(t, before, g.board.Cells())
}

func TestGame_GameOverStoreErrors(t *testing.T) {
	store := mocks.NewScoreStore(t)
	store.EXPECT().LoadHighScore().Return(0, nil).Once()
	store.EXPECT().SaveHighScore(mock.Anything).Return(errors.New("queue full")).Once()
	store.EXPECT().SaveResult(mock.Anything).Return(errors.New("queue full")).Once()

	g := startTestGame(t, store)
	fillRow(g.board, 0, types.PieceKindL, 0)
	placeO(g, 0, 18)

	require.NoError(t, g.Tick(500*time.Millisecond))
	assert.Equal(t, types.PhaseGameOver, g.Phase())
}

func TestGame_Quit(t *testing.T) {
	store := mocks.NewScoreStore(t)

	g := newTestGame(t, store, 0)
	// nothing to persist before the game starts
	g.Quit()

	store.EXPECT().LoadHighScore().Return(900, nil).Once()
	store.EXPECT().SaveHighScore(900).Return(nil).Twice()
	require.NoError(t, g.Start())
	g.Quit()

	require.NoError(t, g.Command(types.CommandTogglePause))
	g.Quit()
}

func TestGame_SnapshotIsCopy(t *testing.T) {
	g := startTestGame(t, nil)
	snapshot := g.Snapshot()
	snapshot.Cells[19][0] = types.PieceKindZ
	snapshot.Piece.Position.X = 100
	assert.Equal(t, types.PieceKindNone, g.board.Cell(0, 19))
	assert.NotEqual(t, 100, g.piece.Position.X)
}
