package game

import (
	"context"
	"testing"
	"time"

	mocks "github.com/cbodonnell/tetris/mocks/github.com/cbodonnell/tetris/pkg/game"
	queuemocks "github.com/cbodonnell/tetris/mocks/github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, commandQueue queue.Queue[types.Command], store ScoreStore, autoStart bool) (*GameManager, *state.InMemorySnapshotStore) {
	stateStore := state.NewInMemorySnapshotStore()
	gm, err := NewGameManager(NewGameManagerOptions{
		CommandQueue: commandQueue,
		StateStore:   stateStore,
		GameOptions: NewGameOptions{
			Rand:  NewRand(3),
			Store: store,
		},
		FrameInterval: time.Millisecond,
		AutoStart:     autoStart,
	})
	require.NoError(t, err)
	return gm, stateStore
}

func TestNewGameManager(t *testing.T) {
	gm, stateStore := newTestManager(t, nil, nil, false)
	snapshot := stateStore.Get()
	require.NotNil(t, snapshot)
	assert.Equal(t, types.PhaseNotStarted, snapshot.Phase)
	assert.Equal(t, types.PhaseNotStarted, gm.Game().Phase())

	gm, stateStore = newTestManager(t, nil, nil, true)
	assert.Equal(t, types.PhasePlaying, stateStore.Get().Phase)
	assert.Equal(t, types.PhasePlaying, gm.Game().Phase())
}

func TestGameManager_Frame(t *testing.T) {
	commandQueue := queuemocks.NewQueue[types.Command](t)
	commandQueue.EXPECT().ReadAllMessages().Return([]types.Command{types.CommandStart}).Once()
	commandQueue.EXPECT().ReadAllMessages().Return([]types.Command{types.CommandTogglePause}).Once()
	commandQueue.EXPECT().ReadAllMessages().Return(nil).Once()

	gm, stateStore := newTestManager(t, commandQueue, nil, false)

	require.NoError(t, gm.Frame(0))
	assert.Equal(t, types.PhasePlaying, stateStore.Get().Phase)
	assert.NotNil(t, stateStore.Get().Piece)

	require.NoError(t, gm.Frame(0))
	assert.Equal(t, types.PhasePaused, stateStore.Get().Phase)

	require.NoError(t, gm.Frame(time.Second))
	assert.Equal(t, types.PhasePaused, stateStore.Get().Phase)
}

func TestGameManager_FrameInvalidCommand(t *testing.T) {
	commandQueue := queue.NewInMemoryQueue[types.Command](8)
	gm, stateStore := newTestManager(t, commandQueue, nil, true)
	x := gm.Game().piece.Position.X

	// an unknown command is logged and the ones after it still apply
	require.NoError(t, commandQueue.Enqueue(types.Command(99)))
	require.NoError(t, commandQueue.Enqueue(types.CommandLeft))
	require.NoError(t, gm.Frame(0))
	assert.Equal(t, x-1, stateStore.Get().Piece.Position.X)
}

func TestGameManager_FrameNegativeElapsed(t *testing.T) {
	gm, _ := newTestManager(t, nil, nil, true)
	assert.ErrorIs(t, gm.Frame(-time.Second), ErrNegativeElapsed)
}

func TestGameManager_Quit(t *testing.T) {
	store := mocks.NewScoreStore(t)
	store.EXPECT().LoadHighScore().Return(400, nil).Once()
	store.EXPECT().SaveHighScore(400).Return(nil).Once()

	commandQueue := queue.NewInMemoryQueue[types.Command](8)
	gm, _ := newTestManager(t, commandQueue, store, true)
	before := gm.Game().piece.Position

	require.NoError(t, commandQueue.Enqueue(types.CommandQuit))
	require.NoError(t, commandQueue.Enqueue(types.CommandLeft))
	assert.ErrorIs(t, gm.Frame(0), ErrQuit)

	// commands after the quit are dropped
	assert.Equal(t, before, gm.Game().piece.Position)
	assert.Equal(t, 0, commandQueue.Size())
}

func TestGameManager_Restart(t *testing.T) {
	commandQueue := queue.NewInMemoryQueue[types.Command](8)
	gm, stateStore := newTestManager(t, commandQueue, nil, true)

	first := gm.Game()
	_, err := first.scorer.RegisterClear(4)
	require.NoError(t, err)
	fillRow(first.board, 0, types.PieceKindL, 0)
	placeO(first, 0, 18)
	require.NoError(t, gm.Frame(time.Second))
	require.Equal(t, types.PhaseGameOver, stateStore.Get().Phase)

	require.NoError(t, commandQueue.Enqueue(types.CommandStart))
	require.NoError(t, gm.Frame(0))
	second := gm.Game()
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, types.PhasePlaying, second.Phase())
	assert.Equal(t, 0, second.Score())
	assert.Equal(t, 800, second.HighScore())

	// start during a game is ignored
	require.NoError(t, commandQueue.Enqueue(types.CommandStart))
	require.NoError(t, gm.Frame(0))
	assert.Equal(t, second.ID(), gm.Game().ID())
}

func TestGameManager_Run(t *testing.T) {
	commandQueue := queue.NewInMemoryQueue[types.Command](8)
	gm, stateStore := newTestManager(t, commandQueue, nil, false)
	require.NoError(t, commandQueue.Enqueue(types.CommandStart))

	done := make(chan error, 1)
	go func() {
		done <- gm.Run(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return stateStore.Get().Phase == types.PhasePlaying
	}, time.Second, time.Millisecond)

	require.NoError(t, commandQueue.Enqueue(types.CommandQuit))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after quit")
	}
}

func TestGameManager_RunContextDone(t *testing.T) {
	gm, _ := newTestManager(t, queue.NewInMemoryQueue[types.Command](8), nil, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, gm.Run(ctx))
}
