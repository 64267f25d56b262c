package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/tetris/pkg/game/constants"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/state"
)

// GameManager runs the frame loop: drain pending commands, apply one tick,
// publish a snapshot. It owns the current game instance.
type GameManager struct {
	commandQueue  queue.Queue[types.Command]
	stateStore    state.SnapshotStore
	gameOptions   NewGameOptions
	game          *Game
	frameInterval time.Duration
	logger        *log.Logger
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	CommandQueue queue.Queue[types.Command]
	StateStore   state.SnapshotStore
	// GameOptions are used for every game instance the manager creates.
	GameOptions NewGameOptions
	// FrameInterval is the ticker period used by Run.
	FrameInterval time.Duration
	// AutoStart starts the first game right away instead of waiting
	// for a Start command.
	AutoStart bool
}

func NewGameManager(opts NewGameManagerOptions) (*GameManager, error) {
	frameInterval := opts.FrameInterval
	if frameInterval <= 0 {
		frameInterval = constants.FrameInterval
	}
	logger := opts.GameOptions.Logger
	if logger == nil {
		logger = log.DefaultLogger().Named("manager")
	}

	g, err := NewGame(opts.GameOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	gm := &GameManager{
		commandQueue:  opts.CommandQueue,
		stateStore:    opts.StateStore,
		gameOptions:   opts.GameOptions,
		game:          g,
		frameInterval: frameInterval,
		logger:        logger,
	}

	if opts.AutoStart {
		if err := gm.game.Start(); err != nil {
			return nil, fmt.Errorf("failed to start game: %v", err)
		}
	}
	gm.publish()

	return gm, nil
}

// Run drives frames from a ticker until the context is done or a quit
// command is processed. Elapsed time is measured on the monotonic clock.
func (gm *GameManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(gm.frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			gm.game.Quit()
			return nil
		case t := <-ticker.C:
			elapsed := t.Sub(last)
			last = t
			err := gm.Frame(elapsed)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				gm.logger.Error("Failed to run frame: %v", err)
			}
		}
	}
}

// Frame runs one iteration of the frame loop. It returns ErrQuit once a quit
// command was drained, after the high score has been handed to the store.
func (gm *GameManager) Frame(elapsed time.Duration) error {
	if quit := gm.processCommands(); quit {
		gm.game.Quit()
		gm.publish()
		return ErrQuit
	}

	if err := gm.game.Tick(elapsed); err != nil {
		return fmt.Errorf("failed to tick game: %w", err)
	}
	gm.publish()

	return nil
}

// processCommands applies all pending commands in order. Commands queued
// after a quit are dropped.
func (gm *GameManager) processCommands() bool {
	if gm.commandQueue == nil {
		return false
	}
	for _, cmd := range gm.commandQueue.ReadAllMessages() {
		switch cmd {
		case types.CommandQuit:
			gm.logger.Info("Quit requested")
			return true
		case types.CommandStart:
			if err := gm.startGame(); err != nil {
				gm.logger.Error("Failed to start game: %v", err)
			}
		default:
			if err := gm.game.Command(cmd); err != nil {
				gm.logger.Error("Failed to process command: %v", err)
			}
		}
	}
	return false
}

// startGame starts the current game if it has not started yet, or replaces
// a finished game with a fresh instance that keeps the high score.
func (gm *GameManager) startGame() error {
	switch gm.game.Phase() {
	case types.PhaseNotStarted:
		return gm.game.Start()
	case types.PhaseGameOver:
		opts := gm.gameOptions
		opts.HighScore = max(opts.HighScore, gm.game.HighScore())
		g, err := NewGame(opts)
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}
		gm.game = g
		return gm.game.Start()
	default:
		gm.logger.Debug("Ignoring start while %s", gm.game.Phase())
		return nil
	}
}

func (gm *GameManager) publish() {
	if gm.stateStore == nil {
		return
	}
	if err := gm.stateStore.Set(gm.game.Snapshot()); err != nil {
		gm.logger.Error("Failed to publish snapshot: %v", err)
	}
}

// Game returns the current game instance.
func (gm *GameManager) Game() *Game {
	return gm.game
}
