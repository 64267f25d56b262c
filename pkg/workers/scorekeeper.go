package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/cbodonnell/tetris/pkg/repositories"
	"github.com/cbodonnell/tetris/pkg/repositories/models"
)

const defaultLoadTimeout = 2 * time.Second

// ScoreKeeper connects a game to a repository. Loads go straight to the
// repository with a timeout and saves go through a SaveScoreWorker.
type ScoreKeeper struct {
	repository  repositories.Repository
	worker      *SaveScoreWorker
	loadTimeout time.Duration
}

var _ game.ScoreStore = &ScoreKeeper{}

type NewScoreKeeperOptions struct {
	Repository repositories.Repository
	Worker     *SaveScoreWorker
	// LoadTimeout bounds LoadHighScore. Defaults to 2s.
	LoadTimeout time.Duration
}

func NewScoreKeeper(opts NewScoreKeeperOptions) *ScoreKeeper {
	loadTimeout := opts.LoadTimeout
	if loadTimeout <= 0 {
		loadTimeout = defaultLoadTimeout
	}
	return &ScoreKeeper{
		repository:  opts.Repository,
		worker:      opts.Worker,
		loadTimeout: loadTimeout,
	}
}

// LoadHighScore returns 0 along with the error when the repository fails.
func (k *ScoreKeeper) LoadHighScore() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), k.loadTimeout)
	defer cancel()

	highScore, err := k.repository.LoadHighScore(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %v", err)
	}
	return highScore, nil
}

func (k *ScoreKeeper) SaveHighScore(highScore int) error {
	return k.worker.Enqueue(SaveRequest{HighScore: &highScore})
}

func (k *ScoreKeeper) SaveResult(result *types.Result) error {
	record, err := NewGameRecord(result)
	if err != nil {
		return err
	}
	return k.worker.Enqueue(SaveRequest{Record: record})
}

// Flush waits for every queued save to be persisted.
func (k *ScoreKeeper) Flush(ctx context.Context) error {
	return k.worker.Flush(ctx)
}

// NewGameRecord converts a finished game into its stored form.
func NewGameRecord(result *types.Result) (*models.GameRecord, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}

	record := &models.GameRecord{
		ID:        result.SessionID,
		Score:     result.Score,
		Lines:     result.Lines,
		Level:     result.Level,
		Pieces:    result.Pieces,
		StartedAt: result.StartedAt,
		EndedAt:   result.EndedAt,
	}
	if result.Board != nil {
		board, err := messages.SerializeSnapshot(result.Board)
		if err != nil {
			return nil, fmt.Errorf("failed to encode final board: %v", err)
		}
		record.Board = board
	}
	return record, nil
}
