package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/repositories"
	"github.com/cbodonnell/tetris/pkg/repositories/models"
)

const defaultSaveBufferSize = 64

// ErrSaveQueueFull is returned when a save request cannot be queued
// without blocking.
var ErrSaveQueueFull = errors.New("save queue is full")

type SaveScoreWorker struct {
	repository repositories.Repository
	saveChan   chan SaveRequest
	logger     *log.Logger
}

type NewSaveScoreWorkerOptions struct {
	Repository repositories.Repository
	// BufferSize is the number of requests that can be pending before
	// Enqueue starts failing. Defaults to 64.
	BufferSize int
	Logger     *log.Logger
}

// SaveRequest carries either a high score or a finished game record.
type SaveRequest struct {
	HighScore *int
	Record    *models.GameRecord
	// flushed is closed once every request queued before it was handled
	flushed chan struct{}
}

// NewSaveScoreWorker creates a new SaveScoreWorker.
// The worker persists save requests from the game loop so that the
// game never waits on storage.
func NewSaveScoreWorker(opts NewSaveScoreWorkerOptions) *SaveScoreWorker {
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = defaultSaveBufferSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger().Named("save")
	}
	return &SaveScoreWorker{
		repository: opts.Repository,
		saveChan:   make(chan SaveRequest, bufferSize),
		logger:     logger,
	}
}

func (w *SaveScoreWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case saveRequest := <-w.saveChan:
			w.handle(ctx, saveRequest)
		}
	}
}

// Enqueue queues a request without blocking.
func (w *SaveScoreWorker) Enqueue(req SaveRequest) error {
	select {
	case w.saveChan <- req:
		return nil
	default:
		return ErrSaveQueueFull
	}
}

// Flush waits until every request queued before the call has been handled.
// The worker must be running.
func (w *SaveScoreWorker) Flush(ctx context.Context) error {
	flushed := make(chan struct{})
	select {
	case w.saveChan <- SaveRequest{flushed: flushed}:
	case <-ctx.Done():
		return fmt.Errorf("failed to queue flush: %w", ctx.Err())
	}

	select {
	case <-flushed:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to flush saves: %w", ctx.Err())
	}
}

func (w *SaveScoreWorker) handle(ctx context.Context, req SaveRequest) {
	if req.flushed != nil {
		close(req.flushed)
		return
	}
	if req.HighScore != nil {
		w.saveHighScore(ctx, *req.HighScore)
	}
	if req.Record != nil {
		w.saveGameRecord(ctx, req.Record)
	}
}

func (w *SaveScoreWorker) saveHighScore(ctx context.Context, highScore int) {
	if err := w.repository.SaveHighScore(ctx, highScore); err != nil {
		w.logger.Error("Failed to save high score: %v", err)
		return
	}
	w.logger.Debug("Saved high score %d", highScore)
}

func (w *SaveScoreWorker) saveGameRecord(ctx context.Context, record *models.GameRecord) {
	if err := w.repository.SaveGameRecord(ctx, record); err != nil {
		w.logger.Error("Failed to save game record %s: %v", record.ID, err)
		return
	}
	w.logger.Debug("Saved game record %s", record.ID)
}
