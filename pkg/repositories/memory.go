package repositories

import (
	"context"
	"sync"

	"github.com/cbodonnell/tetris/pkg/repositories/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps everything in process memory. It conforms to
// the persistence contract for a single process lifetime.
type InMemoryRepository struct {
	lock      sync.RWMutex
	highScore int
	records   map[uuid.UUID]*models.GameRecord
}

var _ Repository = &InMemoryRepository{}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[uuid.UUID]*models.GameRecord),
	}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) LoadHighScore(ctx context.Context) (int, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.highScore, nil
}

func (r *InMemoryRepository) SaveHighScore(ctx context.Context, highScore int) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.highScore = max(r.highScore, highScore)
	return nil
}

func (r *InMemoryRepository) SaveGameRecord(ctx context.Context, record *models.GameRecord) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.records[record.ID] = record.Copy()
	return nil
}

func (r *InMemoryRepository) ListGameRecords(ctx context.Context, limit int) ([]*models.GameRecord, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	records := make([]*models.GameRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record.Copy())
	}
	sortRecords(records)

	limit = NormalizeLimit(limit)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *InMemoryRepository) GetGameRecord(ctx context.Context, id uuid.UUID) (*models.GameRecord, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, &ErrNotFound{}
	}
	return record.Copy(), nil
}
