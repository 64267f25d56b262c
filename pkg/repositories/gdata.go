package repositories

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/cbodonnell/tetris/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	gdataScoresObject   = "scores"
	gdataHighScoreProp  = "highscore"
	gdataRecordsProp    = "records"
	gdataDefaultAppName = "tetris"
)

// GDataRepository stores data in the per-user application data directory
// resolved by gdata, which also works on wasm and mobile targets.
type GDataRepository struct {
	lock    sync.Mutex
	manager *gdata.Manager
}

var _ Repository = &GDataRepository{}

func NewGDataRepository(appName string) (Repository, error) {
	if appName == "" {
		appName = gdataDefaultAppName
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %v", err)
	}
	return &GDataRepository{
		manager: manager,
	}, nil
}

func (r *GDataRepository) Close(ctx context.Context) error {
	return nil
}

func (r *GDataRepository) LoadHighScore(ctx context.Context) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.loadHighScore()
}

func (r *GDataRepository) loadHighScore() (int, error) {
	if !r.manager.ObjectPropExists(gdataScoresObject, gdataHighScoreProp) {
		return 0, nil
	}
	data, err := r.manager.LoadObjectProp(gdataScoresObject, gdataHighScoreProp)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %v", err)
	}
	score, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to parse high score %q: %v", data, err)
	}
	return score, nil
}

func (r *GDataRepository) SaveHighScore(ctx context.Context, highScore int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	current, err := r.loadHighScore()
	if err != nil {
		return err
	}
	if highScore <= current {
		return nil
	}
	if err := r.manager.SaveObjectProp(gdataScoresObject, gdataHighScoreProp, []byte(strconv.Itoa(highScore))); err != nil {
		return fmt.Errorf("failed to save high score: %v", err)
	}
	return nil
}

func (r *GDataRepository) SaveGameRecord(ctx context.Context, record *models.GameRecord) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	records, err := r.loadRecords()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range records {
		if existing.ID == record.ID {
			records[i] = record.Copy()
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record.Copy())
	}
	sortRecords(records)
	if len(records) > MaxRecordLimit {
		records = records[:MaxRecordLimit]
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode game records: %v", err)
	}
	if err := r.manager.SaveObjectProp(gdataScoresObject, gdataRecordsProp, data); err != nil {
		return fmt.Errorf("failed to save game records: %v", err)
	}
	return nil
}

func (r *GDataRepository) ListGameRecords(ctx context.Context, limit int) ([]*models.GameRecord, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	records, err := r.loadRecords()
	if err != nil {
		return nil, err
	}
	sortRecords(records)
	limit = NormalizeLimit(limit)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *GDataRepository) GetGameRecord(ctx context.Context, id uuid.UUID) (*models.GameRecord, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	records, err := r.loadRecords()
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, &ErrNotFound{}
}

func (r *GDataRepository) loadRecords() ([]*models.GameRecord, error) {
	records := make([]*models.GameRecord, 0)
	if !r.manager.ObjectPropExists(gdataScoresObject, gdataRecordsProp) {
		return records, nil
	}
	data, err := r.manager.LoadObjectProp(gdataScoresObject, gdataRecordsProp)
	if err != nil {
		return nil, fmt.Errorf("failed to load game records: %v", err)
	}
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode game records: %v", err)
	}
	return records, nil
}
