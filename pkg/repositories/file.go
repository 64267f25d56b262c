package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cbodonnell/tetris/pkg/repositories/models"
	"github.com/google/uuid"
)

// fileContents is the on-disk layout. A file holding only
// {"high_score": N} is also accepted.
type fileContents struct {
	HighScore int                  `json:"high_score"`
	UpdatedAt time.Time            `json:"updated_at,omitempty"`
	Records   []*models.GameRecord `json:"records,omitempty"`
}

// FileRepository stores everything in a single JSON file. Each write
// replaces the file atomically.
type FileRepository struct {
	lock sync.Mutex
	path string
}

var _ Repository = &FileRepository{}

func NewFileRepository(path string) (Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("file repository requires a path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	return &FileRepository{
		path: path,
	}, nil
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

func (r *FileRepository) LoadHighScore(ctx context.Context) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	contents, err := r.read()
	if err != nil {
		return 0, err
	}
	return contents.HighScore, nil
}

func (r *FileRepository) SaveHighScore(ctx context.Context, highScore int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	contents, err := r.read()
	if err != nil {
		return err
	}
	if highScore <= contents.HighScore {
		return nil
	}
	contents.HighScore = highScore
	contents.UpdatedAt = time.Now()
	return r.write(contents)
}

func (r *FileRepository) SaveGameRecord(ctx context.Context, record *models.GameRecord) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	contents, err := r.read()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range contents.Records {
		if existing.ID == record.ID {
			contents.Records[i] = record.Copy()
			replaced = true
			break
		}
	}
	if !replaced {
		contents.Records = append(contents.Records, record.Copy())
	}
	sortRecords(contents.Records)
	if len(contents.Records) > MaxRecordLimit {
		contents.Records = contents.Records[:MaxRecordLimit]
	}

	return r.write(contents)
}

func (r *FileRepository) ListGameRecords(ctx context.Context, limit int) ([]*models.GameRecord, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	contents, err := r.read()
	if err != nil {
		return nil, err
	}

	records := contents.Records
	sortRecords(records)
	limit = NormalizeLimit(limit)
	if len(records) > limit {
		records = records[:limit]
	}
	if records == nil {
		records = make([]*models.GameRecord, 0)
	}
	return records, nil
}

func (r *FileRepository) GetGameRecord(ctx context.Context, id uuid.UUID) (*models.GameRecord, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	contents, err := r.read()
	if err != nil {
		return nil, err
	}
	for _, record := range contents.Records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, &ErrNotFound{}
}

// read returns empty contents when the file does not exist yet.
func (r *FileRepository) read() (*fileContents, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &fileContents{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %v", r.path, err)
	}

	contents := &fileContents{}
	if len(data) == 0 {
		return contents, nil
	}
	if err := json.Unmarshal(data, contents); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %v", r.path, err)
	}
	return contents, nil
}

func (r *FileRepository) write(contents *fileContents) error {
	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode contents: %v", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %v", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %v", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %v", r.path, err)
	}
	return nil
}
