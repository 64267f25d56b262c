package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cbodonnell/tetris/pkg/repositories/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = &SQLiteRepository{}

// NewSQLiteRepository opens the database at path and applies every migration
// file in the migrations directory in name order.
func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	dir, err := os.ReadDir(migrations)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(dir, func(i, j int) bool { return dir[i].Name() < dir[j].Name() })

	for _, entry := range dir {
		if entry.IsDir() {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadHighScore(ctx context.Context) (int, error) {
	q := `
	SELECT score FROM high_scores WHERE id = 1;
	`
	var score int
	if err := r.db.QueryRowContext(ctx, q).Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan high score: %v", err)
	}

	return score, nil
}

func (r *SQLiteRepository) SaveHighScore(ctx context.Context, highScore int) error {
	q := `
	INSERT INTO high_scores (id, score, updated_at)
	VALUES (1, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		score = MAX(high_scores.score, excluded.score),
		updated_at = excluded.updated_at;
	`
	_, err := r.db.ExecContext(ctx, q, highScore, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save high score: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) SaveGameRecord(ctx context.Context, record *models.GameRecord) error {
	q := `
	INSERT OR REPLACE INTO game_records (record_id, score, lines, level, pieces, started_at, ended_at, board)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q,
		record.ID.String(),
		record.Score,
		record.Lines,
		record.Level,
		record.Pieces,
		record.StartedAt.UnixMilli(),
		record.EndedAt.UnixMilli(),
		record.Board,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game record: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) ListGameRecords(ctx context.Context, limit int) ([]*models.GameRecord, error) {
	q := `
	SELECT record_id, score, lines, level, pieces, started_at, ended_at, board
	FROM game_records
	ORDER BY score DESC, ended_at DESC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query game records: %v", err)
	}
	defer rows.Close()

	records := make([]*models.GameRecord, 0)
	for rows.Next() {
		record, err := scanSQLiteRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game records: %v", err)
	}

	return records, nil
}

func (r *SQLiteRepository) GetGameRecord(ctx context.Context, id uuid.UUID) (*models.GameRecord, error) {
	q := `
	SELECT record_id, score, lines, level, pieces, started_at, ended_at, board
	FROM game_records
	WHERE record_id = ?;
	`
	record, err := scanSQLiteRecord(r.db.QueryRowContext(ctx, q, id.String()))
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get game record: %v", err)
	}

	return record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteRecord(row rowScanner) (*models.GameRecord, error) {
	var (
		id        string
		startedAt int64
		endedAt   int64
		record    models.GameRecord
	)
	err := row.Scan(&id, &record.Score, &record.Lines, &record.Level, &record.Pieces, &startedAt, &endedAt, &record.Board)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan game record: %v", err)
	}

	record.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse game record id %q: %v", id, err)
	}
	record.StartedAt = time.UnixMilli(startedAt)
	record.EndedAt = time.UnixMilli(endedAt)

	return &record, nil
}
