package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

var _ Repository = &PostgresRepository{}

// NewPostgresRepository connects to the database and verifies the connection.
// The schema is expected to be applied from migrations/postgres.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) LoadHighScore(ctx context.Context) (int, error) {
	var score int
	err := r.pool.QueryRow(ctx, "SELECT score FROM high_scores WHERE id = 1").Scan(&score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan high score: %v", err)
	}

	return score, nil
}

func (r *PostgresRepository) SaveHighScore(ctx context.Context, highScore int) error {
	q := `
	INSERT INTO high_scores (id, score, updated_at) VALUES (1, $1, $2)
	ON CONFLICT (id) DO UPDATE SET score = GREATEST(high_scores.score, EXCLUDED.score), updated_at = EXCLUDED.updated_at;
	`
	_, err := r.pool.Exec(ctx, q, highScore, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save high score: %v", err)
	}

	return nil
}

func (r *PostgresRepository) SaveGameRecord(ctx context.Context, record *models.GameRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	q := `
	INSERT INTO game_records (record_id, score, lines, level, pieces, started_at, ended_at, board)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (record_id) DO UPDATE SET score = $2, lines = $3, level = $4, pieces = $5, started_at = $6, ended_at = $7, board = $8;
	`
	_, err = tx.Exec(ctx, q,
		record.ID,
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

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *PostgresRepository) ListGameRecords(ctx context.Context, limit int) ([]*models.GameRecord, error) {
	q := `
	SELECT record_id, score, lines, level, pieces, started_at, ended_at, board
	FROM game_records
	ORDER BY score DESC, ended_at DESC
	LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, q, NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query game records: %v", err)
	}
	defer rows.Close()

	records := make([]*models.GameRecord, 0)
	for rows.Next() {
		record, err := scanPostgresRecord(rows)
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

func (r *PostgresRepository) GetGameRecord(ctx context.Context, id uuid.UUID) (*models.GameRecord, error) {
	q := `
	SELECT record_id, score, lines, level, pieces, started_at, ended_at, board
	FROM game_records
	WHERE record_id = $1;
	`
	return scanPostgresRecord(r.pool.QueryRow(ctx, q, id))
}

func scanPostgresRecord(row pgx.Row) (*models.GameRecord, error) {
	var (
		startedAt int64
		endedAt   int64
		record    models.GameRecord
	)
	err := row.Scan(&record.ID, &record.Score, &record.Lines, &record.Level, &record.Pieces, &startedAt, &endedAt, &record.Board)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan game record: %v", err)
	}
	record.StartedAt = time.UnixMilli(startedAt)
	record.EndedAt = time.UnixMilli(endedAt)

	return &record, nil
}
