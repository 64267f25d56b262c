package models

import (
	"time"

	"github.com/google/uuid"
)

type HighScore struct {
	Score     int       `json:"high_score"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// GameRecord is a finished game as stored by a repository.
type GameRecord struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Score     int       `json:"score" yaml:"score"`
	Lines     int       `json:"lines" yaml:"lines"`
	Level     int       `json:"level" yaml:"level"`
	Pieces    int       `json:"pieces" yaml:"pieces"`
	StartedAt time.Time `json:"started_at" yaml:"startedAt"`
	EndedAt   time.Time `json:"ended_at" yaml:"endedAt"`
	// Board is the final board encoded with messages.SerializeSnapshot
	Board []byte `json:"board,omitempty" yaml:"board,omitempty"`
}

// Copy returns a deep copy of the record.
func (r *GameRecord) Copy() *GameRecord {
	c := *r
	c.Board = append([]byte(nil), r.Board...)
	return &c
}
