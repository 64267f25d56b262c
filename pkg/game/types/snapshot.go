package types

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the lifecycle state of a game instance.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PieceState is the read-only view of the falling piece.
type PieceState struct {
	Kind     PieceKind `json:"kind"`
	Shape    Shape     `json:"shape"`
	Position Position  `json:"position"`
}

// Snapshot is the read-only view of a game handed to renderers each frame.
type Snapshot struct {
	// SessionID identifies the game instance
	SessionID uuid.UUID `json:"sessionId"`
	// Timestamp is the time at which the snapshot was taken
	Timestamp int64 `json:"timestamp"`
	Phase     Phase `json:"phase"`
	Width     int   `json:"width"`
	Height    int   `json:"height"`
	// Cells holds the locked cells indexed as Cells[row][col]
	Cells [][]PieceKind `json:"cells"`
	// Piece is nil when no piece is falling
	Piece     *PieceState `json:"piece,omitempty"`
	Score     int         `json:"score"`
	HighScore int         `json:"highScore"`
	Level     int         `json:"level"`
	Lines     int         `json:"lines"`
}

// Copy returns a deep copy of the snapshot.
func (s *Snapshot) Copy() *Snapshot {
	c := *s
	c.Cells = make([][]PieceKind, len(s.Cells))
	for y, row := range s.Cells {
		c.Cells[y] = append([]PieceKind(nil), row...)
	}
	if s.Piece != nil {
		c.Piece = &PieceState{
			Kind:     s.Piece.Kind,
			Shape:    s.Piece.Shape.Clone(),
			Position: s.Piece.Position,
		}
	}
	return &c
}

// Cell returns what a renderer should draw at column x, row y: the falling
// piece where it covers the cell, otherwise the locked cell.
func (s *Snapshot) Cell(x, y int) PieceKind {
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return PieceKindNone
	}
	if p := s.Piece; p != nil {
		row, col := y-p.Position.Y, x-p.Position.X
		if row >= 0 && row < p.Shape.Rows() && col >= 0 && col < p.Shape.Cols() && p.Shape[row][col] {
			return p.Kind
		}
	}
	return s.Cells[y][x]
}

// Result summarizes a finished game.
type Result struct {
	SessionID uuid.UUID
	Score     int
	HighScore int
	Lines     int
	Level     int
	// Pieces is the number of pieces locked during the game
	Pieces    int
	StartedAt time.Time
	EndedAt   time.Time
	// Board is the final board, without a falling piece
	Board *Snapshot
}
