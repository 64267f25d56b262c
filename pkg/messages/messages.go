package messages

import (
	"time"

	"github.com/cbodonnell/tetris/pkg/repositories/models"
	"github.com/google/uuid"
)

// HighScoreResponse is the body of GET /highscore
type HighScoreResponse struct {
	HighScore int `json:"high_score"`
}

// GameRecordResponse is a stored game as returned by the records endpoints.
// Board is omitted from listings.
type GameRecordResponse struct {
	ID        uuid.UUID      `json:"id"`
	Score     int            `json:"score"`
	Lines     int            `json:"lines"`
	Level     int            `json:"level"`
	Pieces    int            `json:"pieces"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   time.Time      `json:"ended_at"`
	Board     *BoardResponse `json:"board,omitempty"`
}

// BoardResponse is the final board of a game, one string per row with
// '.' for an empty cell and the piece letter otherwise.
type BoardResponse struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewGameRecordResponse converts a stored record. When withBoard is set the
// encoded board is decoded and rendered as rows.
func NewGameRecordResponse(record *models.GameRecord, withBoard bool) (*GameRecordResponse, error) {
	resp := &GameRecordResponse{
		ID:        record.ID,
		Score:     record.Score,
		Lines:     record.Lines,
		Level:     record.Level,
		Pieces:    record.Pieces,
		StartedAt: record.StartedAt,
		EndedAt:   record.EndedAt,
	}
	if !withBoard || len(record.Board) == 0 {
		return resp, nil
	}

	board, err := DeserializeSnapshot(record.Board)
	if err != nil {
		return nil, err
	}
	rows := make([]string, board.Height)
	for y := range rows {
		row := make([]byte, board.Width)
		for x := range row {
			kind := board.Cell(x, y)
			if kind == 0 {
				row[x] = '.'
			} else {
				row[x] = kind.String()[0]
			}
		}
		rows[y] = string(row)
	}
	resp.Board = &BoardResponse{
		Width:  board.Width,
		Height: board.Height,
		Rows:   rows,
	}
	return resp, nil
}
