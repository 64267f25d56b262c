package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mocks "github.com/cbodonnell/tetris/mocks/github.com/cbodonnell/tetris/pkg/repositories"
	gametypes "github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/cbodonnell/tetris/pkg/repositories"
	"github.com/cbodonnell/tetris/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedRepository(t *testing.T) (*repositories.InMemoryRepository, []*models.GameRecord) {
	ctx := context.Background()
	repo := repositories.NewInMemoryRepository()
	require.NoError(t, repo.SaveHighScore(ctx, 1500))

	cells := make([][]gametypes.PieceKind, 2)
	for y := range cells {
		cells[y] = make([]gametypes.PieceKind, 4)
	}
	cells[1][2] = gametypes.PieceKindJ
	board, err := messages.SerializeSnapshot(&gametypes.Snapshot{Width: 4, Height: 2, Cells: cells})
	require.NoError(t, err)

	var records []*models.GameRecord
	end := time.UnixMilli(1_700_000_000_000)
	for i := 0; i < 15; i++ {
		record := &models.GameRecord{
			ID:      uuid.New(),
			Score:   i * 100,
			Lines:   i,
			Level:   1,
			EndedAt: end.Add(time.Duration(i) * time.Second),
			Board:   board,
		}
		require.NoError(t, repo.SaveGameRecord(ctx, record))
		records = append(records, record)
	}
	return repo, records
}

func serve(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	repo, records := seedRepository(t)
	router := NewRouter(repo, log.DefaultLogger())

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:       "high score",
			method:     http.MethodGet,
			target:     "/highscore",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp messages.HighScoreResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 1500, resp.HighScore)
			},
		},
		{
			name:       "records default limit",
			method:     http.MethodGet,
			target:     "/records",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp []messages.GameRecordResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp, repositories.DefaultRecordLimit)
				assert.Equal(t, 1400, resp[0].Score)
				assert.Nil(t, resp[0].Board)
			},
		},
		{
			name:       "records with limit",
			method:     http.MethodGet,
			target:     "/records?limit=3",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp []messages.GameRecordResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Len(t, resp, 3)
			},
		},
		{
			name:       "records with bad limit",
			method:     http.MethodGet,
			target:     "/records?limit=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "record by id",
			method:     http.MethodGet,
			target:     "/records/" + records[3].ID.String(),
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp messages.GameRecordResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, records[3].ID, resp.ID)
				require.NotNil(t, resp.Board)
				assert.Equal(t, []string{"....", "..J."}, resp.Board.Rows)
			},
		},
		{
			name:       "unknown record",
			method:     http.MethodGet,
			target:     "/records/" + uuid.NewString(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed record id",
			method:     http.MethodGet,
			target:     "/records/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "preflight",
			method:     http.MethodOptions,
			target:     "/records",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			target:     "/highscore",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}

func TestRouterRepositoryError(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().LoadHighScore(mock.Anything).Return(0, errors.New("connection reset")).Once()
	repo.EXPECT().ListGameRecords(mock.Anything, repositories.DefaultRecordLimit).Return(nil, errors.New("connection reset")).Once()

	router := NewRouter(repo, log.DefaultLogger())
	assert.Equal(t, http.StatusInternalServerError, serve(t, router, http.MethodGet, "/highscore").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(t, router, http.MethodGet, "/records").Code)
}
