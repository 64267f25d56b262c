package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/messages"
	"github.com/cbodonnell/tetris/pkg/repositories"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func HandleGetHighScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highScore, err := repository.LoadHighScore(r.Context())
		if err != nil {
			log.Error("failed to load high score: %v", err)
			writeError(w, "Failed to load high score", http.StatusInternalServerError)
			return
		}

		writeJSON(w, &messages.HighScoreResponse{HighScore: highScore})
	}
}

func HandleListRecords(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := repositories.DefaultRecordLimit
		if value := r.URL.Query().Get("limit"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed < 1 {
				writeError(w, "Limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = repositories.NormalizeLimit(parsed)
		}

		records, err := repository.ListGameRecords(r.Context(), limit)
		if err != nil {
			log.Error("failed to list game records: %v", err)
			writeError(w, "Failed to list game records", http.StatusInternalServerError)
			return
		}

		resp := make([]*messages.GameRecordResponse, 0, len(records))
		for _, record := range records {
			item, err := messages.NewGameRecordResponse(record, false)
			if err != nil {
				log.Error("failed to convert game record %s: %v", record.ID, err)
				writeError(w, "Failed to convert game record", http.StatusInternalServerError)
				return
			}
			resp = append(resp, item)
		}

		writeJSON(w, resp)
	}
}

func HandleGetRecord(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["recordID"])
		if err != nil {
			writeError(w, "Invalid record ID", http.StatusBadRequest)
			return
		}

		record, err := repository.GetGameRecord(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				writeError(w, "Record not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get game record %s: %v", id, err)
			writeError(w, "Failed to get game record", http.StatusInternalServerError)
			return
		}

		resp, err := messages.NewGameRecordResponse(record, true)
		if err != nil {
			log.Error("failed to decode board of game record %s: %v", id, err)
			writeError(w, "Failed to decode game record", http.StatusInternalServerError)
			return
		}

		writeJSON(w, resp)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&messages.ErrorResponse{Error: msg}); err != nil {
		log.Error("failed to encode error response: %v", err)
	}
}
