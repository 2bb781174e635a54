package handlers

import (
	"net/http"

	"sportclash/internal/service"
)

// ScoreHandler handles single-score recording
type ScoreHandler struct {
	scoreService *service.ScoreService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

type recordScoreRequest struct {
	StudentID int64  `json:"studentId" validate:"required,gt=0"`
	SportID   int64  `json:"sportId" validate:"required,gt=0"`
	Score     int    `json:"score" validate:"min=0,max=100"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Note      string `json:"note" validate:"max=500"`
	SessionID *int64 `json:"sessionId" validate:"omitempty,gt=0"`
}

// RecordScore stores one score as a new historical row
func (h *ScoreHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	var req recordScoreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	record, err := h.scoreService.Record(r.Context(), req.StudentID, req.SportID, req.Score, date, req.Note, req.SessionID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, newScoreRecordView(record))
}
