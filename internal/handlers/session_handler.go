package handlers

import (
	"net/http"

	"sportclash/internal/models"
	"sportclash/internal/service"
)

// SessionHandler handles the class session lifecycle and the batched
// recorder operations against a session
type SessionHandler struct {
	sessionService    *service.SessionService
	attendanceService *service.AttendanceService
	scoreService      *service.ScoreService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService, attendanceService *service.AttendanceService, scoreService *service.ScoreService) *SessionHandler {
	return &SessionHandler{
		sessionService:    sessionService,
		attendanceService: attendanceService,
		scoreService:      scoreService,
	}
}

type createSessionRequest struct {
	ClassID int64  `json:"classId" validate:"required,gt=0"`
	SportID *int64 `json:"sportId" validate:"omitempty,gt=0"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Subject string `json:"subject" validate:"max=200"`
}

// CreateSession schedules a new session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	session, err := h.sessionService.CreateSession(req.ClassID, req.SportID, date, req.Subject)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, newSessionView(session))
}

// GetSession fetches one session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	session, err := h.sessionService.GetSession(id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newSessionView(session))
}

// ListClassSessions lists a class's sessions, most recent first
func (h *SessionHandler) ListClassSessions(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	sessions, err := h.sessionService.ListClassSessions(classID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	views := make([]sessionView, 0, len(sessions))
	for i := range sessions {
		views = append(views, newSessionView(&sessions[i]))
	}
	respondWithJSON(w, http.StatusOK, views)
}

type attendanceEntryRequest struct {
	StudentID int64  `json:"studentId" validate:"required,gt=0"`
	Present   bool   `json:"present"`
	Note      string `json:"note" validate:"max=500"`
}

type recordAttendanceRequest struct {
	Date    string                   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Entries []attendanceEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

// RecordAttendance records a batch of presence entries for a session.
// Individual rejections come back in the summary with a 200; only an
// unknown or completed session fails the whole call.
func (h *SessionHandler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	var req recordAttendanceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	entries := make([]models.BatchAttendanceEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, models.BatchAttendanceEntry{
			StudentID: e.StudentID,
			Present:   e.Present,
			Note:      e.Note,
		})
	}

	summary, err := h.attendanceService.RecordBatch(r.Context(), id, date, entries)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, attendanceSummaryView{
		PresentCount: summary.PresentCount,
		AbsentCount:  summary.AbsentCount,
		Rejected:     newRejectedViews(summary.Rejected),
	})
}

// GetSessionAttendance lists the attendance recorded for a session
func (h *SessionHandler) GetSessionAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	records, err := h.attendanceService.SessionRecords(id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAttendanceRecordViews(records))
}

type recordBatchScoresRequest struct {
	SportID        *int64  `json:"sportId" validate:"omitempty,gt=0"`
	Score          int     `json:"score" validate:"min=0,max=100"`
	Note           string  `json:"note" validate:"max=500"`
	StudentIDs     []int64 `json:"studentIds" validate:"required,min=1,dive,gt=0"`
	MarkAttendance bool    `json:"markAttendance"`
}

// RecordBatchScores applies one score to every listed student
func (h *SessionHandler) RecordBatchScores(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	var req recordBatchScoresRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}

	result, err := h.scoreService.RecordBatch(r.Context(), id, req.SportID, req.Score, req.Note, req.StudentIDs, req.MarkAttendance)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	view := batchScoreResultView{
		Saved:  make([]scoreRecordView, 0, len(result.Saved)),
		Failed: newRejectedViews(result.Failed),
	}
	for i := range result.Saved {
		view.Saved = append(view.Saved, newScoreRecordView(&result.Saved[i]))
	}
	respondWithJSON(w, http.StatusOK, view)
}

// CompleteSession marks a session completed; repeating the call is a no-op
func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	session, err := h.sessionService.CompleteSession(id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newSessionView(session))
}
