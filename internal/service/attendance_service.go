package service

import (
	"context"
	"fmt"
	"time"

	"sportclash/internal/models"
	"sportclash/internal/repository"
)

// AttendanceService records batched attendance against a class session.
// Writes are keyed by (session, student): re-recording overwrites presence
// rather than appending, so concurrent or repeated batches converge.
type AttendanceService struct {
	sessionRepo    *repository.SessionRepository
	classRepo      *repository.ClassRepository
	attendanceRepo *repository.AttendanceRepository
	notifier       *NotifierService
}

// NewAttendanceService creates a new attendance service. notifier may be
// nil when unlock notifications are disabled.
func NewAttendanceService(sessionRepo *repository.SessionRepository, classRepo *repository.ClassRepository, attendanceRepo *repository.AttendanceRepository, notifier *NotifierService) *AttendanceService {
	return &AttendanceService{
		sessionRepo:    sessionRepo,
		classRepo:      classRepo,
		attendanceRepo: attendanceRepo,
		notifier:       notifier,
	}
}

// SessionRecords lists the attendance recorded so far for a session
func (s *AttendanceService) SessionRecords(sessionID int64) ([]models.AttendanceRecord, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, models.NotFoundError{Resource: "session", ID: sessionID}
	}
	return s.attendanceRepo.GetSessionRecords(sessionID)
}

// RecordBatch records presence for a list of roster entries against one
// session. The whole call fails when the session is unknown or completed;
// individual entries are rejected, without aborting the rest, when the
// student is not on the class roster, appears twice in the batch, or the
// session completes while the batch is being written.
func (s *AttendanceService) RecordBatch(ctx context.Context, sessionID int64, date time.Time, entries []models.BatchAttendanceEntry) (*models.BatchAttendanceSummary, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, models.NotFoundError{Resource: "session", ID: sessionID}
	}
	if session.IsCompleted() {
		return nil, models.ErrSessionClosed
	}

	roster, err := s.classRepo.GetRosterIDs(session.ClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	summary := &models.BatchAttendanceSummary{}
	seen := make(map[int64]bool)
	var saved []int64

	for _, entry := range entries {
		if seen[entry.StudentID] {
			summary.Rejected = append(summary.Rejected, models.RejectedEntry{
				StudentID: entry.StudentID,
				Reason:    "duplicate entry in batch",
			})
			continue
		}
		seen[entry.StudentID] = true

		if !roster[entry.StudentID] {
			summary.Rejected = append(summary.Rejected, models.RejectedEntry{
				StudentID: entry.StudentID,
				Reason:    "student not on class roster",
			})
			continue
		}

		// Re-check completion so a session closed mid-batch rejects the
		// remaining entries instead of accepting writes after the fact.
		current, err := s.sessionRepo.GetSessionByID(sessionID)
		if err != nil {
			return summary, fmt.Errorf("failed to re-check session: %w", err)
		}
		if current == nil || current.IsCompleted() {
			summary.Rejected = append(summary.Rejected, models.RejectedEntry{
				StudentID: entry.StudentID,
				Reason:    "session completed during batch",
			})
			continue
		}

		before := s.notifier.Snapshot(entry.StudentID)

		err = s.attendanceRepo.UpsertRecord(sessionID, entry.StudentID, entry.Present, entry.Note, date)
		if err != nil {
			summary.Rejected = append(summary.Rejected, models.RejectedEntry{
				StudentID: entry.StudentID,
				Reason:    fmt.Sprintf("write failed: %v", err),
			})
			continue
		}

		if entry.Present {
			summary.PresentCount++
		} else {
			summary.AbsentCount++
		}
		saved = append(saved, entry.StudentID)
		s.notifier.NotifyNewUnlocks(ctx, entry.StudentID, before)
	}

	if len(saved) > 0 {
		if err := s.sessionRepo.MarkAttendanceTaken(sessionID); err != nil {
			return nil, fmt.Errorf("failed to mark attendance taken: %w", err)
		}
	}

	return summary, nil
}
