package service

import (
	"context"
	"fmt"
	"time"

	"sportclash/internal/models"
	"sportclash/internal/repository"
	"sportclash/internal/validation"
)

// ScoreService records score history. Score rows are append-only: the same
// student and sport on different sessions or dates are distinct entries.
type ScoreService struct {
	sessionRepo    *repository.SessionRepository
	classRepo      *repository.ClassRepository
	studentRepo    *repository.StudentRepository
	catalogRepo    *repository.CatalogRepository
	scoreRepo      *repository.ScoreRepository
	attendanceRepo *repository.AttendanceRepository
	notifier       *NotifierService
}

// NewScoreService creates a new score service. notifier may be nil when
// unlock notifications are disabled.
func NewScoreService(sessionRepo *repository.SessionRepository, classRepo *repository.ClassRepository, studentRepo *repository.StudentRepository, catalogRepo *repository.CatalogRepository, scoreRepo *repository.ScoreRepository, attendanceRepo *repository.AttendanceRepository, notifier *NotifierService) *ScoreService {
	return &ScoreService{
		sessionRepo:    sessionRepo,
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		catalogRepo:    catalogRepo,
		scoreRepo:      scoreRepo,
		attendanceRepo: attendanceRepo,
		notifier:       notifier,
	}
}

// Record stores a single score for a student. sessionID is optional; when
// set, the session must exist and not be completed.
func (s *ScoreService) Record(ctx context.Context, studentID, sportID int64, score int, date time.Time, note string, sessionID *int64) (*models.ScoreRecord, error) {
	if err := validation.ValidateScore(score); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetStudentByID(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return nil, models.NotFoundError{Resource: "student", ID: studentID}
	}

	sport, err := s.catalogRepo.GetSportByID(sportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}
	if sport == nil {
		return nil, models.NotFoundError{Resource: "sport", ID: sportID}
	}

	if sessionID != nil {
		session, err := s.sessionRepo.GetSessionByID(*sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
		if session == nil {
			return nil, models.NotFoundError{Resource: "session", ID: *sessionID}
		}
		if session.IsCompleted() {
			return nil, models.ErrSessionClosed
		}
	}

	before := s.notifier.Snapshot(studentID)

	record, err := s.scoreRepo.InsertRecord(studentID, sportID, sessionID, score, note, date)
	if err != nil {
		return nil, fmt.Errorf("failed to insert score: %w", err)
	}

	s.notifier.NotifyNewUnlocks(ctx, studentID, before)
	return record, nil
}

// RecordBatch applies the same score and note to every listed student as
// independent historical rows, for group-evaluation workflows where a
// cohort receives one grade for a drill.
//
// A session whose sport is the free/open sentinel carries no implicit
// sport, so the caller must supply sportID explicitly; omission is a
// validation error, never a default guess. The completed check is repeated
// at each write, so a session completing mid-batch rejects only the
// remaining entries.
//
// markAttendance opts in to upserting a present attendance record for each
// scored student when the session's attendance has not been taken yet.
func (s *ScoreService) RecordBatch(ctx context.Context, sessionID int64, sportID *int64, score int, note string, studentIDs []int64, markAttendance bool) (*models.BatchScoreResult, error) {
	if err := validation.ValidateScore(score); err != nil {
		return nil, err
	}

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

	effectiveSportID := session.SportID
	if sportID != nil {
		effectiveSportID = sportID
	}
	if effectiveSportID == nil {
		return nil, models.ValidationError{
			Field:   "sportId",
			Message: "session has no assigned sport; an explicit sport id is required",
		}
	}
	sport, err := s.catalogRepo.GetSportByID(*effectiveSportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}
	if sport == nil {
		return nil, models.NotFoundError{Resource: "sport", ID: *effectiveSportID}
	}

	roster, err := s.classRepo.GetRosterIDs(session.ClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	recordAttendance := markAttendance && !session.AttendanceTaken
	date := session.SessionDate

	result := &models.BatchScoreResult{}
	for _, studentID := range studentIDs {
		if !roster[studentID] {
			result.Failed = append(result.Failed, models.RejectedEntry{
				StudentID: studentID,
				Reason:    "student not on class roster",
			})
			continue
		}

		// Re-check completion so a session closed mid-batch rejects the
		// remaining entries instead of accepting writes after the fact.
		current, err := s.sessionRepo.GetSessionByID(sessionID)
		if err != nil {
			return result, fmt.Errorf("failed to re-check session: %w", err)
		}
		if current == nil || current.IsCompleted() {
			result.Failed = append(result.Failed, models.RejectedEntry{
				StudentID: studentID,
				Reason:    "session completed during batch",
			})
			continue
		}

		before := s.notifier.Snapshot(studentID)

		record, err := s.scoreRepo.InsertRecord(studentID, *effectiveSportID, &sessionID, score, note, date)
		if err != nil {
			result.Failed = append(result.Failed, models.RejectedEntry{
				StudentID: studentID,
				Reason:    fmt.Sprintf("write failed: %v", err),
			})
			continue
		}
		result.Saved = append(result.Saved, *record)

		if recordAttendance {
			if err := s.attendanceRepo.UpsertRecord(sessionID, studentID, true, "", date); err != nil {
				return result, fmt.Errorf("failed to record implied attendance: %w", err)
			}
		}

		s.notifier.NotifyNewUnlocks(ctx, studentID, before)
	}

	if len(result.Saved) > 0 {
		if err := s.sessionRepo.MarkScored(sessionID); err != nil {
			return result, fmt.Errorf("failed to mark session scored: %w", err)
		}
		if recordAttendance {
			if err := s.sessionRepo.MarkAttendanceTaken(sessionID); err != nil {
				return result, fmt.Errorf("failed to mark attendance taken: %w", err)
			}
		}
	}

	return result, nil
}
