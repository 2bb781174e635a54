package service

import (
	"fmt"
	"time"

	"sportclash/internal/models"
	"sportclash/internal/repository"
)

// SessionService manages the class session lifecycle. Sessions are created
// scheduled and end completed; completion is terminal and idempotent.
type SessionService struct {
	sessionRepo *repository.SessionRepository
	classRepo   *repository.ClassRepository
	catalogRepo *repository.CatalogRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo *repository.SessionRepository, classRepo *repository.ClassRepository, catalogRepo *repository.CatalogRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		classRepo:   classRepo,
		catalogRepo: catalogRepo,
	}
}

// CreateSession schedules a new session for a class. sportID may be nil for
// a free/open session with no assigned sport.
func (s *SessionService) CreateSession(classID int64, sportID *int64, date time.Time, subject string) (*models.ClassSession, error) {
	class, err := s.classRepo.GetClassByID(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	if class == nil {
		return nil, models.NotFoundError{Resource: "class", ID: classID}
	}

	if sportID != nil {
		sport, err := s.catalogRepo.GetSportByID(*sportID)
		if err != nil {
			return nil, fmt.Errorf("failed to get sport: %w", err)
		}
		if sport == nil {
			return nil, models.NotFoundError{Resource: "sport", ID: *sportID}
		}
	}

	session, err := s.sessionRepo.CreateSession(classID, sportID, date, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession fetches a session by id
func (s *SessionService) GetSession(sessionID int64) (*models.ClassSession, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, models.NotFoundError{Resource: "session", ID: sessionID}
	}
	return session, nil
}

// ListClassSessions lists a class's sessions, most recent first
func (s *SessionService) ListClassSessions(classID int64) ([]models.ClassSession, error) {
	class, err := s.classRepo.GetClassByID(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	if class == nil {
		return nil, models.NotFoundError{Resource: "class", ID: classID}
	}
	return s.sessionRepo.GetClassSessions(classID)
}

// CompleteSession marks a session completed. Completing an already
// completed session is a no-op that keeps the original timestamp. There is
// no rollback; recorders reject all writes once a session is completed.
func (s *SessionService) CompleteSession(sessionID int64) (*models.ClassSession, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return session, nil
	}

	if err := s.sessionRepo.CompleteSession(sessionID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	return s.GetSession(sessionID)
}
