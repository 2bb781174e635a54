package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sportclash/internal/database"
	"sportclash/internal/models"
)

// SessionRepository handles database operations for class sessions
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession inserts a new scheduled session. sportID nil creates a
// free/open session with no assigned sport.
func (r *SessionRepository) CreateSession(classID int64, sportID *int64, date time.Time, subject string) (*models.ClassSession, error) {
	query := `
		INSERT INTO class_sessions (class_id, sport_id, session_date, subject)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, classID, sportID, date, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return r.GetSessionByID(id)
}

// GetSessionByID retrieves a session by id; nil when not found
func (r *SessionRepository) GetSessionByID(id int64) (*models.ClassSession, error) {
	query := `
		SELECT id, class_id, sport_id, session_date, subject,
		       attendance_taken, scored, completed_at, created_at, updated_at
		FROM class_sessions
		WHERE id = ?
	`

	session := &models.ClassSession{}
	var sportID sql.NullInt64
	var completedAt sql.NullTime

	err := r.db.QueryRow(query, id).Scan(
		&session.ID,
		&session.ClassID,
		&sportID,
		&session.SessionDate,
		&session.Subject,
		&session.AttendanceTaken,
		&session.Scored,
		&completedAt,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if sportID.Valid {
		session.SportID = &sportID.Int64
	}
	if completedAt.Valid {
		session.CompletedAt = &completedAt.Time
	}
	return session, nil
}

// GetClassSessions retrieves all sessions for a class, most recent first
func (r *SessionRepository) GetClassSessions(classID int64) ([]models.ClassSession, error) {
	query := `
		SELECT id, class_id, sport_id, session_date, subject,
		       attendance_taken, scored, completed_at, created_at, updated_at
		FROM class_sessions
		WHERE class_id = ?
		ORDER BY session_date DESC, id DESC
	`
	rows, err := r.db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.ClassSession
	for rows.Next() {
		var s models.ClassSession
		var sportID sql.NullInt64
		var completedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.ClassID,
			&sportID,
			&s.SessionDate,
			&s.Subject,
			&s.AttendanceTaken,
			&s.Scored,
			&completedAt,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if sportID.Valid {
			s.SportID = &sportID.Int64
		}
		if completedAt.Valid {
			s.CompletedAt = &completedAt.Time
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// MarkAttendanceTaken flips the attendance-taken flag on a session
func (r *SessionRepository) MarkAttendanceTaken(sessionID int64) error {
	query := `
		UPDATE class_sessions
		SET attendance_taken = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, true, sessionID)
	return err
}

// MarkScored flips the scored flag on a session
func (r *SessionRepository) MarkScored(sessionID int64) error {
	query := `
		UPDATE class_sessions
		SET scored = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, true, sessionID)
	return err
}

// CompleteSession sets the terminal completed timestamp. The guard on
// completed_at makes repeated completion a no-op rather than moving
// the timestamp.
func (r *SessionRepository) CompleteSession(sessionID int64, completedAt time.Time) error {
	query := `
		UPDATE class_sessions
		SET completed_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND completed_at IS NULL
	`
	_, err := r.db.Exec(query, completedAt, sessionID)
	return err
}
