package repository

import (
	"database/sql"
	"time"

	"sportclash/internal/database"
	"sportclash/internal/models"
)

// ScoreRepository handles database operations for score records
type ScoreRepository struct {
	db *database.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *database.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// InsertRecord appends a score to the student's history
func (r *ScoreRepository) InsertRecord(studentID, sportID int64, sessionID *int64, score int, note string, date time.Time) (*models.ScoreRecord, error) {
	query := `
		INSERT INTO score_records (student_id, sport_id, session_id, score, note, record_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, studentID, sportID, sessionID, score, note, date)
	if err != nil {
		return nil, err
	}

	return &models.ScoreRecord{
		ID:         id,
		StudentID:  studentID,
		SportID:    sportID,
		SessionID:  sessionID,
		Score:      score,
		Note:       note,
		RecordDate: date,
		CreatedAt:  time.Now(),
	}, nil
}

// GetStudentHistory retrieves a student's full score history, oldest first
func (r *ScoreRepository) GetStudentHistory(studentID int64) ([]models.ScoreRecord, error) {
	query := `
		SELECT id, student_id, sport_id, session_id, score, note, record_date, created_at
		FROM score_records
		WHERE student_id = ?
		ORDER BY record_date ASC, id ASC
	`
	rows, err := r.db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ScoreRecord
	for rows.Next() {
		var rec models.ScoreRecord
		var sessionID sql.NullInt64

		err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.SportID,
			&sessionID,
			&rec.Score,
			&rec.Note,
			&rec.RecordDate,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if sessionID.Valid {
			rec.SessionID = &sessionID.Int64
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// TotalsByClass returns, per student on the class roster, the sum of
// all recorded scores across sports
func (r *ScoreRepository) TotalsByClass(classID int64) (map[int64]int, error) {
	query := `
		SELECT sr.student_id, COALESCE(SUM(sr.score), 0)
		FROM score_records sr
		JOIN enrollments e ON e.student_id = sr.student_id
		WHERE e.class_id = ? AND e.active = ?
		GROUP BY sr.student_id
	`
	rows, err := r.db.Query(query, classID, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[int64]int)
	for rows.Next() {
		var studentID int64
		var total int
		if err := rows.Scan(&studentID, &total); err != nil {
			return nil, err
		}
		totals[studentID] = total
	}
	return totals, rows.Err()
}
