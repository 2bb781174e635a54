package repository

import (
	"time"

	"sportclash/internal/database"
	"sportclash/internal/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *database.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *database.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// UpsertRecord writes an attendance record keyed on (session, student).
// A second write for the same key overwrites the presence value, so
// concurrent writers converge to a last-write-wins outcome per key.
func (r *AttendanceRepository) UpsertRecord(sessionID, studentID int64, present bool, note string, date time.Time) error {
	query := r.db.Dialect.UpsertAttendanceQuery()
	_, err := r.db.Exec(query, sessionID, studentID, present, note, date)
	return err
}

// GetSessionRecords retrieves all attendance records for a session
func (r *AttendanceRepository) GetSessionRecords(sessionID int64) ([]models.AttendanceRecord, error) {
	query := `
		SELECT id, session_id, student_id, present, note, record_date, created_at, updated_at
		FROM attendance_records
		WHERE session_id = ?
		ORDER BY student_id ASC
	`
	return r.queryRecords(query, sessionID)
}

// GetStudentHistory retrieves a student's full attendance history,
// oldest first so streak scans can walk backwards from the end
func (r *AttendanceRepository) GetStudentHistory(studentID int64) ([]models.AttendanceRecord, error) {
	query := `
		SELECT id, session_id, student_id, present, note, record_date, created_at, updated_at
		FROM attendance_records
		WHERE student_id = ?
		ORDER BY record_date ASC, id ASC
	`
	return r.queryRecords(query, studentID)
}

// AttendedCountsByClass returns, per student on the class roster, the
// number of sessions attended (present = true)
func (r *AttendanceRepository) AttendedCountsByClass(classID int64) (map[int64]int, error) {
	query := `
		SELECT ar.student_id, COUNT(*)
		FROM attendance_records ar
		JOIN class_sessions cs ON cs.id = ar.session_id
		WHERE cs.class_id = ? AND ar.present = ?
		GROUP BY ar.student_id
	`
	rows, err := r.db.Query(query, classID, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var studentID int64
		var count int
		if err := rows.Scan(&studentID, &count); err != nil {
			return nil, err
		}
		counts[studentID] = count
	}
	return counts, rows.Err()
}

func (r *AttendanceRepository) queryRecords(query string, arg int64) ([]models.AttendanceRecord, error) {
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.StudentID,
			&rec.Present,
			&rec.Note,
			&rec.RecordDate,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
