package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"sportclash/internal/database"
)

// BackupData is the portable JSON snapshot of the fact tables. Catalog
// definitions are not exported; they are reference data reseeded from the
// binary.
type BackupData struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	Users      []UserBackup       `json:"users"`
	Classes    []ClassBackup      `json:"classes"`
	Students   []StudentBackup    `json:"students"`
	Enrollment []EnrollmentBackup `json:"enrollments"`
	Sessions   []SessionBackup    `json:"sessions"`
	Attendance []AttendanceBackup `json:"attendance_records"`
	Scores     []ScoreBackup      `json:"score_records"`
}

type UserBackup struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	Name          string    `json:"name"`
	OAuthProvider string    `json:"oauth_provider,omitempty"`
	OAuthSubject  string    `json:"oauth_subject,omitempty"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}

type ClassBackup struct {
	ID        int64     `json:"id"`
	TeacherID int64     `json:"teacher_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type StudentBackup struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type EnrollmentBackup struct {
	ID         int64     `json:"id"`
	ClassID    int64     `json:"class_id"`
	StudentID  int64     `json:"student_id"`
	Active     bool      `json:"active"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type SessionBackup struct {
	ID              int64      `json:"id"`
	ClassID         int64      `json:"class_id"`
	SportID         *int64     `json:"sport_id"`
	SessionDate     time.Time  `json:"session_date"`
	Subject         string     `json:"subject,omitempty"`
	AttendanceTaken bool       `json:"attendance_taken"`
	Scored          bool       `json:"scored"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type AttendanceBackup struct {
	ID         int64     `json:"id"`
	SessionID  int64     `json:"session_id"`
	StudentID  int64     `json:"student_id"`
	Present    bool      `json:"present"`
	Note       string    `json:"note,omitempty"`
	RecordDate time.Time `json:"record_date"`
}

type ScoreBackup struct {
	ID         int64     `json:"id"`
	StudentID  int64     `json:"student_id"`
	SportID    int64     `json:"sport_id"`
	SessionID  *int64    `json:"session_id"`
	Score      int       `json:"score"`
	Note       string    `json:"note,omitempty"`
	RecordDate time.Time `json:"record_date"`
}

// BackupService exports and restores the fact tables as a JSON snapshot
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Snapshot reads every fact table into a BackupData value
func (s *BackupService) Snapshot() (*BackupData, error) {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
	}

	steps := []struct {
		name string
		fn   func(*BackupData) error
	}{
		{"users", s.exportUsers},
		{"classes", s.exportClasses},
		{"students", s.exportStudents},
		{"enrollments", s.exportEnrollments},
		{"sessions", s.exportSessions},
		{"attendance", s.exportAttendance},
		{"scores", s.exportScores},
	}
	for _, step := range steps {
		if err := step.fn(backup); err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", step.name, err)
		}
	}
	return backup, nil
}

// Export writes a snapshot of the fact tables to outputPath
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup, err := s.Snapshot()
	if err != nil {
		return err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d users, %d classes, %d students, %d sessions, %d attendance records, %d score records",
		len(backup.Users), len(backup.Classes), len(backup.Students),
		len(backup.Sessions), len(backup.Attendance), len(backup.Scores))

	return nil
}

// Import restores a snapshot into the database, preserving original ids.
// Tables are imported in dependency order; the target should be empty.
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var backup BackupData
	if err := json.NewDecoder(file).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	if err := s.importUsers(backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := s.importClasses(backup.Classes); err != nil {
		return fmt.Errorf("failed to import classes: %w", err)
	}
	if err := s.importStudents(backup.Students); err != nil {
		return fmt.Errorf("failed to import students: %w", err)
	}
	if err := s.importEnrollments(backup.Enrollment); err != nil {
		return fmt.Errorf("failed to import enrollments: %w", err)
	}
	if err := s.importSessions(backup.Sessions); err != nil {
		return fmt.Errorf("failed to import sessions: %w", err)
	}
	if err := s.importAttendance(backup.Attendance); err != nil {
		return fmt.Errorf("failed to import attendance records: %w", err)
	}
	if err := s.importScores(backup.Scores); err != nil {
		return fmt.Errorf("failed to import score records: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	query := "SELECT id, email, password_hash, name, oauth_provider, oauth_subject, is_admin, created_at FROM users ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.OAuthProvider, &u.OAuthSubject, &u.IsAdmin, &u.CreatedAt); err != nil {
			return err
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

func (s *BackupService) exportClasses(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, teacher_id, name, created_at FROM classes ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c ClassBackup
		if err := rows.Scan(&c.ID, &c.TeacherID, &c.Name, &c.CreatedAt); err != nil {
			return err
		}
		backup.Classes = append(backup.Classes, c)
	}
	return rows.Err()
}

func (s *BackupService) exportStudents(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, name, email, created_at FROM students ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var st StudentBackup
		if err := rows.Scan(&st.ID, &st.Name, &st.Email, &st.CreatedAt); err != nil {
			return err
		}
		backup.Students = append(backup.Students, st)
	}
	return rows.Err()
}

func (s *BackupService) exportEnrollments(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, class_id, student_id, active, enrolled_at FROM enrollments ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e EnrollmentBackup
		if err := rows.Scan(&e.ID, &e.ClassID, &e.StudentID, &e.Active, &e.EnrolledAt); err != nil {
			return err
		}
		backup.Enrollment = append(backup.Enrollment, e)
	}
	return rows.Err()
}

func (s *BackupService) exportSessions(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, class_id, sport_id, session_date, subject, attendance_taken, scored, completed_at FROM class_sessions ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sess SessionBackup
		if err := rows.Scan(&sess.ID, &sess.ClassID, &sess.SportID, &sess.SessionDate, &sess.Subject, &sess.AttendanceTaken, &sess.Scored, &sess.CompletedAt); err != nil {
			return err
		}
		backup.Sessions = append(backup.Sessions, sess)
	}
	return rows.Err()
}

func (s *BackupService) exportAttendance(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, session_id, student_id, present, note, record_date FROM attendance_records ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a AttendanceBackup
		if err := rows.Scan(&a.ID, &a.SessionID, &a.StudentID, &a.Present, &a.Note, &a.RecordDate); err != nil {
			return err
		}
		backup.Attendance = append(backup.Attendance, a)
	}
	return rows.Err()
}

func (s *BackupService) exportScores(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, student_id, sport_id, session_id, score, note, record_date FROM score_records ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sc ScoreBackup
		if err := rows.Scan(&sc.ID, &sc.StudentID, &sc.SportID, &sc.SessionID, &sc.Score, &sc.Note, &sc.RecordDate); err != nil {
			return err
		}
		backup.Scores = append(backup.Scores, sc)
	}
	return rows.Err()
}

func (s *BackupService) importUsers(users []UserBackup) error {
	for _, u := range users {
		_, err := s.db.Exec(
			"INSERT INTO users (id, email, password_hash, name, oauth_provider, oauth_subject, is_admin, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			u.ID, u.Email, u.PasswordHash, u.Name, u.OAuthProvider, u.OAuthSubject, u.IsAdmin, u.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *BackupService) importClasses(classes []ClassBackup) error {
	for _, c := range classes {
		_, err := s.db.Exec(
			"INSERT INTO classes (id, teacher_id, name, created_at) VALUES (?, ?, ?, ?)",
			c.ID, c.TeacherID, c.Name, c.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *BackupService) importStudents(students []StudentBackup) error {
	for _, st := range students {
		_, err := s.db.Exec(
			"INSERT INTO students (id, name, email, created_at) VALUES (?, ?, ?, ?)",
			st.ID, st.Name, st.Email, st.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *BackupService) importEnrollments(enrollments []EnrollmentBackup) error {
	for _, e := range enrollments {
		_, err := s.db.Exec(
			"INSERT INTO enrollments (id, class_id, student_id, active, enrolled_at) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.ClassID, e.StudentID, e.Active, e.EnrolledAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *BackupService) importSessions(sessions []SessionBackup) error {
	for _, sess := range sessions {
		_, err := s.db.Exec(
			"INSERT INTO class_sessions (id, class_id, sport_id, session_date, subject, attendance_taken, scored, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			sess.ID, sess.ClassID, sess.SportID, sess.SessionDate, sess.Subject, sess.AttendanceTaken, sess.Scored, sess.CompletedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *BackupService) importAttendance(records []AttendanceBackup) error {
	for _, a := range records {
		_, err := s.db.Exec(
			"INSERT INTO attendance_records (id, session_id, student_id, present, note, record_date) VALUES (?, ?, ?, ?, ?, ?)",
			a.ID, a.SessionID, a.StudentID, a.Present, a.Note, a.RecordDate,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *BackupService) importScores(records []ScoreBackup) error {
	for _, sc := range records {
		_, err := s.db.Exec(
			"INSERT INTO score_records (id, student_id, sport_id, session_id, score, note, record_date) VALUES (?, ?, ?, ?, ?, ?, ?)",
			sc.ID, sc.StudentID, sc.SportID, sc.SessionID, sc.Score, sc.Note, sc.RecordDate,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
