package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sportclash/internal/database"
	"sportclash/internal/models"
)

// ClassRepository handles database operations for classes and rosters
type ClassRepository struct {
	db *database.DB
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *database.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// CreateClass inserts a new class owned by a teacher
func (r *ClassRepository) CreateClass(teacherID int64, name string) (*models.Class, error) {
	query := "INSERT INTO classes (teacher_id, name) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, teacherID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	return &models.Class{
		ID:        id,
		TeacherID: teacherID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// GetClassByID retrieves a class by id; nil when not found
func (r *ClassRepository) GetClassByID(id int64) (*models.Class, error) {
	query := `
		SELECT id, teacher_id, name, created_at, updated_at
		FROM classes
		WHERE id = ?
	`
	class := &models.Class{}
	err := r.db.QueryRow(query, id).Scan(
		&class.ID,
		&class.TeacherID,
		&class.Name,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return class, nil
}

// Enroll puts a student on a class roster. A student is on at most one
// roster at a time, so any other active enrollment is deactivated first.
func (r *ClassRepository) Enroll(classID, studentID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin enrollment: %w", err)
	}
	defer tx.Rollback()

	deactivate := "UPDATE enrollments SET active = ? WHERE student_id = ? AND active = ?"
	if _, err := tx.Exec(deactivate, false, studentID, true); err != nil {
		return fmt.Errorf("failed to deactivate prior enrollment: %w", err)
	}

	insert := "INSERT INTO enrollments (class_id, student_id, active) VALUES (?, ?, ?)"
	if _, err := tx.Exec(insert, classID, studentID, true); err != nil {
		return fmt.Errorf("failed to enroll student: %w", err)
	}

	return tx.Commit()
}

// GetRoster retrieves the students actively enrolled in a class
func (r *ClassRepository) GetRoster(classID int64) ([]models.Student, error) {
	query := `
		SELECT s.id, s.name, s.email, s.created_at, s.updated_at
		FROM students s
		JOIN enrollments e ON e.student_id = s.id
		WHERE e.class_id = ? AND e.active = ?
		ORDER BY s.id ASC
	`
	rows, err := r.db.Query(query, classID, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		roster = append(roster, s)
	}
	return roster, rows.Err()
}

// GetRosterIDs retrieves the set of student ids on a class roster
func (r *ClassRepository) GetRosterIDs(classID int64) (map[int64]bool, error) {
	query := "SELECT student_id FROM enrollments WHERE class_id = ? AND active = ?"
	rows, err := r.db.Query(query, classID, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
