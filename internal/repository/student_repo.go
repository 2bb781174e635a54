package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sportclash/internal/database"
	"sportclash/internal/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *database.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *database.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// CreateStudent inserts a new student
func (r *StudentRepository) CreateStudent(name, email string) (*models.Student, error) {
	query := "INSERT INTO students (name, email) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, name, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return &models.Student{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// GetStudentByID retrieves a student by id; nil when not found
func (r *StudentRepository) GetStudentByID(id int64) (*models.Student, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM students
		WHERE id = ?
	`
	student := &models.Student{}
	err := r.db.QueryRow(query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetActiveClassID returns the class a student is currently enrolled
// in, or 0 when the student has no active enrollment
func (r *StudentRepository) GetActiveClassID(studentID int64) (int64, error) {
	query := "SELECT class_id FROM enrollments WHERE student_id = ? AND active = ?"
	var classID int64
	err := r.db.QueryRow(query, studentID, true).Scan(&classID)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return classID, nil
}
