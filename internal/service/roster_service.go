package service

import (
	"fmt"

	"sportclash/internal/models"
	"sportclash/internal/repository"
	"sportclash/internal/validation"
)

// RosterService covers the minimal class and student management the
// recorders need: creating classes, creating students, and enrolling a
// student in a class.
type RosterService struct {
	classRepo   *repository.ClassRepository
	studentRepo *repository.StudentRepository
}

// NewRosterService creates a new roster service
func NewRosterService(classRepo *repository.ClassRepository, studentRepo *repository.StudentRepository) *RosterService {
	return &RosterService{
		classRepo:   classRepo,
		studentRepo: studentRepo,
	}
}

// CreateClass creates a class owned by a teacher
func (s *RosterService) CreateClass(teacherID int64, name string) (*models.Class, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	class, err := s.classRepo.CreateClass(teacherID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	return class, nil
}

// CreateStudent creates a student. Email is optional and only used for
// unlock notifications.
func (s *RosterService) CreateStudent(name, email string) (*models.Student, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.CreateStudent(name, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

// Enroll makes a student an active member of a class. A student is in at
// most one class at a time; any prior enrollment is deactivated.
func (s *RosterService) Enroll(classID, studentID int64) error {
	class, err := s.classRepo.GetClassByID(classID)
	if err != nil {
		return fmt.Errorf("failed to get class: %w", err)
	}
	if class == nil {
		return models.NotFoundError{Resource: "class", ID: classID}
	}

	student, err := s.studentRepo.GetStudentByID(studentID)
	if err != nil {
		return fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return models.NotFoundError{Resource: "student", ID: studentID}
	}

	if err := s.classRepo.Enroll(classID, studentID); err != nil {
		return fmt.Errorf("failed to enroll student: %w", err)
	}
	return nil
}

// GetRoster lists the active students of a class
func (s *RosterService) GetRoster(classID int64) ([]models.Student, error) {
	class, err := s.classRepo.GetClassByID(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	if class == nil {
		return nil, models.NotFoundError{Resource: "class", ID: classID}
	}
	return s.classRepo.GetRoster(classID)
}
