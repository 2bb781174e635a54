package models

import "time"

// Student represents a student tracked by the system
type Student struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enrollment links a student to a class. A student has at most one
// active enrollment at a time; switching classes deactivates the old row.
type Enrollment struct {
	ID         int64
	ClassID    int64
	StudentID  int64
	Active     bool
	EnrolledAt time.Time
}

// Class represents a recurring teacher-led class with a roster of students
type Class struct {
	ID        int64
	TeacherID int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
