package models

import "time"

// ClassSession represents one scheduled occurrence of a class on a
// specific date. SportID is nil for free/open sessions, which carry no
// implicit sport; scoring such a session requires an explicit sport.
type ClassSession struct {
	ID              int64
	ClassID         int64
	SportID         *int64
	SessionDate     time.Time
	Subject         string
	AttendanceTaken bool
	Scored          bool
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsCompleted reports whether the session has reached its terminal state.
// Completed sessions accept no further attendance or score writes.
func (s *ClassSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// IsOpenSport reports whether the session uses the free/open sentinel,
// i.e. has no assigned sport.
func (s *ClassSession) IsOpenSport() bool {
	return s.SportID == nil
}
