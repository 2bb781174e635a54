package service

import (
	"context"
	"log"

	"sportclash/internal/models"
	"sportclash/internal/repository"
)

// NotifierService emails students the achievements and medals they earn
// from a recorder write. It is read-only over the engine: the unlock set is
// recomputed before and after the write and the difference is reported.
// A nil *NotifierService is valid and does nothing.
type NotifierService struct {
	stats       *StatsService
	studentRepo *repository.StudentRepository
	email       *EmailService
}

// NewNotifierService creates a new unlock notifier. Returns nil when the
// email service is disabled so callers skip snapshotting entirely.
func NewNotifierService(stats *StatsService, studentRepo *repository.StudentRepository, email *EmailService) *NotifierService {
	if email == nil || !email.IsEnabled() {
		return nil
	}
	return &NotifierService{
		stats:       stats,
		studentRepo: studentRepo,
		email:       email,
	}
}

// Snapshot captures a student's current unlock set before a write. Errors
// are logged and yield nil; notification is best-effort and never blocks a
// recorder.
func (n *NotifierService) Snapshot(studentID int64) *models.Unlocks {
	if n == nil {
		return nil
	}
	unlocks, err := n.stats.GetUnlocks(studentID)
	if err != nil {
		log.Printf("unlock snapshot failed for student %d: %v", studentID, err)
		return nil
	}
	return unlocks
}

// NotifyNewUnlocks diffs the student's unlock set against the pre-write
// snapshot and emails any newly earned achievements or medals
func (n *NotifierService) NotifyNewUnlocks(ctx context.Context, studentID int64, before *models.Unlocks) {
	if n == nil || before == nil {
		return
	}

	after, err := n.stats.GetUnlocks(studentID)
	if err != nil {
		log.Printf("unlock recompute failed for student %d: %v", studentID, err)
		return
	}
	achievements, medals := DiffUnlocks(before, after)
	if len(achievements) == 0 && len(medals) == 0 {
		return
	}

	student, err := n.studentRepo.GetStudentByID(studentID)
	if err != nil || student == nil {
		log.Printf("unlock notify: student %d lookup failed: %v", studentID, err)
		return
	}
	if student.Email == "" {
		return
	}

	if err := n.email.SendUnlockEmail(ctx, student.Email, student.Name, achievements, medals); err != nil {
		log.Printf("unlock notify: send to student %d failed: %v", studentID, err)
	}
}
