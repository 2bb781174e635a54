package service

import (
	"fmt"
	"math"

	"sportclash/internal/models"
	"sportclash/internal/repository"
)

// StatsService computes per-student aggregate statistics and unlock sets.
// Everything is recomputed from the full fact history on each call; nothing
// derived is ever persisted, so the rollups cannot drift from the records.
type StatsService struct {
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
	scoreRepo      *repository.ScoreRepository
	catalogRepo    *repository.CatalogRepository
	levelStep      int
	demoStudentID  int64
}

// NewStatsService creates a new statistics service. levelStep is the
// experience needed per level; demoStudentID names the bypass identity that
// unlocks the full catalog (0 disables the bypass).
func NewStatsService(studentRepo *repository.StudentRepository, attendanceRepo *repository.AttendanceRepository, scoreRepo *repository.ScoreRepository, catalogRepo *repository.CatalogRepository, levelStep int, demoStudentID int64) *StatsService {
	if levelStep <= 0 {
		levelStep = 100
	}
	return &StatsService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		scoreRepo:      scoreRepo,
		catalogRepo:    catalogRepo,
		levelStep:      levelStep,
		demoStudentID:  demoStudentID,
	}
}

// ComputeBase reduces a student's full attendance and score history to the
// base statistics vector. Experience and level are filled in later from the
// unlock set. attendance must be ordered oldest first by record date.
func ComputeBase(studentID int64, attendance []models.AttendanceRecord, scores []models.ScoreRecord) models.AggregateStatistics {
	stats := models.AggregateStatistics{
		StudentID:        studentID,
		PerSportTotals:   make(map[int64]int),
		PerSportAverages: make(map[int64]int),
	}

	presentCount := 0
	for _, rec := range attendance {
		if rec.Present {
			presentCount++
		}
	}
	stats.TotalClassesAttended = presentCount
	if len(attendance) > 0 {
		rate := float64(presentCount) / float64(len(attendance)) * 100
		stats.AttendanceRate = int(math.Round(rate))
	}

	// Streak scans backward from the most recent record and stops at the
	// first absence.
	for i := len(attendance) - 1; i >= 0; i-- {
		if !attendance[i].Present {
			break
		}
		stats.CurrentStreak++
	}

	perSportCounts := make(map[int64]int)
	for _, rec := range scores {
		stats.PerSportTotals[rec.SportID] += rec.Score
		perSportCounts[rec.SportID]++
		stats.TotalScore += rec.Score
		if rec.Score > stats.MaxSingleScore {
			stats.MaxSingleScore = rec.Score
		}
	}
	for sportID, total := range stats.PerSportTotals {
		avg := float64(total) / float64(perSportCounts[sportID])
		stats.PerSportAverages[sportID] = int(math.Round(avg))
	}
	stats.DistinctSports = len(perSportCounts)

	return stats
}

// GetStatistics computes the full statistics vector for a student,
// including experience and level derived from the unlock set
func (s *StatsService) GetStatistics(studentID int64) (*models.AggregateStatistics, error) {
	stats, _, err := s.compute(studentID)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetUnlocks computes the unlocked achievement, medal and cosmetic codes
// for a student
func (s *StatsService) GetUnlocks(studentID int64) (*models.Unlocks, error) {
	_, unlocks, err := s.compute(studentID)
	if err != nil {
		return nil, err
	}
	return unlocks, nil
}

func (s *StatsService) compute(studentID int64) (*models.AggregateStatistics, *models.Unlocks, error) {
	student, err := s.studentRepo.GetStudentByID(studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return nil, nil, models.NotFoundError{Resource: "student", ID: studentID}
	}

	attendance, err := s.attendanceRepo.GetStudentHistory(studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load attendance history: %w", err)
	}
	scores, err := s.scoreRepo.GetStudentHistory(studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load score history: %w", err)
	}
	catalog, err := s.catalogRepo.GetCatalog()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	stats := ComputeBase(studentID, attendance, scores)
	unlockAll := s.demoStudentID != 0 && studentID == s.demoStudentID
	unlocks, xp := EvaluateUnlocks(&stats, catalog, unlockAll)
	stats.TotalExperience = xp
	stats.Level = 1 + xp/s.levelStep

	return &stats, &unlocks, nil
}
