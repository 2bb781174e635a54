package service

import (
	"fmt"
	"sort"

	"sportclash/internal/models"
	"sportclash/internal/repository"
)

// RankingService orders a class roster by total score with deterministic
// tie-breaks. Rankings are derived per query from the score and attendance
// history, never stored.
type RankingService struct {
	classRepo      *repository.ClassRepository
	studentRepo    *repository.StudentRepository
	scoreRepo      *repository.ScoreRepository
	attendanceRepo *repository.AttendanceRepository
}

// NewRankingService creates a new ranking service
func NewRankingService(classRepo *repository.ClassRepository, studentRepo *repository.StudentRepository, scoreRepo *repository.ScoreRepository, attendanceRepo *repository.AttendanceRepository) *RankingService {
	return &RankingService{
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		scoreRepo:      scoreRepo,
		attendanceRepo: attendanceRepo,
	}
}

// RankForStudent ranks the class the student is actively enrolled in and
// reports the student's own entry alongside the list
func (s *RankingService) RankForStudent(studentID int64) (*models.ClassRanking, error) {
	student, err := s.studentRepo.GetStudentByID(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student == nil {
		return nil, models.NotFoundError{Resource: "student", ID: studentID}
	}
	classID, err := s.studentRepo.GetActiveClassID(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve enrollment: %w", err)
	}
	if classID == 0 {
		return nil, models.NotFoundError{Resource: "enrollment", ID: studentID}
	}
	return s.RankClass(classID, studentID)
}

// RankClass ranks the active roster of a class. requesterStudentID, when
// non-zero, selects the entry returned alongside the full list so a caller
// rendering a top-N slice still sees the requesting student's position.
func (s *RankingService) RankClass(classID, requesterStudentID int64) (*models.ClassRanking, error) {
	class, err := s.classRepo.GetClassByID(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	if class == nil {
		return nil, models.NotFoundError{Resource: "class", ID: classID}
	}

	roster, err := s.classRepo.GetRoster(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	totals, err := s.scoreRepo.TotalsByClass(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to load score totals: %w", err)
	}
	attended, err := s.attendanceRepo.AttendedCountsByClass(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance counts: %w", err)
	}

	entries := make([]models.RankingEntry, 0, len(roster))
	for _, student := range roster {
		entries = append(entries, models.RankingEntry{
			StudentID:            student.ID,
			StudentName:          student.Name,
			TotalScore:           totals[student.ID],
			TotalClassesAttended: attended[student.ID],
		})
	}
	RankEntries(entries)

	ranking := &models.ClassRanking{
		ClassID: classID,
		Entries: entries,
	}
	if requesterStudentID != 0 {
		for i := range entries {
			if entries[i].StudentID == requesterStudentID {
				ranking.Requester = &entries[i]
				break
			}
		}
	}
	return ranking, nil
}

// RankEntries sorts entries in place and assigns 1-based positions. The
// order is total score descending, then classes attended descending, then
// student id ascending, so the ranking is a strict total order: no gaps and
// no shared positions even on exact score ties.
func RankEntries(entries []models.RankingEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		if entries[i].TotalClassesAttended != entries[j].TotalClassesAttended {
			return entries[i].TotalClassesAttended > entries[j].TotalClassesAttended
		}
		return entries[i].StudentID < entries[j].StudentID
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
}
