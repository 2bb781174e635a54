package handlers

import (
	"time"

	"sportclash/internal/models"
)

// Response shapes for the JSON API. Ids are numeric; dates are YYYY-MM-DD.

type sessionView struct {
	ID              int64  `json:"id"`
	ClassID         int64  `json:"classId"`
	SportID         *int64 `json:"sportId"`
	Date            string `json:"date"`
	Subject         string `json:"subject"`
	State           string `json:"state"`
	AttendanceTaken bool   `json:"attendanceTaken"`
	Scored          bool   `json:"scored"`
	CompletedAt     string `json:"completedAt,omitempty"`
}

func newSessionView(s *models.ClassSession) sessionView {
	view := sessionView{
		ID:              s.ID,
		ClassID:         s.ClassID,
		SportID:         s.SportID,
		Date:            s.SessionDate.Format(dateLayout),
		Subject:         s.Subject,
		State:           "scheduled",
		AttendanceTaken: s.AttendanceTaken,
		Scored:          s.Scored,
	}
	if s.IsCompleted() {
		view.State = "completed"
		view.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339)
	}
	return view
}

type attendanceRecordView struct {
	StudentID int64  `json:"studentId"`
	Present   bool   `json:"present"`
	Note      string `json:"note,omitempty"`
	Date      string `json:"date"`
}

func newAttendanceRecordViews(records []models.AttendanceRecord) []attendanceRecordView {
	views := make([]attendanceRecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, attendanceRecordView{
			StudentID: rec.StudentID,
			Present:   rec.Present,
			Note:      rec.Note,
			Date:      rec.RecordDate.Format(dateLayout),
		})
	}
	return views
}

type attendanceSummaryView struct {
	PresentCount int                 `json:"presentCount"`
	AbsentCount  int                 `json:"absentCount"`
	Rejected     []rejectedEntryView `json:"rejected"`
}

type rejectedEntryView struct {
	StudentID int64  `json:"studentId"`
	Reason    string `json:"reason"`
}

func newRejectedViews(entries []models.RejectedEntry) []rejectedEntryView {
	views := make([]rejectedEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, rejectedEntryView{StudentID: e.StudentID, Reason: e.Reason})
	}
	return views
}

type scoreRecordView struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId"`
	SportID   int64  `json:"sportId"`
	SessionID *int64 `json:"sessionId,omitempty"`
	Score     int    `json:"score"`
	Note      string `json:"note,omitempty"`
	Date      string `json:"date"`
}

func newScoreRecordView(rec *models.ScoreRecord) scoreRecordView {
	return scoreRecordView{
		ID:        rec.ID,
		StudentID: rec.StudentID,
		SportID:   rec.SportID,
		SessionID: rec.SessionID,
		Score:     rec.Score,
		Note:      rec.Note,
		Date:      rec.RecordDate.Format(dateLayout),
	}
}

type batchScoreResultView struct {
	Saved  []scoreRecordView   `json:"saved"`
	Failed []rejectedEntryView `json:"failed"`
}

type statisticsView struct {
	StudentID            int64         `json:"studentId"`
	TotalClassesAttended int           `json:"totalClassesAttended"`
	AttendanceRate       int           `json:"attendanceRate"`
	CurrentStreak        int           `json:"currentStreak"`
	PerSportTotals       map[int64]int `json:"perSportTotals"`
	PerSportAverages     map[int64]int `json:"perSportAverages"`
	MaxSingleScore       int           `json:"maxSingleScore"`
	DistinctSports       int           `json:"distinctSports"`
	TotalScore           int           `json:"totalScore"`
	TotalExperience      int           `json:"totalExperience"`
	Level                int           `json:"level"`
}

func newStatisticsView(stats *models.AggregateStatistics) statisticsView {
	return statisticsView{
		StudentID:            stats.StudentID,
		TotalClassesAttended: stats.TotalClassesAttended,
		AttendanceRate:       stats.AttendanceRate,
		CurrentStreak:        stats.CurrentStreak,
		PerSportTotals:       stats.PerSportTotals,
		PerSportAverages:     stats.PerSportAverages,
		MaxSingleScore:       stats.MaxSingleScore,
		DistinctSports:       stats.DistinctSports,
		TotalScore:           stats.TotalScore,
		TotalExperience:      stats.TotalExperience,
		Level:                stats.Level,
	}
}

type unlocksView struct {
	Achievements []string `json:"achievements"`
	Medals       []string `json:"medals"`
	Cosmetics    []string `json:"cosmetics"`
}

func newUnlocksView(u *models.Unlocks) unlocksView {
	view := unlocksView{
		Achievements: u.Achievements,
		Medals:       u.Medals,
		Cosmetics:    u.Cosmetics,
	}
	if view.Achievements == nil {
		view.Achievements = []string{}
	}
	if view.Medals == nil {
		view.Medals = []string{}
	}
	if view.Cosmetics == nil {
		view.Cosmetics = []string{}
	}
	return view
}

type rankingEntryView struct {
	StudentID            int64  `json:"studentId"`
	StudentName          string `json:"studentName"`
	TotalScore           int    `json:"totalScore"`
	TotalClassesAttended int    `json:"totalClassesAttended"`
	Position             int    `json:"position"`
}

type rankingView struct {
	ClassID   int64              `json:"classId"`
	Entries   []rankingEntryView `json:"entries"`
	Requester *rankingEntryView  `json:"requester,omitempty"`
}

func newRankingView(ranking *models.ClassRanking) rankingView {
	view := rankingView{
		ClassID: ranking.ClassID,
		Entries: make([]rankingEntryView, 0, len(ranking.Entries)),
	}
	for _, e := range ranking.Entries {
		view.Entries = append(view.Entries, rankingEntryView(e))
	}
	if ranking.Requester != nil {
		entry := rankingEntryView(*ranking.Requester)
		view.Requester = &entry
	}
	return view
}
