package service

import (
	"testing"
	"time"

	"sportclash/internal/models"
)

func attRec(day int, present bool) models.AttendanceRecord {
	return models.AttendanceRecord{
		StudentID:  1,
		Present:    present,
		RecordDate: time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
	}
}

func scoreRec(sportID int64, score int) models.ScoreRecord {
	return models.ScoreRecord{StudentID: 1, SportID: sportID, Score: score}
}

func TestComputeBaseZeroHistory(t *testing.T) {
	stats := ComputeBase(1, nil, nil)

	if stats.TotalClassesAttended != 0 {
		t.Errorf("TotalClassesAttended = %d, want 0", stats.TotalClassesAttended)
	}
	if stats.AttendanceRate != 0 {
		t.Errorf("AttendanceRate = %d, want 0", stats.AttendanceRate)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", stats.CurrentStreak)
	}
	if stats.MaxSingleScore != 0 {
		t.Errorf("MaxSingleScore = %d, want 0", stats.MaxSingleScore)
	}
	if stats.DistinctSports != 0 {
		t.Errorf("DistinctSports = %d, want 0", stats.DistinctSports)
	}
	if stats.TotalScore != 0 {
		t.Errorf("TotalScore = %d, want 0", stats.TotalScore)
	}
}

func TestComputeBaseAttendanceRate(t *testing.T) {
	tests := []struct {
		name       string
		attendance []models.AttendanceRecord
		wantRate   int
		wantTotal  int
	}{
		{
			name:       "all present",
			attendance: []models.AttendanceRecord{attRec(1, true), attRec(2, true)},
			wantRate:   100,
			wantTotal:  2,
		},
		{
			name:       "half present",
			attendance: []models.AttendanceRecord{attRec(1, true), attRec(2, false)},
			wantRate:   50,
			wantTotal:  1,
		},
		{
			name: "two thirds rounds to 67",
			attendance: []models.AttendanceRecord{
				attRec(1, true), attRec(2, true), attRec(3, false),
			},
			wantRate:  67,
			wantTotal: 2,
		},
		{
			name: "one third rounds to 33",
			attendance: []models.AttendanceRecord{
				attRec(1, true), attRec(2, false), attRec(3, false),
			},
			wantRate:  33,
			wantTotal: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeBase(1, tt.attendance, nil)
			if stats.AttendanceRate != tt.wantRate {
				t.Errorf("AttendanceRate = %d, want %d", stats.AttendanceRate, tt.wantRate)
			}
			if stats.TotalClassesAttended != tt.wantTotal {
				t.Errorf("TotalClassesAttended = %d, want %d", stats.TotalClassesAttended, tt.wantTotal)
			}
		})
	}
}

func TestComputeBaseStreak(t *testing.T) {
	tests := []struct {
		name       string
		attendance []models.AttendanceRecord
		want       int
	}{
		{
			name:       "streak runs to the oldest record",
			attendance: []models.AttendanceRecord{attRec(1, true), attRec(2, true), attRec(3, true)},
			want:       3,
		},
		{
			name:       "absence resets the streak",
			attendance: []models.AttendanceRecord{attRec(1, true), attRec(2, false), attRec(3, true), attRec(4, true)},
			want:       2,
		},
		{
			name:       "latest record absent",
			attendance: []models.AttendanceRecord{attRec(1, true), attRec(2, true), attRec(3, false)},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeBase(1, tt.attendance, nil)
			if stats.CurrentStreak != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", stats.CurrentStreak, tt.want)
			}
		})
	}
}

func TestComputeBaseScores(t *testing.T) {
	scores := []models.ScoreRecord{
		scoreRec(1, 80),
		scoreRec(1, 85), // avg 82.5 rounds to 83
		scoreRec(2, 95),
		scoreRec(3, 40),
	}
	stats := ComputeBase(1, nil, scores)

	if stats.TotalScore != 300 {
		t.Errorf("TotalScore = %d, want 300", stats.TotalScore)
	}
	if stats.MaxSingleScore != 95 {
		t.Errorf("MaxSingleScore = %d, want 95", stats.MaxSingleScore)
	}
	if stats.DistinctSports != 3 {
		t.Errorf("DistinctSports = %d, want 3", stats.DistinctSports)
	}
	if got := stats.PerSportTotals[1]; got != 165 {
		t.Errorf("PerSportTotals[1] = %d, want 165", got)
	}
	if got := stats.PerSportAverages[1]; got != 83 {
		t.Errorf("PerSportAverages[1] = %d, want 83", got)
	}
	if got := stats.PerSportAverages[2]; got != 95 {
		t.Errorf("PerSportAverages[2] = %d, want 95", got)
	}
}
