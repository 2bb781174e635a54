package models

import (
	"errors"
	"testing"
	"time"
)

func TestClassSessionIsCompleted(t *testing.T) {
	completed := time.Now()

	tests := []struct {
		name        string
		completedAt *time.Time
		want        bool
	}{
		{
			name:        "scheduled session",
			completedAt: nil,
			want:        false,
		},
		{
			name:        "completed session",
			completedAt: &completed,
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := ClassSession{
				ID:          1,
				ClassID:     1,
				SessionDate: time.Now(),
				CompletedAt: tt.completedAt,
			}
			if got := session.IsCompleted(); got != tt.want {
				t.Errorf("ClassSession.IsCompleted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassSessionIsOpenSport(t *testing.T) {
	sportID := int64(3)

	session := ClassSession{ID: 1, SportID: nil}
	if !session.IsOpenSport() {
		t.Error("session without sport should be open")
	}

	session.SportID = &sportID
	if session.IsOpenSport() {
		t.Error("session with sport should not be open")
	}
}

func TestRarityOrder(t *testing.T) {
	ordered := []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Order() >= ordered[i].Order() {
			t.Errorf("rarity %s should order below %s", ordered[i-1], ordered[i])
		}
	}

	if Rarity("unknown").Order() >= RarityCommon.Order() {
		t.Error("unknown rarity should order below common")
	}
}

func TestMetricValid(t *testing.T) {
	tests := []struct {
		metric Metric
		want   bool
	}{
		{MetricClassesAttended, true},
		{MetricAttendanceRate, true},
		{MetricStreak, true},
		{MetricMaxScore, true},
		{MetricDistinctSports, true},
		{MetricTotalScore, true},
		{Metric("points"), false},
		{Metric(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			if got := tt.metric.Valid(); got != tt.want {
				t.Errorf("Metric(%q).Valid() = %v, want %v", tt.metric, got, tt.want)
			}
		})
	}
}

func TestStatisticsMetric(t *testing.T) {
	stats := AggregateStatistics{
		TotalClassesAttended: 12,
		AttendanceRate:       95,
		CurrentStreak:        4,
		MaxSingleScore:       88,
		DistinctSports:       3,
		TotalScore:           412,
	}

	tests := []struct {
		metric Metric
		want   int
	}{
		{MetricClassesAttended, 12},
		{MetricAttendanceRate, 95},
		{MetricStreak, 4},
		{MetricMaxScore, 88},
		{MetricDistinctSports, 3},
		{MetricTotalScore, 412},
		{Metric("bogus"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			if got := stats.Metric(tt.metric); got != tt.want {
				t.Errorf("Metric(%s) = %d, want %d", tt.metric, got, tt.want)
			}
		})
	}
}

func TestUnlocksLookups(t *testing.T) {
	unlocks := Unlocks{
		Achievements: []string{"first_class", "ten_classes"},
		Medals:       []string{"gold_attendance"},
	}

	if !unlocks.HasAchievement("first_class") {
		t.Error("expected first_class to be unlocked")
	}
	if unlocks.HasAchievement("hundred_classes") {
		t.Error("did not expect hundred_classes to be unlocked")
	}
	if !unlocks.HasMedal("gold_attendance") {
		t.Error("expected gold_attendance to be unlocked")
	}
	if unlocks.HasMedal("silver_attendance") {
		t.Error("did not expect silver_attendance to be unlocked")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = ValidationError{Field: "score", Message: "must be between 0 and 100"}
	if !IsValidation(err) {
		t.Error("expected validation error to match")
	}
	if IsNotFound(err) {
		t.Error("validation error should not match not-found")
	}

	err = NotFoundError{Resource: "session", ID: 42}
	if !IsNotFound(err) {
		t.Error("expected not-found error to match")
	}
	if err.Error() != "session 42 not found" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	wrapped := errors.Join(errors.New("write failed"), ErrSessionClosed)
	if !errors.Is(wrapped, ErrSessionClosed) {
		t.Error("expected wrapped session-closed error to match")
	}
}
