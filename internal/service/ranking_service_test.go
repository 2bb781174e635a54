package service

import (
	"testing"

	"sportclash/internal/models"
)

func TestRankEntriesOrdering(t *testing.T) {
	entries := []models.RankingEntry{
		{StudentID: 1, TotalScore: 120, TotalClassesAttended: 5},
		{StudentID: 2, TotalScore: 300, TotalClassesAttended: 8},
		{StudentID: 3, TotalScore: 300, TotalClassesAttended: 10},
		{StudentID: 4, TotalScore: 50, TotalClassesAttended: 12},
	}

	RankEntries(entries)

	wantOrder := []int64{3, 2, 1, 4}
	for i, want := range wantOrder {
		if entries[i].StudentID != want {
			t.Errorf("position %d: student = %d, want %d", i+1, entries[i].StudentID, want)
		}
		if entries[i].Position != i+1 {
			t.Errorf("entry %d: position = %d, want %d", i, entries[i].Position, i+1)
		}
	}
}

func TestRankEntriesAttendanceTieBreak(t *testing.T) {
	// Equal total score: the student who attended more classes ranks higher.
	entries := []models.RankingEntry{
		{StudentID: 1, TotalScore: 300, TotalClassesAttended: 8},
		{StudentID: 2, TotalScore: 300, TotalClassesAttended: 10},
	}

	RankEntries(entries)

	if entries[0].StudentID != 2 {
		t.Errorf("first = student %d, want 2", entries[0].StudentID)
	}
	if entries[0].Position != 1 || entries[1].Position != 2 {
		t.Errorf("positions = %d,%d, want 1,2", entries[0].Position, entries[1].Position)
	}
}

func TestRankEntriesStudentIDTieBreak(t *testing.T) {
	entries := []models.RankingEntry{
		{StudentID: 9, TotalScore: 100, TotalClassesAttended: 4},
		{StudentID: 3, TotalScore: 100, TotalClassesAttended: 4},
	}

	RankEntries(entries)

	if entries[0].StudentID != 3 {
		t.Errorf("first = student %d, want 3 (lower id wins exact ties)", entries[0].StudentID)
	}
}

func TestRankEntriesTotalOrder(t *testing.T) {
	entries := []models.RankingEntry{
		{StudentID: 1, TotalScore: 200, TotalClassesAttended: 3},
		{StudentID: 2, TotalScore: 200, TotalClassesAttended: 3},
		{StudentID: 3, TotalScore: 200, TotalClassesAttended: 3},
		{StudentID: 4, TotalScore: 10, TotalClassesAttended: 20},
	}

	RankEntries(entries)

	seen := make(map[int]bool)
	for i, e := range entries {
		if seen[e.Position] {
			t.Errorf("position %d assigned twice", e.Position)
		}
		seen[e.Position] = true
		if i > 0 && entries[i-1].TotalScore < e.TotalScore {
			t.Errorf("entry %d (score %d) ranked above entry with score %d",
				i-1, entries[i-1].TotalScore, e.TotalScore)
		}
	}
}
