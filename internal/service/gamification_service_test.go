package service

import (
	"testing"

	"sportclash/internal/models"
)

func testCatalog() *models.Catalog {
	achievement := func(code string, metric models.Metric, threshold, xp int) models.AchievementDef {
		return models.AchievementDef{
			Code:      code,
			Label:     code,
			Rarity:    models.RarityCommon,
			Predicate: models.ThresholdPredicate{Metric: metric, Threshold: threshold},
			XPReward:  xp,
		}
	}
	return &models.Catalog{
		Achievements: []models.AchievementDef{
			achievement("first_class", models.MetricClassesAttended, 1, 10),
			achievement("ten_classes", models.MetricClassesAttended, 10, 25),
			achievement("twenty_five_classes", models.MetricClassesAttended, 25, 50),
			achievement("fifty_classes", models.MetricClassesAttended, 50, 100),
			achievement("hundred_classes", models.MetricClassesAttended, 100, 250),
			achievement("star_gold", models.MetricMaxScore, 95, 75),
		},
		Medals: []models.MedalDef{
			{
				Code:      "gold_attendance",
				Label:     "gold_attendance",
				Rarity:    models.RarityEpic,
				Predicate: models.ThresholdPredicate{Metric: models.MetricAttendanceRate, Threshold: 95},
				XPReward:  50,
			},
		},
		Cosmetics: []models.CosmeticDef{
			{
				Code:      "bg_turf",
				Category:  models.CosmeticBackground,
				Rarity:    models.RarityCommon,
				Predicate: models.CosmeticPredicate{Kind: models.UnlockByXP, Threshold: 100},
			},
			{
				Code:      "anim_confetti",
				Category:  models.CosmeticAnimation,
				Rarity:    models.RarityRare,
				Predicate: models.CosmeticPredicate{Kind: models.UnlockByAchievement, RefCode: "fifty_classes"},
			},
			{
				Code:      "anim_fireworks",
				Category:  models.CosmeticAnimation,
				Rarity:    models.RarityEpic,
				Predicate: models.CosmeticPredicate{Kind: models.UnlockByMedal, RefCode: "gold_attendance"},
			},
		},
	}
}

func TestEvaluateUnlocksEmptyStats(t *testing.T) {
	stats := ComputeBase(1, nil, nil)
	unlocks, xp := EvaluateUnlocks(&stats, testCatalog(), false)

	if len(unlocks.Achievements) != 0 || len(unlocks.Medals) != 0 || len(unlocks.Cosmetics) != 0 {
		t.Errorf("expected empty unlock sets, got %+v", unlocks)
	}
	if xp != 0 {
		t.Errorf("xp = %d, want 0", xp)
	}
}

func TestEvaluateUnlocksThresholdGrowth(t *testing.T) {
	catalog := testCatalog()
	prevCount := -1
	for _, attended := range []int{1, 10, 25, 50, 100} {
		stats := models.AggregateStatistics{TotalClassesAttended: attended}
		unlocks, _ := EvaluateUnlocks(&stats, catalog, false)
		if len(unlocks.Achievements) <= prevCount {
			t.Fatalf("attended=%d: achievement count %d did not grow past %d",
				attended, len(unlocks.Achievements), prevCount)
		}
		prevCount = len(unlocks.Achievements)
	}
}

func TestEvaluateUnlocksMonotonic(t *testing.T) {
	catalog := testCatalog()
	smaller := models.AggregateStatistics{
		TotalClassesAttended: 10,
		AttendanceRate:       80,
		MaxSingleScore:       90,
	}
	larger := models.AggregateStatistics{
		TotalClassesAttended: 60,
		AttendanceRate:       96,
		MaxSingleScore:       98,
	}

	before, _ := EvaluateUnlocks(&smaller, catalog, false)
	after, _ := EvaluateUnlocks(&larger, catalog, false)

	for _, code := range before.Achievements {
		if !after.HasAchievement(code) {
			t.Errorf("achievement %s was revoked when every metric grew", code)
		}
	}
	for _, code := range before.Medals {
		if !after.HasMedal(code) {
			t.Errorf("medal %s was revoked when every metric grew", code)
		}
	}
}

func TestEvaluateUnlocksCosmetics(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name  string
		stats models.AggregateStatistics
		want  []string
	}{
		{
			name:  "no unlocks",
			stats: models.AggregateStatistics{TotalClassesAttended: 5},
			want:  nil,
		},
		{
			// first_class + ten_classes + twenty_five_classes + fifty_classes
			// = 185 xp, past the bg_turf threshold; fifty_classes also
			// unlocks anim_confetti by cross-reference.
			name:  "xp threshold and achievement reference",
			stats: models.AggregateStatistics{TotalClassesAttended: 50},
			want:  []string{"bg_turf", "anim_confetti"},
		},
		{
			name:  "medal reference",
			stats: models.AggregateStatistics{TotalClassesAttended: 50, AttendanceRate: 95},
			want:  []string{"bg_turf", "anim_confetti", "anim_fireworks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unlocks, _ := EvaluateUnlocks(&tt.stats, catalog, false)
			if len(unlocks.Cosmetics) != len(tt.want) {
				t.Fatalf("cosmetics = %v, want %v", unlocks.Cosmetics, tt.want)
			}
			for i, code := range tt.want {
				if unlocks.Cosmetics[i] != code {
					t.Errorf("cosmetics[%d] = %s, want %s", i, unlocks.Cosmetics[i], code)
				}
			}
		})
	}
}

func TestEvaluateUnlocksBypass(t *testing.T) {
	catalog := testCatalog()
	stats := ComputeBase(1, nil, nil)
	unlocks, xp := EvaluateUnlocks(&stats, catalog, true)

	if len(unlocks.Achievements) != len(catalog.Achievements) {
		t.Errorf("achievements = %d, want all %d", len(unlocks.Achievements), len(catalog.Achievements))
	}
	if len(unlocks.Medals) != len(catalog.Medals) {
		t.Errorf("medals = %d, want all %d", len(unlocks.Medals), len(catalog.Medals))
	}
	if len(unlocks.Cosmetics) != len(catalog.Cosmetics) {
		t.Errorf("cosmetics = %d, want all %d", len(unlocks.Cosmetics), len(catalog.Cosmetics))
	}
	if xp == 0 {
		t.Error("bypass should still accumulate the catalog's experience rewards")
	}
}

func TestDiffUnlocks(t *testing.T) {
	before := &models.Unlocks{Achievements: []string{"first_class"}, Medals: nil}
	after := &models.Unlocks{
		Achievements: []string{"first_class", "ten_classes"},
		Medals:       []string{"gold_attendance"},
	}

	achievements, medals := DiffUnlocks(before, after)
	if len(achievements) != 1 || achievements[0] != "ten_classes" {
		t.Errorf("new achievements = %v, want [ten_classes]", achievements)
	}
	if len(medals) != 1 || medals[0] != "gold_attendance" {
		t.Errorf("new medals = %v, want [gold_attendance]", medals)
	}
}
