package service

import (
	"sportclash/internal/models"
)

// EvaluateUnlocks evaluates every catalog predicate against the statistics
// vector and returns the unlocked codes plus the total experience earned
// from the unlocked achievements and medals.
//
// Achievement and medal predicates are threshold checks (metric >= N) over
// metrics that only grow, so a recomputation can never revoke an unlock.
// Cosmetics are evaluated last: their predicates may reference the
// experience total or an achievement/medal that must already be unlocked.
//
// unlockAll is the bypass policy for the demo identity; it grants the full
// catalog without consulting any predicate.
func EvaluateUnlocks(stats *models.AggregateStatistics, catalog *models.Catalog, unlockAll bool) (models.Unlocks, int) {
	unlocks := models.Unlocks{}
	xp := 0

	for _, def := range catalog.Achievements {
		if unlockAll || thresholdMet(stats, def.Predicate) {
			unlocks.Achievements = append(unlocks.Achievements, def.Code)
			xp += def.XPReward
		}
	}

	for _, def := range catalog.Medals {
		if unlockAll || thresholdMet(stats, def.Predicate) {
			unlocks.Medals = append(unlocks.Medals, def.Code)
			xp += def.XPReward
		}
	}

	for _, def := range catalog.Cosmetics {
		if unlockAll || cosmeticUnlocked(&unlocks, xp, def.Predicate) {
			unlocks.Cosmetics = append(unlocks.Cosmetics, def.Code)
		}
	}

	return unlocks, xp
}

func thresholdMet(stats *models.AggregateStatistics, p models.ThresholdPredicate) bool {
	return stats.Metric(p.Metric) >= p.Threshold
}

func cosmeticUnlocked(unlocks *models.Unlocks, xp int, p models.CosmeticPredicate) bool {
	switch p.Kind {
	case models.UnlockByXP:
		return xp >= p.Threshold
	case models.UnlockByAchievement:
		return unlocks.HasAchievement(p.RefCode)
	case models.UnlockByMedal:
		return unlocks.HasMedal(p.RefCode)
	default:
		return false
	}
}

// DiffUnlocks returns the achievement and medal codes present in after but
// not in before. Used to notify students of newly earned unlocks.
func DiffUnlocks(before, after *models.Unlocks) (achievements, medals []string) {
	for _, code := range after.Achievements {
		if !before.HasAchievement(code) {
			achievements = append(achievements, code)
		}
	}
	for _, code := range after.Medals {
		if !before.HasMedal(code) {
			medals = append(medals, code)
		}
	}
	return achievements, medals
}
