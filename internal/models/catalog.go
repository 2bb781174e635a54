package models

import "time"

// Sport represents a sport students can be scored in
type Sport struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Rarity is the ordered rarity tier of an achievement, medal or cosmetic
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// Order returns the position of the rarity in the tier ordering,
// common lowest. Unknown rarities sort before common.
func (r Rarity) Order() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	case RarityMythic:
		return 5
	default:
		return 0
	}
}

// Metric identifies an aggregate-statistics field a threshold predicate
// reads. All metrics are non-negative integers.
type Metric string

const (
	MetricClassesAttended Metric = "classes_attended"
	MetricAttendanceRate  Metric = "attendance_rate"
	MetricStreak          Metric = "streak"
	MetricMaxScore        Metric = "max_score"
	MetricDistinctSports  Metric = "distinct_sports"
	MetricTotalScore      Metric = "total_score"
)

// Valid returns true when the metric is a supported value
func (m Metric) Valid() bool {
	switch m {
	case MetricClassesAttended, MetricAttendanceRate, MetricStreak,
		MetricMaxScore, MetricDistinctSports, MetricTotalScore:
		return true
	default:
		return false
	}
}

// ThresholdPredicate unlocks when the named metric reaches the threshold
type ThresholdPredicate struct {
	Metric    Metric
	Threshold int
}

// AchievementDef is a static achievement definition from the catalog
type AchievementDef struct {
	ID        int64
	Code      string
	Label     string
	Rarity    Rarity
	Predicate ThresholdPredicate
	XPReward  int
}

// MedalDef is a static medal definition from the catalog
type MedalDef struct {
	ID        int64
	Code      string
	Label     string
	Rarity    Rarity
	Predicate ThresholdPredicate
	XPReward  int
}

// CosmeticCategory is the kind of card customization a cosmetic applies
type CosmeticCategory string

const (
	CosmeticBackground CosmeticCategory = "background"
	CosmeticAnimation  CosmeticCategory = "animation"
)

// UnlockKind tags the variant of a cosmetic unlock predicate
type UnlockKind string

const (
	UnlockByXP          UnlockKind = "xp"
	UnlockByAchievement UnlockKind = "achievement"
	UnlockByMedal       UnlockKind = "medal"
)

// CosmeticPredicate is a tagged unlock rule for a cosmetic: either a
// total-experience threshold or a reference to an achievement or medal
// that must already be unlocked.
type CosmeticPredicate struct {
	Kind      UnlockKind
	Threshold int    // used when Kind == UnlockByXP
	RefCode   string // used when Kind references an achievement or medal
}

// CosmeticDef is a static card-customization definition from the catalog
type CosmeticDef struct {
	ID        int64
	Code      string
	Label     string
	Category  CosmeticCategory
	Rarity    Rarity
	Predicate CosmeticPredicate
}

// Catalog bundles the read-only reference data the rule engine
// evaluates against
type Catalog struct {
	Sports       []Sport
	Achievements []AchievementDef
	Medals       []MedalDef
	Cosmetics    []CosmeticDef
}
